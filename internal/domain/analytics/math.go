package analytics

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/carnet-app/carnet/internal/domain/model"
)

// Boundary rounding helpers. Results are rounded once, at the edge of each
// metric, never inside intermediate algebra.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// mean and popStdDev substitute 0 for empty input instead of propagating an
// error; degenerate inputs are handled by each metric before division.
func mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}

func popStdDev(xs []float64) float64 {
	sd, err := stats.StandardDeviationPopulation(xs)
	if err != nil {
		return 0
	}
	return sd
}

// pearson returns the Pearson correlation of two equal-length series, or 0
// when it is undefined (zero variance, too few points).
func pearson(xs, ys []float64) float64 {
	r, err := stats.Pearson(xs, ys)
	if err != nil || math.IsNaN(r) {
		return 0
	}
	return r
}

// seriesAxes converts a date-sorted series to regression axes: seconds
// since the Unix epoch on x, normalized grades on y.
func seriesAxes(series []model.Observation) (xs, ys []float64) {
	xs = make([]float64, len(series))
	ys = make([]float64, len(series))
	for i, o := range series {
		xs[i] = float64(o.Date.Unix())
		ys[i] = o.Value
	}
	return xs, ys
}

func seriesValues(series []model.Observation) []float64 {
	ys := make([]float64, len(series))
	for i, o := range series {
		ys[i] = o.Value
	}
	return ys
}
