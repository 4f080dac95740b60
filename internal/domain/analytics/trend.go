package analytics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/carnet-app/carnet/internal/domain/grades"
	"github.com/carnet-app/carnet/internal/domain/model"
)

// Trend classifications.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
	TrendInsufficientTime = "insufficient_time"
)

// Regression tuning constants.
const (
	// stableSlopeEpsilon is the raw per-second slope magnitude below which
	// a trend is reported as stable.
	stableSlopeEpsilon = 1e-8

	// slopeDisplayScale converts the raw per-second slope into a
	// human-readable magnitude. The GPA projection un-scales it with the
	// reciprocal factor, so this value is part of the contract.
	slopeDisplayScale = 1e6
)

// Trend is the result of fitting a subject's grade history with ordinary
// least squares. Prediction is nil when no prediction can be made.
type Trend struct {
	Trend      string   `json:"trend"`
	Slope      float64  `json:"slope"` // per-second slope scaled by 1e6
	Prediction *float64 `json:"prediction"`
	Confidence float64  `json:"confidence"`
	RSquared   float64  `json:"r_squared,omitempty"`
	DataPoints int      `json:"data_points"`
	Reason     string   `json:"reason,omitempty"`
}

// PredictTrend fits a linear trend over a subject's dated grades and
// predicts the value at the next expected assessment (last date plus the
// mean inter-observation interval), clamped to the grading scale. The
// second return is false when the subject is unknown.
//
// With fewer than 2 dated points the result is an insufficient-data
// sentinel. With zero variance on either axis the regression would be
// numerically meaningless, so a degenerate stable result carrying the
// series mean is returned instead.
func (a *Analyzer) PredictTrend(subject string) (Trend, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Trend{}, false
	}

	series := grades.BuildSeries(records)
	if len(series) < 2 {
		return Trend{
			Trend:      TrendInsufficientData,
			Prediction: nil,
			DataPoints: len(series),
			Reason:     fmt.Sprintf("need at least 2 dated grades, found %d", len(series)),
		}, true
	}

	xs, ys := seriesAxes(series)
	if popStdDev(xs) == 0 || popStdDev(ys) == 0 {
		m := round2(mean(ys))
		return Trend{
			Trend:      TrendStable,
			Prediction: &m,
			DataPoints: len(series),
			Reason:     "insufficient variance in data",
		}, true
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r := pearson(xs, ys)

	last := xs[len(xs)-1]
	interval := (last - xs[0]) / float64(len(xs)-1)
	predicted := clamp(beta*(last+interval)+alpha, grades.ScaleMin, grades.ScaleMax)

	trend := TrendStable
	switch {
	case math.Abs(beta) < stableSlopeEpsilon:
		trend = TrendStable
	case beta > 0:
		trend = TrendImproving
	default:
		trend = TrendDeclining
	}

	p := round2(predicted)
	return Trend{
		Trend:      trend,
		Slope:      round4(beta * slopeDisplayScale),
		Prediction: &p,
		Confidence: round2(math.Abs(r) * 100),
		RSquared:   round4(r * r),
		DataPoints: len(series),
	}, true
}

// regressOver fits OLS over an already validated series and returns the
// raw slope, intercept and Pearson r. Shared with the confidence forecast.
func regressOver(series []model.Observation) (slope, intercept, r float64) {
	xs, ys := seriesAxes(series)
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, pearson(xs, ys)
}
