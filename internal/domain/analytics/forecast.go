package analytics

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/carnet-app/carnet/internal/domain/grades"
)

// Forecast reliability classifications by r-squared.
const (
	ReliabilityHigh   = "high"   // r² > 0.7
	ReliabilityMedium = "medium" // r² > 0.4
	ReliabilityLow    = "low"
)

// minForecastPoints is the smallest series a residual-based interval
// accepts: with fewer than 3 points there are no degrees of freedom left.
const minForecastPoints = 3

// ConfidenceInterval bounds a forecast. Lower is floored at 0 and Upper
// capped at 20 independently, so the interval may be asymmetric after
// clamping.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Forecast is a next-grade prediction with a Student-t margin of error
// derived from the regression residuals.
type Forecast struct {
	Prediction         *float64           `json:"prediction"`
	MarginOfError      float64            `json:"margin_of_error"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	Reliability        string             `json:"reliability,omitempty"`
	Reason             string             `json:"reason,omitempty"`
}

// ForecastWithConfidence fits the same regression as PredictTrend, then
// widens the next-point prediction with a symmetric margin of error: the
// Student-t critical value at the requested confidence level (n-2 degrees
// of freedom) times the residual standard deviation. A confidence level
// outside (0, 1) falls back to the configured default. The second return
// is false when the subject is unknown.
func (a *Analyzer) ForecastWithConfidence(subject string, confidenceLevel float64) (Forecast, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Forecast{}, false
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		confidenceLevel = a.confidenceLevel
	}

	series := grades.BuildSeries(records)
	if len(series) < minForecastPoints {
		return Forecast{Reason: "insufficient data"}, true
	}

	xs, ys := seriesAxes(series)
	if popStdDev(xs) == 0 || popStdDev(ys) == 0 {
		m := round2(clamp(mean(ys), grades.ScaleMin, grades.ScaleMax))
		return Forecast{
			Prediction:         &m,
			ConfidenceInterval: ConfidenceInterval{Lower: m, Upper: m},
			Reliability:        ReliabilityLow,
			Reason:             "insufficient variance in data",
		}, true
	}

	slope, intercept, r := regressOver(series)

	last := xs[len(xs)-1]
	interval := (last - xs[0]) / float64(len(xs)-1)
	predicted := slope*(last+interval) + intercept

	residuals := make([]float64, len(series))
	for i := range xs {
		residuals[i] = ys[i] - (slope*xs[i] + intercept)
	}
	residualStd := popStdDev(residuals)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(len(series) - 2)}
	tValue := tDist.Quantile((1 + confidenceLevel) / 2)
	margin := tValue * residualStd

	p := round2(clamp(predicted, grades.ScaleMin, grades.ScaleMax))
	return Forecast{
		Prediction:    &p,
		MarginOfError: round2(margin),
		ConfidenceInterval: ConfidenceInterval{
			Lower: round2(clamp(predicted-margin, grades.ScaleMin, grades.ScaleMax)),
			Upper: round2(clamp(predicted+margin, grades.ScaleMin, grades.ScaleMax)),
		},
		Reliability: classifyReliability(r * r),
	}, true
}

func classifyReliability(rSquared float64) string {
	switch {
	case rSquared > 0.7:
		return ReliabilityHigh
	case rSquared > 0.4:
		return ReliabilityMedium
	default:
		return ReliabilityLow
	}
}
