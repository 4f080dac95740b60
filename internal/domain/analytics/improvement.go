package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// Improvement rate classifications, in normalized points per 30 days.
const (
	RateStrongImprovement = "strong_improvement" // > 0.5
	RateSlightImprovement = "slight_improvement" // > 0
	RateSlightDecline     = "slight_decline"     // > -0.5
	RateStrongDecline     = "strong_decline"
)

const daysPerMonth = 30.0

// Improvement captures the first-to-last progression of a subject's grades
// expressed as a per-30-day rate.
type Improvement struct {
	ImprovementRate float64 `json:"improvement_rate"` // last minus first, in points
	RatePerMonth    float64 `json:"rate_per_month"`
	DaysElapsed     int     `json:"days_elapsed"`
	Trend           string  `json:"trend"`
	StartGrade      float64 `json:"start_grade"`
	CurrentGrade    float64 `json:"current_grade"`
}

// ImprovementRate measures grade progression between the earliest and the
// latest dated grade. The second return is false when the subject is
// unknown. Fewer than 2 dated points or a zero-day span yield sentinel
// trends rather than a division by zero.
func (a *Analyzer) ImprovementRate(subject string) (Improvement, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Improvement{}, false
	}

	series := grades.BuildSeries(records)
	if len(series) < 2 {
		return Improvement{Trend: TrendInsufficientData}, true
	}

	first := series[0]
	last := series[len(series)-1]
	daysElapsed := int(last.Date.Sub(first.Date).Hours() / 24)
	if daysElapsed == 0 {
		return Improvement{Trend: TrendInsufficientTime}, true
	}

	total := last.Value - first.Value
	ratePerMonth := total / float64(daysElapsed) * daysPerMonth

	return Improvement{
		ImprovementRate: round2(total),
		RatePerMonth:    round2(ratePerMonth),
		DaysElapsed:     daysElapsed,
		Trend:           classifyRate(ratePerMonth),
		StartGrade:      round2(first.Value),
		CurrentGrade:    round2(last.Value),
	}, true
}

func classifyRate(ratePerMonth float64) string {
	switch {
	case ratePerMonth > 0.5:
		return RateStrongImprovement
	case ratePerMonth > 0:
		return RateSlightImprovement
	case ratePerMonth > -0.5:
		return RateSlightDecline
	default:
		return RateStrongDecline
	}
}
