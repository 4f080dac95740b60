package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// Learning efficiency ratings.
const (
	RatingExcellent        = "excellent" // index > 1.5
	RatingGood             = "good"      // index > 0.8
	RatingModerate         = "moderate"  // index > 0.3
	RatingLow              = "low"       // index > -0.3
	RatingDeclining        = "declining"
	RatingInsufficientData = "insufficient_data"
	RatingNoData           = "no_data"
)

// evaluationDamping divides the evaluation count before damping the
// index, so frequent assessment lowers efficiency only gradually.
const evaluationDamping = 3.0

// Efficiency combines a subject's monthly improvement with the mean
// assessment weight, damped by the number of evaluations.
type Efficiency struct {
	EfficiencyIndex    float64 `json:"efficiency_index"`
	Rating             string  `json:"rating"`
	EvaluationCount    int     `json:"evaluation_count"`
	MonthlyImprovement float64 `json:"monthly_improvement"`
}

// LearningEfficiency computes monthly_rate x mean_weight / max(n/3, 1)
// over a subject's usable grades. The second return is false when the
// subject is unknown; too little history yields a rating sentinel.
func (a *Analyzer) LearningEfficiency(subject string) (Efficiency, bool) {
	improvement, ok := a.ImprovementRate(subject)
	if !ok {
		return Efficiency{}, false
	}
	if improvement.Trend == TrendInsufficientData || improvement.Trend == TrendInsufficientTime {
		return Efficiency{Rating: RatingInsufficientData}, true
	}

	records, _ := a.grouping.Records(subject)
	evalCount := 0
	totalWeight := 0.0
	for _, r := range records {
		if _, ok := grades.Normalize(r); ok {
			evalCount++
			totalWeight += r.Weight()
		}
	}
	if evalCount == 0 {
		return Efficiency{Rating: RatingNoData}, true
	}

	avgWeight := totalWeight / float64(evalCount)
	damping := float64(evalCount) / evaluationDamping
	if damping < 1 {
		damping = 1
	}
	index := improvement.RatePerMonth * avgWeight / damping

	return Efficiency{
		EfficiencyIndex:    round2(index),
		Rating:             classifyEfficiency(index),
		EvaluationCount:    evalCount,
		MonthlyImprovement: improvement.RatePerMonth,
	}, true
}

func classifyEfficiency(index float64) string {
	switch {
	case index > 1.5:
		return RatingExcellent
	case index > 0.8:
		return RatingGood
	case index > 0.3:
		return RatingModerate
	case index > -0.3:
		return RatingLow
	default:
		return RatingDeclining
	}
}
