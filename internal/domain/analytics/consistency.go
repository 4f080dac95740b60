package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// Stability classifications for the consistency index.
const (
	StabilityVeryStable       = "very_stable" // score >= 80
	StabilityStable           = "stable"      // score >= 60
	StabilityModerate         = "moderate"    // score >= 40
	StabilityVolatile         = "volatile"
	StabilityInsufficientData = "insufficient_data"
)

// Consistency scoring constants. Each penalty contributes at most half of
// the score; the reference std-dev caps the dispersion penalty.
const (
	maxReferenceStdDev = 10.0
	penaltyShare       = 50.0
)

// Consistency measures how stable a subject's grades are over time: a
// dispersion penalty plus a reversal-count penalty subtracted from 100.
type Consistency struct {
	ConsistencyScore float64 `json:"consistency_score"`
	Stability        string  `json:"stability"`
	Reversals        int     `json:"reversals"`
	StdDev           float64 `json:"std_dev"`
	GradeCount       int     `json:"grade_count"`
}

// ConsistencyIndex scores a subject's academic stability on 0-100. A
// reversal is a strict local extremum in the chronologically ordered
// series, counted as an instability signal. The second return is false
// when the subject is unknown; fewer than 2 dated grades yield an
// insufficient-data sentinel.
func (a *Analyzer) ConsistencyIndex(subject string) (Consistency, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Consistency{}, false
	}

	series := grades.BuildSeries(records)
	if len(series) < 2 {
		return Consistency{Stability: StabilityInsufficientData, GradeCount: len(series)}, true
	}

	values := seriesValues(series)
	stdDev := popStdDev(values)
	reversals := countReversals(values)

	maxReversals := float64(len(values)) / 2
	stdPenalty := clamp(stdDev/maxReferenceStdDev, 0, 1) * penaltyShare
	reversalPenalty := clamp(float64(reversals)/maxReversals, 0, 1) * penaltyShare
	score := 100 - stdPenalty - reversalPenalty

	return Consistency{
		ConsistencyScore: round2(score),
		Stability:        classifyStability(score),
		Reversals:        reversals,
		StdDev:           round2(stdDev),
		GradeCount:       len(values),
	}, true
}

// countReversals counts indices whose value is a strict local maximum or
// minimum among immediate neighbors.
func countReversals(values []float64) int {
	reversals := 0
	for i := 1; i < len(values)-1; i++ {
		localMax := values[i] > values[i-1] && values[i] > values[i+1]
		localMin := values[i] < values[i-1] && values[i] < values[i+1]
		if localMax || localMin {
			reversals++
		}
	}
	return reversals
}

func classifyStability(score float64) string {
	switch {
	case score >= 80:
		return StabilityVeryStable
	case score >= 60:
		return StabilityStable
	case score >= 40:
		return StabilityModerate
	default:
		return StabilityVolatile
	}
}
