package analytics

import (
	"github.com/carnet-app/carnet/internal/domain/grades"
	"github.com/carnet-app/carnet/internal/domain/model"
)

// Difficulty tiers for a required future grade, derived from where it
// falls on the 0-out_of range.
const (
	DifficultyImpossible = "impossible"
	DifficultyEasy       = "easy"     // at most 50% of the scale
	DifficultyModerate   = "moderate" // at most 75% of the scale
	DifficultyDifficult  = "difficult"
)

// Thresholds of the difficulty tiers as fractions of the grading scale.
const (
	easyFraction     = 0.5
	moderateFraction = 0.75
)

// NeededGrade is the single future grade that would bring a subject's
// weighted average to the requested target.
type NeededGrade struct {
	NeededGrade      float64 `json:"needed_grade"` // on the requested out_of scale
	OutOf            float64 `json:"out_of"`
	NormalizedNeeded float64 `json:"normalized_needed"` // on the 0-20 scale
	IsPossible       bool    `json:"is_possible"`
	Difficulty       string  `json:"difficulty"`
	CurrentAverage   float64 `json:"current_average"`
	TargetAverage    float64 `json:"target_average"`
}

// Simulation is the uniform grade needed on each of several equally
// weighted future assessments to reach a target average.
type Simulation struct {
	AverageNeededPerGrade float64 `json:"average_needed_per_grade"`
	OutOf                 float64 `json:"out_of"`
	NormalizedAverage     float64 `json:"normalized_average"`
	NumGrades             int     `json:"num_grades"`
	IsPossible            bool    `json:"is_possible"`
	CurrentAverage        float64 `json:"current_average"`
}

// NeededGrade solves for the raw grade g on the given scale satisfying
//
//	(Σ weighted_existing + norm(g)·coef) / (Σ weight_existing + coef) = target
//
// The second return is false when the subject is unknown. Non-positive
// coefficient or out_of parameters fall back to the usual defaults.
func (a *Analyzer) NeededGrade(subject string, targetAverage, coefficient, outOf float64) (NeededGrade, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return NeededGrade{}, false
	}
	if coefficient <= 0 {
		coefficient = model.DefaultCoefficient
	}
	if outOf <= 0 {
		outOf = model.DefaultOutOf
	}

	// The solver always honors coefficients: the future grade's weight has
	// to be comparable with the existing ones.
	points, weight, _ := weightedSums(records, true)

	totalWeight := weight + coefficient
	neededNormalized := (targetAverage*totalWeight - points) / coefficient
	needed := neededNormalized / grades.ScaleMax * outOf

	isPossible := needed >= 0 && needed <= outOf

	return NeededGrade{
		NeededGrade:      round2(needed),
		OutOf:            outOf,
		NormalizedNeeded: round2(neededNormalized),
		IsPossible:       isPossible,
		Difficulty:       classifyDifficulty(needed, outOf, isPossible),
		CurrentAverage:   currentAverage(points, weight),
		TargetAverage:    targetAverage,
	}, true
}

// SimulateGrades solves the same algebra as NeededGrade for a single value
// repeated across numGrades equally weighted future assessments.
func (a *Analyzer) SimulateGrades(subject string, targetAverage float64, numGrades int, coefficient, outOf float64) (Simulation, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Simulation{}, false
	}
	if numGrades < 1 {
		numGrades = 1
	}
	if coefficient <= 0 {
		coefficient = model.DefaultCoefficient
	}
	if outOf <= 0 {
		outOf = model.DefaultOutOf
	}

	points, weight, _ := weightedSums(records, true)

	futureWeight := float64(numGrades) * coefficient
	totalWeight := weight + futureWeight
	neededNormalized := (targetAverage*totalWeight - points) / futureWeight
	needed := neededNormalized / grades.ScaleMax * outOf

	return Simulation{
		AverageNeededPerGrade: round2(needed),
		OutOf:                 outOf,
		NormalizedAverage:     round2(neededNormalized),
		NumGrades:             numGrades,
		IsPossible:            needed >= 0 && needed <= outOf,
		CurrentAverage:        currentAverage(points, weight),
	}, true
}

func classifyDifficulty(needed, outOf float64, isPossible bool) string {
	switch {
	case !isPossible:
		return DifficultyImpossible
	case needed <= outOf*easyFraction:
		return DifficultyEasy
	case needed <= outOf*moderateFraction:
		return DifficultyModerate
	default:
		return DifficultyDifficult
	}
}

func currentAverage(points, weight float64) float64 {
	if weight == 0 {
		return 0
	}
	return round2(points / weight)
}
