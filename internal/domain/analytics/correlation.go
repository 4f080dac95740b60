package analytics

import (
	"math"
	"sort"

	"github.com/carnet-app/carnet/internal/domain/grades"
)

// Correlation strength classifications by absolute value.
const (
	StrengthVeryStrong = "very_strong" // |r| >= 0.8
	StrengthStrong     = "strong"      // |r| >= 0.6
	StrengthModerate   = "moderate"    // |r| >= 0.4
	StrengthWeak       = "weak"        // |r| >= 0.2
	StrengthVeryWeak   = "very_weak"
)

// Correlation eligibility constants.
const (
	minSubjectDates    = 3  // dated grades a subject needs to take part
	minCommonDates     = 3  // shared dates a pair needs to correlate
	maxCorrelationRows = 10 // pairs reported, strongest first
)

// SubjectCorrelation is the Pearson correlation of two subjects' grades
// over their shared assessment dates.
type SubjectCorrelation struct {
	Subject1    string  `json:"subject1"`
	Subject2    string  `json:"subject2"`
	Correlation float64 `json:"correlation"`
	Strength    string  `json:"strength"`
}

// CorrelationAnalysis lists pairwise correlations ordered by absolute
// strength, with the single strongest called out. Empty when fewer than
// two subjects qualify.
type CorrelationAnalysis struct {
	Correlations []SubjectCorrelation `json:"correlations"`
	Strongest    *SubjectCorrelation  `json:"strongest_correlation"`
}

// SubjectCorrelations computes the Pearson correlation for every subject
// pair with at least 3 shared assessment dates, aligning values by sorted
// date. Pairs where either side has zero variance are skipped; the raw
// date string is the join key.
func (a *Analyzer) SubjectCorrelations() CorrelationAnalysis {
	allDates := make(map[string]struct{})
	for _, subject := range a.grouping.Subjects() {
		records, _ := a.grouping.Records(subject)
		for _, r := range records {
			if r.Date != "" {
				allDates[r.Date] = struct{}{}
			}
		}
	}
	if a.grouping.Len() < 2 || len(allDates) < minCommonDates {
		return CorrelationAnalysis{Correlations: []SubjectCorrelation{}}
	}

	// Per subject: date -> normalized value, keeping subject order for
	// deterministic pair enumeration.
	var names []string
	vectors := make(map[string]map[string]float64)
	for _, subject := range a.grouping.Subjects() {
		records, _ := a.grouping.Records(subject)
		byDate := make(map[string]float64)
		for _, r := range records {
			if r.Date == "" {
				continue
			}
			if v, ok := grades.Normalize(r); ok {
				byDate[r.Date] = v
			}
		}
		if len(byDate) >= minSubjectDates {
			names = append(names, subject)
			vectors[subject] = byDate
		}
	}

	correlations := []SubjectCorrelation{}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if corr, ok := correlatePair(vectors[names[i]], vectors[names[j]]); ok {
				correlations = append(correlations, SubjectCorrelation{
					Subject1:    names[i],
					Subject2:    names[j],
					Correlation: round3(corr),
					Strength:    classifyStrength(corr),
				})
			}
		}
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].Correlation) > math.Abs(correlations[j].Correlation)
	})
	if len(correlations) > maxCorrelationRows {
		correlations = correlations[:maxCorrelationRows]
	}

	analysis := CorrelationAnalysis{Correlations: correlations}
	if len(correlations) > 0 {
		analysis.Strongest = &correlations[0]
	}
	return analysis
}

// correlatePair intersects two date-keyed vectors and correlates the
// values aligned by sorted common date. Returns false when fewer than 3
// dates are shared or either side has zero variance.
func correlatePair(v1, v2 map[string]float64) (float64, bool) {
	var common []string
	for date := range v1 {
		if _, ok := v2[date]; ok {
			common = append(common, date)
		}
	}
	if len(common) < minCommonDates {
		return 0, false
	}
	sort.Strings(common)

	xs := make([]float64, len(common))
	ys := make([]float64, len(common))
	for i, date := range common {
		xs[i] = v1[date]
		ys[i] = v2[date]
	}
	if popStdDev(xs) == 0 || popStdDev(ys) == 0 {
		return 0, false
	}
	return pearson(xs, ys), true
}

func classifyStrength(corr float64) string {
	switch abs := math.Abs(corr); {
	case abs >= 0.8:
		return StrengthVeryStrong
	case abs >= 0.6:
		return StrengthStrong
	case abs >= 0.4:
		return StrengthModerate
	case abs >= 0.2:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}
