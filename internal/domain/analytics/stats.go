package analytics

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// SubjectStatistics is the descriptive summary of one subject's normalized
// grades. StdDev and Variance are population statistics.
type SubjectStatistics struct {
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Variance float64 `json:"variance"`
}

// ComparisonEntry ranks one subject in the cross-subject comparison.
type ComparisonEntry struct {
	Subject         string  `json:"subject"`
	Average         float64 `json:"average"`
	GradeCount      int     `json:"grade_count"`
	StdDev          float64 `json:"std_dev"`
	Trend           string  `json:"trend"`
	TrendConfidence float64 `json:"trend_confidence"`
}

// Statistics summarizes one subject, or all subjects when subject is empty.
// Subjects without any usable grade are omitted from the map. The second
// return is false only when a named subject is unknown.
func (a *Analyzer) Statistics(subject string) (map[string]SubjectStatistics, bool) {
	var subjects []string
	if subject != "" {
		if _, ok := a.grouping.Records(subject); !ok {
			return nil, false
		}
		subjects = []string{subject}
	} else {
		subjects = a.grouping.Subjects()
	}

	out := make(map[string]SubjectStatistics, len(subjects))
	for _, name := range subjects {
		values := a.validValues(name)
		if len(values) == 0 {
			continue
		}
		out[name] = describe(values)
	}
	return out, true
}

// CompareSubjects ranks every subject with a computable average by that
// average, descending, attaching each subject's trend classification.
func (a *Analyzer) CompareSubjects() []ComparisonEntry {
	comparison := make([]ComparisonEntry, 0, a.grouping.Len())
	for _, subject := range a.grouping.Subjects() {
		avg, ok := a.SubjectAverage(subject)
		if !ok {
			continue
		}
		values := a.validValues(subject)
		trend, _ := a.PredictTrend(subject)
		comparison = append(comparison, ComparisonEntry{
			Subject:         subject,
			Average:         avg,
			GradeCount:      len(values),
			StdDev:          round2(popStdDev(values)),
			Trend:           trend.Trend,
			TrendConfidence: trend.Confidence,
		})
	}

	sort.SliceStable(comparison, func(i, j int) bool {
		return comparison[i].Average > comparison[j].Average
	})
	return comparison
}

func describe(values []float64) SubjectStatistics {
	// Errors from the stats package only occur on empty input, which the
	// caller has already excluded.
	median, _ := stats.Median(values)
	minimum, _ := stats.Min(values)
	maximum, _ := stats.Max(values)
	variance, _ := stats.PopulationVariance(values)

	return SubjectStatistics{
		Count:    len(values),
		Average:  round2(mean(values)),
		Median:   round2(median),
		StdDev:   round2(popStdDev(values)),
		Min:      round2(minimum),
		Max:      round2(maximum),
		Range:    round2(maximum - minimum),
		Variance: round2(variance),
	}
}
