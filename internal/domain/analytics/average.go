package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// SubjectAverageEntry is one subject's weighted average with the number of
// usable grades behind it.
type SubjectAverageEntry struct {
	Subject    string  `json:"subject"`
	Average    float64 `json:"average"`
	GradeCount int     `json:"grade_count"`
}

// SubjectAverage returns the coefficient-weighted mean of a subject's
// normalized grades, rounded to 2 decimals. The second return is false
// when the subject is unknown or no record parses to a usable grade.
func (a *Analyzer) SubjectAverage(subject string) (float64, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return 0, false
	}
	points, weight, count := weightedSums(records, a.weighted)
	if weight == 0 || count == 0 {
		return 0, false
	}
	return round2(points / weight), true
}

// Averages lists every subject with a computable average, in
// first-appearance order. Subjects without usable grades are omitted.
func (a *Analyzer) Averages() []SubjectAverageEntry {
	out := make([]SubjectAverageEntry, 0, a.grouping.Len())
	for _, subject := range a.grouping.Subjects() {
		records, _ := a.grouping.Records(subject)
		points, weight, count := weightedSums(records, a.weighted)
		if weight == 0 || count == 0 {
			continue
		}
		out = append(out, SubjectAverageEntry{
			Subject:    subject,
			Average:    round2(points / weight),
			GradeCount: count,
		})
	}
	return out
}

// validValues returns a subject's normalized values without requiring dates.
func (a *Analyzer) validValues(subject string) []float64 {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return nil
	}
	return grades.BuildValues(records)
}
