package grades

import (
	"sort"
	"time"

	"github.com/carnet-app/carnet/internal/domain/model"
)

// dateLayout is the calendar date format used by the grading system.
const dateLayout = "2006-01-02"

// Normalize parses a record's grade and rescales it to the 0-20 scale using
// the record's resolved maximum. The second return is false when the grade
// is unparsable or the rescaled value escapes [0, 20]; such records are
// dropped from aggregates rather than defaulted.
func Normalize(r model.GradeRecord) (float64, bool) {
	v, ok := Parse(r.Grade)
	if !ok {
		return 0, false
	}
	n := v / r.ResolvedOutOf() * ScaleMax
	if n < ScaleMin || n > ScaleMax {
		return 0, false
	}
	return n, true
}

// BuildSeries derives a subject's dated, normalized observations. Records
// lacking a parseable grade or date are excluded. The result is sorted
// ascending by date; every time-series metric relies on that ordering.
func BuildSeries(records []model.GradeRecord) []model.Observation {
	series := make([]model.Observation, 0, len(records))
	for _, r := range records {
		v, ok := Normalize(r)
		if !ok || r.Date == "" {
			continue
		}
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}
		series = append(series, model.Observation{Date: d, Value: v})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// BuildValues derives normalized values without requiring dates, in input
// order. Used by metrics that aggregate without a time axis.
func BuildValues(records []model.GradeRecord) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v, ok := Normalize(r); ok {
			values = append(values, v)
		}
	}
	return values
}
