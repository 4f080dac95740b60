// Package model contains domain models passed between layers.
package model

import "time"

// Default scales applied when a record carries no usable value.
const (
	// DefaultOutOf is the maximum points assumed for a grade when the
	// record does not say otherwise (French 0-20 system).
	DefaultOutOf = 20.0

	// DefaultCoefficient is the weight assumed for an assessment when
	// the record does not say otherwise.
	DefaultCoefficient = 1.0
)

// GradeRecord is a single assessment as received from the grading system.
// The raw grade is kept as text because the upstream system mixes numeric
// values with sentinels like "Absent" or "Dispensé". Records are read-only
// to the engine; every derived value is a copy.
type GradeRecord struct {
	Subject      string  `json:"subject"`
	Grade        string  `json:"grade"`
	OutOf        float64 `json:"out_of,omitempty"`
	Coefficient  float64 `json:"coefficient,omitempty"`
	Date         string  `json:"date,omitempty"` // YYYY-MM-DD, may be empty
	Comment      string  `json:"comment,omitempty"`
	ClassAverage string  `json:"class_average,omitempty"`
}

// ResolvedOutOf returns the grading scale for this record, substituting the
// default when the stored value is absent or non-positive. Default
// resolution lives here so individual metrics never re-implement it.
func (r GradeRecord) ResolvedOutOf() float64 {
	if r.OutOf <= 0 {
		return DefaultOutOf
	}
	return r.OutOf
}

// Weight returns the averaging weight for this record, substituting the
// default when the stored coefficient is absent or non-positive.
func (r GradeRecord) Weight() float64 {
	if r.Coefficient <= 0 {
		return DefaultCoefficient
	}
	return r.Coefficient
}

// Observation is one normalized point of a subject's time series: the
// student's grade rescaled to the 0-20 scale at a given date.
type Observation struct {
	Date  time.Time
	Value float64
}
