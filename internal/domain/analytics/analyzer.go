// Package analytics turns a snapshot of grade records into statistical
// indicators: averages, trend forecasts, stability scores, cross-subject
// correlations and "what grade do I need" simulations.
//
// Every computation is a pure function over the snapshot captured at
// construction. An Analyzer holds no shared mutable state and performs no
// I/O, so concurrent calls need no synchronization. Data sparsity is never
// an error: an unknown subject yields an absent result and too few usable
// points yield an explicit insufficient-data result.
package analytics

import (
	"github.com/carnet-app/carnet/internal/domain/grades"
	"github.com/carnet-app/carnet/internal/domain/model"
)

// Policy defaults. Horizon and decay threshold are deliberate product
// choices rather than mathematical necessities; both can be overridden
// through options.
const (
	defaultGPAHorizonDays  = 90
	defaultDecayThreshold  = -10.0
	defaultWindowDays      = 30
	defaultConfidenceLevel = 0.95
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithoutCoefficients disables coefficient weighting: every grade counts
// with weight 1 in subject averages.
func WithoutCoefficients() Option {
	return func(a *Analyzer) {
		a.weighted = false
	}
}

// WithGPAHorizon sets the extrapolation horizon, in days, used by the GPA
// projection.
func WithGPAHorizon(days int) Option {
	return func(a *Analyzer) {
		if days > 0 {
			a.gpaHorizonDays = float64(days)
		}
	}
}

// WithDecayThreshold sets the percent change below which the temporal
// decay analysis reports decay. The threshold is negative.
func WithDecayThreshold(pct float64) Option {
	return func(a *Analyzer) {
		if pct < 0 {
			a.decayThresholdPct = pct
		}
	}
}

// WithWindow sets the default window length, in days, for windowed
// analyses such as temporal decay.
func WithWindow(days int) Option {
	return func(a *Analyzer) {
		if days > 0 {
			a.windowDays = days
		}
	}
}

// WithConfidenceLevel sets the default confidence level for forecast
// intervals. Values outside (0, 1) are ignored.
func WithConfidenceLevel(level float64) Option {
	return func(a *Analyzer) {
		if level > 0 && level < 1 {
			a.confidenceLevel = level
		}
	}
}

// Analyzer computes metrics over one immutable snapshot of grade records.
type Analyzer struct {
	grouping *grades.Grouping

	weighted          bool
	gpaHorizonDays    float64
	decayThresholdPct float64
	windowDays        int
	confidenceLevel   float64
}

// New builds an Analyzer from a caller-supplied snapshot. The records are
// grouped by subject once here; individual metrics derive their own series
// on demand and never mutate the input.
func New(records []model.GradeRecord, opts ...Option) *Analyzer {
	a := &Analyzer{
		grouping:          grades.Group(records),
		weighted:          true,
		gpaHorizonDays:    defaultGPAHorizonDays,
		decayThresholdPct: defaultDecayThreshold,
		windowDays:        defaultWindowDays,
		confidenceLevel:   defaultConfidenceLevel,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Subjects returns subject names in first-appearance order.
func (a *Analyzer) Subjects() []string {
	return a.grouping.Subjects()
}

// weightedSums accumulates normalized points and weights for a subject's
// records. Unparsable records are skipped; a zero or negative out_of or
// coefficient on one record never poisons the rest. When weighted is
// false every record counts with weight 1.
func weightedSums(records []model.GradeRecord, weighted bool) (points, weight float64, count int) {
	for _, r := range records {
		v, ok := grades.Normalize(r)
		if !ok {
			continue
		}
		w := model.DefaultCoefficient
		if weighted {
			w = r.Weight()
		}
		points += v * w
		weight += w
		count++
	}
	return points, weight, count
}
