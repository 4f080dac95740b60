package analytics

import (
	"time"

	"github.com/carnet-app/carnet/internal/domain/grades"
)

// Decay pattern classifications by percent change between windows.
const (
	PatternDecline     = "decline"     // < -5%
	PatternImprovement = "improvement" // > +5%
	PatternStable      = "stable"
)

// patternBand is the percent-change band reported as stable.
const patternBand = 5.0

// minDecayPoints is the smallest series the windowed comparison accepts.
const minDecayPoints = 4

// Decay compares a subject's early grades to its recent ones to surface
// fatigue or burnout patterns.
type Decay struct {
	DecayDetected  bool    `json:"decay_detected"`
	DecayPercent   float64 `json:"decay_percent"`
	FirstPeriodAvg float64 `json:"first_period_avg"`
	LastPeriodAvg  float64 `json:"last_period_avg"`
	Pattern        string  `json:"pattern,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

// TemporalDecay compares the mean of the first window (every point within
// windowDays of the earliest date) to the mean of the last window (every
// point within windowDays of the latest date) and reports the percent
// change. Decay is flagged below the configured threshold (-10% by
// default). A non-positive windowDays falls back to the configured window.
// The second return is false when the subject is unknown.
func (a *Analyzer) TemporalDecay(subject string, windowDays int) (Decay, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Decay{}, false
	}
	if windowDays <= 0 {
		windowDays = a.windowDays
	}

	series := grades.BuildSeries(records)
	if len(series) < minDecayPoints {
		return Decay{Reason: "insufficient data"}, true
	}

	first := series[0].Date
	last := series[len(series)-1].Date
	window := time.Duration(windowDays) * 24 * time.Hour
	if last.Sub(first) < window {
		return Decay{Reason: "time period too short"}, true
	}

	var firstWindow, lastWindow []float64
	firstEnd := first.Add(window)
	lastStart := last.Add(-window)
	for _, o := range series {
		if !o.Date.After(firstEnd) {
			firstWindow = append(firstWindow, o.Value)
		}
		if !o.Date.Before(lastStart) {
			lastWindow = append(lastWindow, o.Value)
		}
	}

	firstAvg := mean(firstWindow)
	lastAvg := mean(lastWindow)
	decayPercent := 0.0
	if firstAvg > 0 {
		decayPercent = (lastAvg - firstAvg) / firstAvg * 100
	}

	pattern := PatternStable
	switch {
	case decayPercent < -patternBand:
		pattern = PatternDecline
	case decayPercent > patternBand:
		pattern = PatternImprovement
	}

	return Decay{
		DecayDetected:  decayPercent < a.decayThresholdPct,
		DecayPercent:   round2(decayPercent),
		FirstPeriodAvg: round2(firstAvg),
		LastPeriodAvg:  round2(lastAvg),
		Pattern:        pattern,
	}, true
}
