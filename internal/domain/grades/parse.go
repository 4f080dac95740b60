// Package grades normalizes raw grade records into the canonical 0-20
// scale and partitions them by subject. Every metric in the analytics
// engine consumes its output; it performs no I/O and keeps no state.
package grades

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds of the canonical grading scale.
const (
	ScaleMin = 0.0
	ScaleMax = 20.0

	// percentMax is the upper bound of the percentage fallback: a value in
	// (ScaleMax, percentMax] is read as a percentage and rescaled to /20.
	percentMax = 100.0
)

// nonNumeric lists the sentinels the grading system emits in place of a
// numeric grade. Matching is case-insensitive after trimming.
var nonNumeric = map[string]struct{}{
	"absent":    {},
	"abs":       {},
	"dispensé":  {},
	"disp":      {},
	"non noté":  {},
	"non note":  {},
	"n/a":       {},
	"na":        {},
	"null":      {},
	"undefined": {},
	"-":         {},
	"--":        {},
	"???":       {},
	"?":         {},
}

// numericJunk strips everything that cannot be part of a float literal.
// Compiled once and reused across calls.
var numericJunk = regexp.MustCompile(`[^0-9.\-]`)

// Parse extracts a numeric grade from raw text. The second return is false
// when the text is empty, a known sentinel, malformed, or out of range;
// none of these are errors, the record simply carries no usable value.
//
// A parsed value in [0, 20] is accepted as-is. A value in (20, 100] is read
// as a percentage and rescaled to the 0-20 scale. Anything else is rejected.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if _, ok := nonNumeric[strings.ToLower(s)]; ok {
		return 0, false
	}

	// French decimal comma, then drop any unit suffixes or stray text.
	s = strings.ReplaceAll(s, ",", ".")
	s = numericJunk.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	switch {
	case v >= ScaleMin && v <= ScaleMax:
		return v, true
	case v > ScaleMax && v <= percentMax:
		return v / percentMax * ScaleMax, true
	default:
		return 0, false
	}
}
