package analytics

import (
	"sort"
	"strings"

	"github.com/carnet-app/carnet/internal/domain/grades"
)

// contextOther collects records whose comment matches no known category.
const contextOther = "Other"

// contextKeywords maps assessment categories to the comment substrings
// that identify them. Categories are tried in this order and the first
// match wins, so more specific markers come before generic ones.
var contextKeywords = []struct {
	name     string
	keywords []string
}{
	{"DS", []string{"ds", "devoir surveillé", "contrôle"}},
	{"DM", []string{"dm", "devoir maison", "homework"}},
	{"Oral", []string{"oral", "exposé", "présentation"}},
	{"TP", []string{"tp", "travaux pratiques", "practical"}},
	{"Quiz", []string{"quiz", "qcm", "test"}},
}

// ContextStats aggregates the grades classified under one category.
type ContextStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	StdDev  float64 `json:"std_dev"`
}

// ContextPerformance breaks a subject's grades down by assessment type,
// heuristically classified from record comments. Best/Worst and their gap
// are only set when at least two categories have grades.
type ContextPerformance struct {
	Contexts     map[string]ContextStats `json:"contexts"`
	BestContext  string                  `json:"best_context,omitempty"`
	WorstContext string                  `json:"worst_context,omitempty"`
	Difference   float64                 `json:"difference,omitempty"`
}

// ContextPerformance classifies each record by substring match of the
// lowercased comment against fixed keyword lists and aggregates per
// category. The second return is false when the subject is unknown.
func (a *Analyzer) ContextPerformance(subject string) (ContextPerformance, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return ContextPerformance{}, false
	}

	grouped := make(map[string][]float64)
	for _, r := range records {
		v, ok := grades.Normalize(r)
		if !ok {
			continue
		}
		category := classifyContext(r.Comment)
		grouped[category] = append(grouped[category], v)
	}

	result := ContextPerformance{Contexts: make(map[string]ContextStats, len(grouped))}
	for name, values := range grouped {
		result.Contexts[name] = ContextStats{
			Average: round2(mean(values)),
			Count:   len(values),
			StdDev:  round2(popStdDev(values)),
		}
	}

	if len(result.Contexts) > 1 {
		names := make([]string, 0, len(result.Contexts))
		for name := range result.Contexts {
			names = append(names, name)
		}
		// Deterministic ranking: alphabetical first, then by average.
		sort.Strings(names)
		sort.SliceStable(names, func(i, j int) bool {
			return result.Contexts[names[i]].Average > result.Contexts[names[j]].Average
		})
		best, worst := names[0], names[len(names)-1]
		result.BestContext = best
		result.WorstContext = worst
		result.Difference = round2(result.Contexts[best].Average - result.Contexts[worst].Average)
	}

	return result, true
}

func classifyContext(comment string) string {
	lowered := strings.ToLower(comment)
	for _, category := range contextKeywords {
		for _, kw := range category.keywords {
			if strings.Contains(lowered, kw) {
				return category.name
			}
		}
	}
	return contextOther
}
