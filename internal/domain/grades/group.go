package grades

import "github.com/carnet-app/carnet/internal/domain/model"

// Grouping is an insertion-ordered partition of records by subject name.
// Subject names are compared exactly; callers wanting case or whitespace
// folding must pre-normalize before grouping.
type Grouping struct {
	bySubject map[string][]model.GradeRecord
	order     []string
}

// Group partitions records by subject, preserving both the order in which
// subjects first appear and the order of records within each subject.
func Group(records []model.GradeRecord) *Grouping {
	g := &Grouping{bySubject: make(map[string][]model.GradeRecord)}
	for _, r := range records {
		if _, seen := g.bySubject[r.Subject]; !seen {
			g.order = append(g.order, r.Subject)
		}
		g.bySubject[r.Subject] = append(g.bySubject[r.Subject], r)
	}
	return g
}

// Subjects returns subject names in first-appearance order.
func (g *Grouping) Subjects() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Records returns the records for subject. The second return is false when
// the subject never appeared in the input.
func (g *Grouping) Records(subject string) ([]model.GradeRecord, bool) {
	rs, ok := g.bySubject[subject]
	return rs, ok
}

// Len returns the number of distinct subjects.
func (g *Grouping) Len() int {
	return len(g.order)
}
