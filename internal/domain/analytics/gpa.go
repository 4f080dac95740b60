package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// GPAProjection extrapolates the cross-subject mean average over the
// configured horizon using each subject's fitted trend.
type GPAProjection struct {
	CurrentGPA       float64 `json:"current_gpa"`
	ProjectedGPA     float64 `json:"projected_gpa"`
	Change           float64 `json:"change"`
	SubjectsAnalyzed int     `json:"subjects_analyzed"`
}

// ProjectGPA projects every subject's average forward by the GPA horizon
// (90 days by default) along its trend slope, clamps each projection to
// the grading scale and averages current vs projected across subjects.
//
// The stored trend slope carries the 1e6 display scaling, so the
// extrapolation un-scales it by the reciprocal factor. Subjects without a
// computable average are skipped; ones without a usable trend are carried
// forward unchanged.
func (a *Analyzer) ProjectGPA() GPAProjection {
	var current, projected []float64

	for _, subject := range a.grouping.Subjects() {
		avg, ok := a.SubjectAverage(subject)
		if !ok {
			continue
		}
		current = append(current, avg)

		trend, _ := a.PredictTrend(subject)
		projection := avg
		if trend.Trend != TrendInsufficientData {
			change := trend.Slope * a.gpaHorizonDays / slopeDisplayScale
			projection = clamp(avg+change, grades.ScaleMin, grades.ScaleMax)
		}
		projected = append(projected, projection)
	}

	if len(current) == 0 {
		return GPAProjection{}
	}

	currentGPA := mean(current)
	projectedGPA := mean(projected)
	return GPAProjection{
		CurrentGPA:       round2(currentGPA),
		ProjectedGPA:     round2(projectedGPA),
		Change:           round2(projectedGPA - currentGPA),
		SubjectsAnalyzed: len(current),
	}
}
