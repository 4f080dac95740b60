package analytics

import "github.com/carnet-app/carnet/internal/domain/grades"

// Benchmark performance classifications against the class average.
const (
	PerformanceAbove   = "above" // mean difference > 0.5
	PerformanceBelow   = "below" // mean difference < -0.5
	PerformanceAverage = "average"
	PerformanceNoData  = "no_data"       // no parseable student grade
	PerformanceNoClass = "no_class_data" // student grades but no class averages
)

// performanceGap is the mean-difference band treated as "average".
const performanceGap = 0.5

// Benchmark compares the student's grades to the class averages recorded
// on the same assessments.
type Benchmark struct {
	StudentAverage    float64 `json:"student_average"`
	ClassAverage      float64 `json:"class_average,omitempty"`
	AverageDifference float64 `json:"average_difference"`
	Performance       string  `json:"performance"`
}

// BenchmarkVsClass rescales the student grade and the class average of
// each record with the same out_of, averages the signed differences and
// classifies the gap. Records missing either value contribute only what
// they carry. The second return is false when the subject is unknown.
func (a *Analyzer) BenchmarkVsClass(subject string) (Benchmark, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Benchmark{}, false
	}

	var student, class, differences []float64
	for _, r := range records {
		v, ok := grades.Normalize(r)
		if !ok {
			continue
		}
		student = append(student, v)

		classValue, ok := grades.Parse(r.ClassAverage)
		if !ok {
			continue
		}
		normalizedClass := classValue / r.ResolvedOutOf() * grades.ScaleMax
		if normalizedClass < grades.ScaleMin || normalizedClass > grades.ScaleMax {
			continue
		}
		class = append(class, normalizedClass)
		differences = append(differences, v-normalizedClass)
	}

	if len(student) == 0 {
		return Benchmark{Performance: PerformanceNoData}, true
	}

	result := Benchmark{StudentAverage: round2(mean(student))}
	if len(class) == 0 {
		result.Performance = PerformanceNoClass
		return result, true
	}

	diff := mean(differences)
	result.ClassAverage = round2(mean(class))
	result.AverageDifference = round2(diff)
	switch {
	case diff > performanceGap:
		result.Performance = PerformanceAbove
	case diff < -performanceGap:
		result.Performance = PerformanceBelow
	default:
		result.Performance = PerformanceAverage
	}
	return result, true
}
