package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/carnet-app/carnet/internal/domain/grades"
)

// Coefficient boundaries separating the stakes buckets.
const (
	lowStakesBound  = 1.5
	highStakesBound = 2.5
)

// StakesBucket summarizes the grades falling into one coefficient band.
type StakesBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	StdDev  float64 `json:"std_dev"`
	Average float64 `json:"average"`
	Range   float64 `json:"range"`
}

// Volatility reports grade dispersion per stakes band, to show whether
// heavily weighted assessments scatter more than routine ones.
type Volatility struct {
	LowStakes    StakesBucket `json:"low_stakes"`
	MediumStakes StakesBucket `json:"medium_stakes"`
	HighStakes   StakesBucket `json:"high_stakes"`
}

// VolatilityByStakes buckets a subject's grades by coefficient (<1.5,
// [1.5,2.5), >=2.5) and reports count, mean, std-dev and range per bucket.
// The second return is false when the subject is unknown.
func (a *Analyzer) VolatilityByStakes(subject string) (Volatility, bool) {
	records, ok := a.grouping.Records(subject)
	if !ok {
		return Volatility{}, false
	}

	var low, medium, high []float64
	for _, r := range records {
		v, ok := grades.Normalize(r)
		if !ok {
			continue
		}
		switch coef := r.Weight(); {
		case coef < lowStakesBound:
			low = append(low, v)
		case coef < highStakesBound:
			medium = append(medium, v)
		default:
			high = append(high, v)
		}
	}

	return Volatility{
		LowStakes:    bucketStats(low, "Low (<1.5)"),
		MediumStakes: bucketStats(medium, "Medium (1.5-2.5)"),
		HighStakes:   bucketStats(high, "High (>=2.5)"),
	}, true
}

func bucketStats(values []float64, label string) StakesBucket {
	if len(values) == 0 {
		return StakesBucket{Label: label}
	}
	minimum, _ := stats.Min(values)
	maximum, _ := stats.Max(values)
	return StakesBucket{
		Label:   label,
		Count:   len(values),
		StdDev:  round2(popStdDev(values)),
		Average: round2(mean(values)),
		Range:   round2(maximum - minimum),
	}
}
