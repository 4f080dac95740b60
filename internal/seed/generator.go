package seed

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/carnet-app/carnet/internal/domain/model"
)

// randomFloatDivisor bounds the crypto/rand draw used for float generation.
const randomFloatDivisor = 1000000

// Archetype cases shaping a subject's grade trajectory.
const (
	caseSteady = iota
	caseImproving
	caseDeclining
	caseVolatile
	archetypeCount
)

// Grade trajectory parameters on the 0-20 scale.
const (
	steadyBase     = 12.0
	steadyJitter   = 2.0
	improvingStart = 8.0
	improvingGain  = 6.0
	decliningStart = 16.0
	decliningLoss  = 6.0
	volatileMid    = 11.0
	volatileSwing  = 7.0
	classAvgBase   = 10.0
	classAvgJitter = 3.0
)

// daysBetweenGrades spaces generated grades a week apart.
const daysBetweenGrades = 7

// subjectPool is drawn from in order; NumSubjects caps how many are used.
var subjectPool = []string{
	"Mathématiques",
	"Français",
	"Histoire-Géographie",
	"Anglais",
	"Physique-Chimie",
	"SVT",
	"EPS",
	"Espagnol",
}

// commentPool rotates through assessment kinds so context analysis has
// something to classify.
var commentPool = []string{
	"DS chapitre en cours",
	"DM à la maison",
	"Oral de présentation",
	"TP noté",
	"Interrogation surprise",
	"Contrôle de fin de séquence",
}

// coefficientPool mixes low, medium and high stakes.
var coefficientPool = []float64{1, 1, 2, 3}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// buildSnapshot generates a deterministic-shaped, randomly jittered grade
// history: one archetype per subject, one grade a week ending today.
func buildSnapshot(numSubjects, gradesPerSubject int) Snapshot {
	if numSubjects < 1 {
		numSubjects = 1
	}
	if numSubjects > len(subjectPool) {
		numSubjects = len(subjectPool)
	}
	if gradesPerSubject < 1 {
		gradesPerSubject = 1
	}

	records := make([]model.GradeRecord, 0, numSubjects*gradesPerSubject)
	now := time.Now()

	for s := 0; s < numSubjects; s++ {
		archetype := s % archetypeCount
		for i := 0; i < gradesPerSubject; i++ {
			progress := 0.0
			if gradesPerSubject > 1 {
				progress = float64(i) / float64(gradesPerSubject-1)
			}
			value := gradeFor(archetype, progress)
			date := now.AddDate(0, 0, -daysBetweenGrades*(gradesPerSubject-1-i))

			records = append(records, model.GradeRecord{
				Subject:      subjectPool[s],
				Grade:        formatFrench(value),
				OutOf:        model.DefaultOutOf,
				Coefficient:  coefficientPool[i%len(coefficientPool)],
				Date:         date.Format("2006-01-02"),
				Comment:      commentPool[i%len(commentPool)],
				ClassAverage: formatFrench(classAvgBase + getRandomFloat()*classAvgJitter),
			})
		}
	}

	return Snapshot{Grades: records}
}

// gradeFor maps a trajectory position to a grade for the archetype.
func gradeFor(archetype int, progress float64) float64 {
	var v float64
	switch archetype {
	case caseSteady:
		v = steadyBase + (getRandomFloat()-0.5)*steadyJitter
	case caseImproving:
		v = improvingStart + progress*improvingGain + (getRandomFloat()-0.5)*steadyJitter
	case caseDeclining:
		v = decliningStart - progress*decliningLoss + (getRandomFloat()-0.5)*steadyJitter
	case caseVolatile:
		v = volatileMid + (getRandomFloat()-0.5)*volatileSwing
	default:
		v = steadyBase
	}
	if v < 0 {
		v = 0
	}
	if v > 20 {
		v = 20
	}
	return v
}

// formatFrench renders a grade the way exported report cards do, with a
// decimal comma, so the server's parser gets exercised.
func formatFrench(v float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.1f", v), ".", ",")
}
