package seed

import (
	"time"

	"github.com/carnet-app/carnet/internal/domain/model"
)

// Config holds configuration for the seed run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumSubjects int           // Number of subjects to generate
	NumGrades   int           // Grades per subject
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// Snapshot is the grade set posted to every analysis endpoint.
type Snapshot struct {
	Grades []model.GradeRecord `json:"grades"`
}

// Stats holds seed run statistics.
type Stats struct {
	GradesGenerated  int
	RequestsSent     int
	RequestsOK       int
	RequestsNotFound int
	RequestsFailed   int
	StartTime        time.Time
	Duration         time.Duration
}
