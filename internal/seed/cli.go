package seed

import (
	"fmt"
	"os"

	"github.com/carnet-app/carnet/pkg/logger"
)

// SetupLogging initializes the logger for CLI use.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`Carnet Seed Tool
================

Generates synthetic grade histories and exercises every analysis
endpoint of a running carnet instance.

Usage:
  go run cmd/seed-grades/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -subjects int
        Number of subjects to generate (default 6, max 8)
  -grades int
        Grades per subject (default 12)
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-grades/main.go

  # A term's worth of grades for every subject
  go run cmd/seed-grades/main.go -subjects 8 -grades 20

  # Against a non-local instance
  go run cmd/seed-grades/main.go -url http://carnet.internal:8080
`)
}
