// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Defaults live in New; Load layers an optional file and environment
//     variables on top.
//   - Every analytics policy knob is surfaced here so the engine's named
//     constants stay overridable without code changes.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxRecords caps the number of grade records accepted per analysis
	// request. A caller wanting bounded latency bounds its input here.
	MaxRecords int `koanf:"max_records"`

	// MaxSearchResults caps GET /schools/search output.
	MaxSearchResults int `koanf:"max_search_results"`

	// UseCoefficients toggles coefficient weighting in subject averages.
	UseCoefficients bool `koanf:"use_coefficients"`

	// GPAHorizonDays is the extrapolation horizon of the GPA projection.
	GPAHorizonDays int `koanf:"gpa_horizon_days"`

	// DecayThresholdPct is the percent change below which temporal decay
	// is reported. Negative.
	DecayThresholdPct float64 `koanf:"decay_threshold_pct"`

	// WindowDays is the default window for windowed analyses.
	WindowDays int `koanf:"window_days"`

	// ConfidenceLevel is the default level for forecast intervals.
	ConfidenceLevel float64 `koanf:"confidence_level"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		MaxRecords:        10_000,
		MaxSearchResults:  50,
		UseCoefficients:   true,
		GPAHorizonDays:    90,
		DecayThresholdPct: -10,
		WindowDays:        30,
		ConfidenceLevel:   0.95,
	}
}
