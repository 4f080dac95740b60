// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carnet-app/carnet/internal/directory"
	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/grades"
	"github.com/carnet-app/carnet/internal/domain/model"
	"github.com/carnet-app/carnet/pkg/logger"
	"github.com/carnet-app/carnet/pkg/metrics"
)

// Default snapshot bound applied when not configured.
const defaultMaxRecords = 10_000

// Service implements the API dependencies for the analytics system. It
// owns no per-request state: every analysis request gets a fresh Analyzer
// over its own snapshot, so concurrent requests need no coordination.
type Service struct {
	mu sync.RWMutex

	schools directory.Store

	// Analytics policy applied to every Analyzer built here.
	useCoefficients   bool
	gpaHorizonDays    int
	decayThresholdPct float64
	windowDays        int
	confidenceLevel   float64

	maxRecords int

	// State
	started   bool
	startedAt time.Time

	// Monitoring counters
	analysesRun atomic.Int64
	recordsSeen atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDirectory sets the school directory store.
func WithDirectory(store directory.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.schools = store
		}
	}
}

// WithMaxRecords caps the snapshot size accepted per analysis request.
func WithMaxRecords(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxRecords = limit
		}
	}
}

// WithCoefficientWeighting toggles coefficient weighting in averages.
func WithCoefficientWeighting(enabled bool) Option {
	return func(s *Service) {
		s.useCoefficients = enabled
	}
}

// WithGPAHorizon sets the GPA projection horizon in days.
func WithGPAHorizon(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.gpaHorizonDays = days
		}
	}
}

// WithDecayThreshold sets the decay-detection threshold percentage.
func WithDecayThreshold(pct float64) Option {
	return func(s *Service) {
		if pct < 0 {
			s.decayThresholdPct = pct
		}
	}
}

// WithWindow sets the default comparison window length in days.
func WithWindow(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

// WithConfidenceLevel sets the default forecast confidence level.
func WithConfidenceLevel(level float64) Option {
	return func(s *Service) {
		if level > 0 && level < 1 {
			s.confidenceLevel = level
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		schools:         directory.New(),
		useCoefficients: true,
		maxRecords:      defaultMaxRecords,
		logger:          logger.Get(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start marks the service ready. The directory is already built in New;
// nothing else needs warming up.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "service started",
		logger.Int("max_records", s.maxRecords),
		logger.Bool("use_coefficients", s.useCoefficients))
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Analyzer builds a fresh analytics engine over the supplied snapshot,
// applying the configured policy. The snapshot is caller-owned and never
// mutated.
func (s *Service) Analyzer(records []model.GradeRecord) *analytics.Analyzer {
	s.analysesRun.Add(1)
	s.recordsSeen.Add(int64(len(records)))
	metrics.RecordAnalysisSize(len(records))
	for _, r := range records {
		if _, ok := grades.Normalize(r); !ok {
			metrics.RecordParseFailure()
		}
	}

	opts := make([]analytics.Option, 0, 5)
	if !s.useCoefficients {
		opts = append(opts, analytics.WithoutCoefficients())
	}
	if s.gpaHorizonDays > 0 {
		opts = append(opts, analytics.WithGPAHorizon(s.gpaHorizonDays))
	}
	if s.decayThresholdPct < 0 {
		opts = append(opts, analytics.WithDecayThreshold(s.decayThresholdPct))
	}
	if s.windowDays > 0 {
		opts = append(opts, analytics.WithWindow(s.windowDays))
	}
	if s.confidenceLevel > 0 && s.confidenceLevel < 1 {
		opts = append(opts, analytics.WithConfidenceLevel(s.confidenceLevel))
	}
	return analytics.New(records, opts...)
}

// MaxRecords returns the per-request snapshot cap.
func (s *Service) MaxRecords() int {
	return s.maxRecords
}

// Regions lists directory regions.
func (s *Service) Regions(ctx context.Context) []string {
	metrics.RecordDirectoryLookup("regions")
	return s.schools.Regions(ctx)
}

// Cities lists a region's cities.
func (s *Service) Cities(ctx context.Context, region string) ([]string, error) {
	metrics.RecordDirectoryLookup("cities")
	return s.schools.Cities(ctx, region)
}

// Schools lists a city's schools.
func (s *Service) Schools(ctx context.Context, region, city string) ([]directory.School, error) {
	metrics.RecordDirectoryLookup("schools")
	return s.schools.Schools(ctx, region, city)
}

// SearchSchools searches the directory by school name.
func (s *Service) SearchSchools(ctx context.Context, query string) []directory.Match {
	metrics.RecordDirectorySearch()
	return s.schools.Search(ctx, query)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	startedAt := s.startedAt
	s.mu.RUnlock()

	uptime := time.Duration(0)
	if started {
		uptime = time.Since(startedAt)
	}

	return map[string]interface{}{
		"started":         started,
		"uptimeSeconds":   int(uptime.Seconds()),
		"analysesRun":     int(s.analysesRun.Load()),
		"recordsSeen":     int(s.recordsSeen.Load()),
		"maxRecords":      s.maxRecords,
		"useCoefficients": s.useCoefficients,
		"gpaHorizonDays":  s.gpaHorizonDays,
		"windowDays":      s.windowDays,
		"confidenceLevel": s.confidenceLevel,
		"decayThreshold":  s.decayThresholdPct,
	}
}
