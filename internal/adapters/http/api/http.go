// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/carnet-app/carnet/internal/directory"
	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyzer builds an analytics engine over a request's grade snapshot.
	Analyzer(records []model.GradeRecord) *analytics.Analyzer

	// MaxRecords is the per-request snapshot cap.
	MaxRecords() int

	// Directory lookups.
	Regions(ctx context.Context) []string
	Cities(ctx context.Context, region string) ([]string, error)
	Schools(ctx context.Context, region, city string) ([]directory.School, error)
	SearchSchools(ctx context.Context, query string) []directory.Match
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	analysisHandler *AnalysisHandler
	advancedHandler *AdvancedHandler
	schoolsHandler  *SchoolsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		analysisHandler: NewAnalysisHandler(deps),
		advancedHandler: NewAdvancedHandler(deps),
		schoolsHandler:  NewSchoolsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", instrument(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", instrument(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/analysis/averages", instrument(s.analysisHandler.HandleAverages, "averages"))
	mux.HandleFunc("/analysis/statistics", instrument(s.analysisHandler.HandleStatistics, "statistics"))
	mux.HandleFunc("/analysis/trends", instrument(s.analysisHandler.HandleTrends, "trends"))
	mux.HandleFunc("/analysis/comparison", instrument(s.analysisHandler.HandleComparison, "comparison"))
	mux.HandleFunc("/analysis/needed-grade", instrument(s.analysisHandler.HandleNeededGrade, "needed_grade"))
	mux.HandleFunc("/analysis/simulate-grades", instrument(s.analysisHandler.HandleSimulateGrades, "simulate_grades"))

	mux.HandleFunc("/advanced/consistency", instrument(s.advancedHandler.HandleConsistency, "consistency"))
	mux.HandleFunc("/advanced/improvement-rate", instrument(s.advancedHandler.HandleImprovementRate, "improvement_rate"))
	mux.HandleFunc("/advanced/volatility", instrument(s.advancedHandler.HandleVolatility, "volatility"))
	mux.HandleFunc("/advanced/context-performance", instrument(s.advancedHandler.HandleContextPerformance, "context_performance"))
	mux.HandleFunc("/advanced/gpa-projection", instrument(s.advancedHandler.HandleGPAProjection, "gpa_projection"))
	mux.HandleFunc("/advanced/correlations", instrument(s.advancedHandler.HandleCorrelations, "correlations"))
	mux.HandleFunc("/advanced/benchmark", instrument(s.advancedHandler.HandleBenchmark, "benchmark"))
	mux.HandleFunc("/advanced/temporal-decay", instrument(s.advancedHandler.HandleTemporalDecay, "temporal_decay"))
	mux.HandleFunc("/advanced/forecast", instrument(s.advancedHandler.HandleForecast, "forecast"))
	mux.HandleFunc("/advanced/learning-efficiency", instrument(s.advancedHandler.HandleLearningEfficiency, "learning_efficiency"))

	mux.HandleFunc("/schools/regions", instrument(s.schoolsHandler.HandleRegions, "school_regions"))
	mux.HandleFunc("/schools/cities", instrument(s.schoolsHandler.HandleCities, "school_cities"))
	mux.HandleFunc("/schools/list", instrument(s.schoolsHandler.HandleList, "school_list"))
	mux.HandleFunc("/schools/search", instrument(s.schoolsHandler.HandleSearch, "school_search"))
}

// snapshotRequest is the common shape of analysis requests: a grade
// snapshot plus an optional subject filter.
type snapshotRequest struct {
	Grades  []model.GradeRecord `json:"grades"`
	Subject string              `json:"subject,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeJSON decodes a POST body into dst, writing an error response on
// failure. The caller aborts when it returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return false
	}
	return true
}

// checkSnapshot enforces the per-request record cap.
func checkSnapshot(w http.ResponseWriter, deps Dependencies, n int) bool {
	if limit := deps.MaxRecords(); n > limit {
		writeError(w, http.StatusBadRequest, "too_many_records",
			fmt.Errorf("%w: %d records exceeds limit of %d", ErrTooManyRecords, n, limit))
		return false
	}
	return true
}
