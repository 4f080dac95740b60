// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/carnet-app/carnet/internal/domain/model"
	"github.com/carnet-app/carnet/pkg/metrics"
)

// AdvancedHandler handles the extended analytics endpoints.
type AdvancedHandler struct {
	deps Dependencies
}

// NewAdvancedHandler creates a new advanced analytics handler.
func NewAdvancedHandler(deps Dependencies) *AdvancedHandler {
	return &AdvancedHandler{deps: deps}
}

// HandleConsistency handles POST /advanced/consistency requests.
func (h *AdvancedHandler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("consistency")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.ConsistencyIndex(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleImprovementRate handles POST /advanced/improvement-rate requests.
func (h *AdvancedHandler) HandleImprovementRate(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("improvement_rate")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.ImprovementRate(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleVolatility handles POST /advanced/volatility requests.
func (h *AdvancedHandler) HandleVolatility(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("volatility")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.VolatilityByStakes(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleContextPerformance handles POST /advanced/context-performance requests.
func (h *AdvancedHandler) HandleContextPerformance(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("context_performance")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.ContextPerformance(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleGPAProjection handles POST /advanced/gpa-projection requests.
// The projection spans the whole snapshot, so no subject is required.
func (h *AdvancedHandler) HandleGPAProjection(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("gpa_projection")()

	an := h.deps.Analyzer(req.Grades)
	writeJSON(w, http.StatusOK, an.ProjectGPA())
}

// HandleCorrelations handles POST /advanced/correlations requests.
func (h *AdvancedHandler) HandleCorrelations(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("correlations")()

	an := h.deps.Analyzer(req.Grades)
	writeJSON(w, http.StatusOK, an.SubjectCorrelations())
}

// HandleBenchmark handles POST /advanced/benchmark requests.
func (h *AdvancedHandler) HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("benchmark")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.BenchmarkVsClass(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type decayRequest struct {
	Grades     []model.GradeRecord `json:"grades"`
	Subject    string              `json:"subject"`
	WindowDays int                 `json:"window_days,omitempty"`
}

// HandleTemporalDecay handles POST /advanced/temporal-decay requests.
func (h *AdvancedHandler) HandleTemporalDecay(w http.ResponseWriter, r *http.Request) {
	var req decayRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("temporal_decay")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.TemporalDecay(req.Subject, req.WindowDays)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	if result.Reason != "" {
		metrics.RecordInsufficientData("temporal_decay")
	}
	writeJSON(w, http.StatusOK, result)
}

type forecastRequest struct {
	Grades          []model.GradeRecord `json:"grades"`
	Subject         string              `json:"subject"`
	ConfidenceLevel float64             `json:"confidence_level,omitempty"`
}

// HandleForecast handles POST /advanced/forecast requests.
func (h *AdvancedHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	var req forecastRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("forecast")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.ForecastWithConfidence(req.Subject, req.ConfidenceLevel)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	if result.Reason != "" {
		metrics.RecordInsufficientData("forecast")
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleLearningEfficiency handles POST /advanced/learning-efficiency requests.
func (h *AdvancedHandler) HandleLearningEfficiency(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("learning_efficiency")()

	an := h.deps.Analyzer(req.Grades)
	result, ok := an.LearningEfficiency(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
