// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/carnet-app/carnet/internal/domain/analytics"
	"github.com/carnet-app/carnet/internal/domain/model"
	"github.com/carnet-app/carnet/pkg/metrics"
)

// AnalysisHandler handles the core analysis endpoints. Every endpoint is
// a POST carrying the caller's grade snapshot; the service keeps nothing
// between requests.
type AnalysisHandler struct {
	deps Dependencies
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(deps Dependencies) *AnalysisHandler {
	return &AnalysisHandler{deps: deps}
}

type averagesResponse struct {
	Averages []analytics.SubjectAverageEntry `json:"averages"`
}

// HandleAverages handles POST /analysis/averages requests.
func (h *AnalysisHandler) HandleAverages(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("averages")()

	an := h.deps.Analyzer(req.Grades)
	writeJSON(w, http.StatusOK, averagesResponse{Averages: an.Averages()})
}

type statisticsResponse struct {
	Statistics map[string]analytics.SubjectStatistics `json:"statistics"`
}

// HandleStatistics handles POST /analysis/statistics requests. An empty
// subject requests statistics for every subject.
func (h *AnalysisHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("statistics")()

	an := h.deps.Analyzer(req.Grades)
	stats, ok := an.Statistics(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, statisticsResponse{Statistics: stats})
}

// HandleTrends handles POST /analysis/trends requests.
func (h *AnalysisHandler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("trends")()

	an := h.deps.Analyzer(req.Grades)
	trend, ok := an.PredictTrend(req.Subject)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	if trend.Trend == analytics.TrendInsufficientData {
		metrics.RecordInsufficientData("trends")
	}
	writeJSON(w, http.StatusOK, trend)
}

type comparisonResponse struct {
	Comparison []analytics.ComparisonEntry `json:"comparison"`
}

// HandleComparison handles POST /analysis/comparison requests.
func (h *AnalysisHandler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if !decodeJSON(w, r, &req) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	defer observeAnalysis("comparison")()

	an := h.deps.Analyzer(req.Grades)
	writeJSON(w, http.StatusOK, comparisonResponse{Comparison: an.CompareSubjects()})
}

type neededGradeRequest struct {
	Grades        []model.GradeRecord `json:"grades"`
	Subject       string              `json:"subject"`
	TargetAverage float64             `json:"target_average"`
	Coefficient   float64             `json:"coefficient,omitempty"`
	OutOf         float64             `json:"out_of,omitempty"`
}

// HandleNeededGrade handles POST /analysis/needed-grade requests.
func (h *AnalysisHandler) HandleNeededGrade(w http.ResponseWriter, r *http.Request) {
	var req neededGradeRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	if !validTarget(w, req.TargetAverage) {
		return
	}
	defer observeAnalysis("needed_grade")()

	an := h.deps.Analyzer(req.Grades)
	needed, ok := an.NeededGrade(req.Subject, req.TargetAverage, req.Coefficient, req.OutOf)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, needed)
}

type simulateRequest struct {
	Grades        []model.GradeRecord `json:"grades"`
	Subject       string              `json:"subject"`
	TargetAverage float64             `json:"target_average"`
	NumGrades     int                 `json:"num_grades,omitempty"`
	Coefficient   float64             `json:"coefficient,omitempty"`
	OutOf         float64             `json:"out_of,omitempty"`
}

// HandleSimulateGrades handles POST /analysis/simulate-grades requests.
func (h *AnalysisHandler) HandleSimulateGrades(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if !decodeJSON(w, r, &req) || !requireSubject(w, req.Subject) || !checkSnapshot(w, h.deps, len(req.Grades)) {
		return
	}
	if !validTarget(w, req.TargetAverage) {
		return
	}
	defer observeAnalysis("simulate_grades")()

	an := h.deps.Analyzer(req.Grades)
	sim, ok := an.SimulateGrades(req.Subject, req.TargetAverage, req.NumGrades, req.Coefficient, req.OutOf)
	if !ok {
		subjectNotFound(w, req.Subject)
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// requireSubject rejects requests whose subject is empty or blank.
func requireSubject(w http.ResponseWriter, subject string) bool {
	if strings.TrimSpace(subject) == "" {
		writeError(w, http.StatusBadRequest, "missing_subject", ErrMissingSubject)
		return false
	}
	return true
}

func validTarget(w http.ResponseWriter, target float64) bool {
	if target <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Errorf("%w: target_average must be positive", ErrBadRequest))
		return false
	}
	return true
}

func subjectNotFound(w http.ResponseWriter, subject string) {
	metrics.RecordSubjectNotFound()
	writeError(w, http.StatusNotFound, "subject_not_found",
		fmt.Errorf("%w: %q", ErrSubjectNotFound, subject))
}
