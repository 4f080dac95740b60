// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/carnet-app/carnet/internal/directory"
)

// SchoolsHandler handles school directory requests.
type SchoolsHandler struct {
	deps Dependencies
}

// NewSchoolsHandler creates a new schools handler.
func NewSchoolsHandler(deps Dependencies) *SchoolsHandler {
	return &SchoolsHandler{deps: deps}
}

type regionsResponse struct {
	Regions []string `json:"regions"`
}

// HandleRegions handles GET /schools/regions requests.
func (h *SchoolsHandler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, regionsResponse{Regions: h.deps.Regions(r.Context())})
}

type citiesResponse struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

// HandleCities handles GET /schools/cities?region=R requests.
func (h *SchoolsHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing region"))
		return
	}
	cities, err := h.deps.Cities(r.Context(), region)
	if err != nil {
		if errors.Is(err, directory.ErrRegionNotFound) {
			writeError(w, http.StatusNotFound, "region_not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, citiesResponse{Region: region, Cities: cities})
}

type schoolsResponse struct {
	Region  string             `json:"region"`
	City    string             `json:"city"`
	Schools []directory.School `json:"schools"`
}

// HandleList handles GET /schools/list?region=R&city=C requests.
func (h *SchoolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if region == "" || city == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing region or city"))
		return
	}
	schools, err := h.deps.Schools(r.Context(), region, city)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrRegionNotFound):
			writeError(w, http.StatusNotFound, "region_not_found", err)
		case errors.Is(err, directory.ErrCityNotFound):
			writeError(w, http.StatusNotFound, "city_not_found", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, schoolsResponse{Region: region, City: city, Schools: schools})
}

type searchResponse struct {
	Query   string            `json:"query"`
	Results []directory.Match `json:"results"`
}

// HandleSearch handles GET /schools/search?q=QUERY requests.
func (h *SchoolsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing query"))
		return
	}
	results := h.deps.SearchSchools(r.Context(), query)
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}
