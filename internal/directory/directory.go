// Package directory exposes the static catalog of institutions behind a
// read-only store interface: regions, cities, the schools within them and
// a free-text search. The catalog is seeded at startup and never mutated.
package directory

import "context"

// School is one institution with its grading-system entry point.
type School struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	ENT  string `json:"ent,omitempty"` // academy portal hint, empty for direct access
}

// Match is a search hit with the location it was found under.
type Match struct {
	School
	Region string `json:"region"`
	City   string `json:"city"`
}

// Store provides read access to the school catalog.
type Store interface {
	// Regions returns every region name, sorted.
	Regions(ctx context.Context) []string

	// Cities returns the cities of a region, sorted.
	// Returns ErrRegionNotFound for an unknown region.
	Cities(ctx context.Context, region string) ([]string, error)

	// Schools returns the schools of a city within a region.
	// Returns ErrRegionNotFound or ErrCityNotFound when unknown.
	Schools(ctx context.Context, region, city string) ([]School, error)

	// Search returns schools whose name contains the query,
	// case- and accent-insensitively, up to the configured cap.
	Search(ctx context.Context, query string) []Match
}
