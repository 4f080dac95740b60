package directory

import (
	"context"
	"sort"
	"strings"
)

// defaultMaxSearchResults bounds Search output when not configured.
const defaultMaxSearchResults = 50

// Catalog maps region -> city -> schools.
type Catalog map[string]map[string][]School

// memoryStore implements Store over an immutable in-memory catalog with
// pre-sorted region and city indexes. All methods are safe for concurrent
// use because nothing is ever written after construction.
type memoryStore struct {
	catalog          Catalog
	regions          []string
	citiesByRegion   map[string][]string
	maxSearchResults int
}

// New builds a Store from the built-in catalog, or a caller-supplied one
// via WithCatalog.
func New(opts ...Option) Store {
	s := &memoryStore{
		catalog:          defaultCatalog,
		maxSearchResults: defaultMaxSearchResults,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.citiesByRegion = make(map[string][]string, len(s.catalog))
	for region, cities := range s.catalog {
		s.regions = append(s.regions, region)
		for city := range cities {
			s.citiesByRegion[region] = append(s.citiesByRegion[region], city)
		}
		sort.Strings(s.citiesByRegion[region])
	}
	sort.Strings(s.regions)

	return s
}

func (s *memoryStore) Regions(_ context.Context) []string {
	out := make([]string, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *memoryStore) Cities(_ context.Context, region string) ([]string, error) {
	cities, ok := s.citiesByRegion[region]
	if !ok {
		return nil, ErrRegionNotFound
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out, nil
}

func (s *memoryStore) Schools(_ context.Context, region, city string) ([]School, error) {
	cities, ok := s.catalog[region]
	if !ok {
		return nil, ErrRegionNotFound
	}
	schools, ok := cities[city]
	if !ok {
		return nil, ErrCityNotFound
	}
	out := make([]School, len(schools))
	copy(out, schools)
	return out, nil
}

func (s *memoryStore) Search(_ context.Context, query string) []Match {
	needle := searchFold(query)
	if needle == "" {
		return []Match{}
	}

	matches := []Match{}
	for _, region := range s.regions {
		for _, city := range s.citiesByRegion[region] {
			for _, school := range s.catalog[region][city] {
				if !strings.Contains(searchFold(school.Name), needle) {
					continue
				}
				matches = append(matches, Match{School: school, Region: region, City: city})
				if len(matches) >= s.maxSearchResults {
					return matches
				}
			}
		}
	}
	return matches
}

// accentFold maps the accented letters that occur in French school names
// to their base letters.
var accentFold = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"ç", "c",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
)

func searchFold(s string) string {
	return accentFold.Replace(strings.ToLower(strings.TrimSpace(s)))
}
