package directory

// Option applies a configuration option to the in-memory store.
type Option func(*memoryStore)

// WithMaxSearchResults caps the number of matches Search returns.
func WithMaxSearchResults(limit int) Option {
	return func(s *memoryStore) {
		if limit > 0 {
			s.maxSearchResults = limit
		}
	}
}

// WithCatalog replaces the built-in school catalog, e.g. for tests or a
// region-specific deployment.
func WithCatalog(catalog Catalog) Option {
	return func(s *memoryStore) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}
