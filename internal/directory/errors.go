package directory

import "errors"

// Sentinel kinds for directory lookups. These allow errors.Is from callers.
var (
	ErrRegionNotFound = errors.New("region not found")
	ErrCityNotFound   = errors.New("city not found")
)
