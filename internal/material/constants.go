package material

import "time"

// Defaults for the current-price cache. Overridable via config.
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Pagination bounds for material listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)
