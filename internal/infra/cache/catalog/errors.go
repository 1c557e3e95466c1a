package catalog

import "errors"

var (
	// ErrCacheMiss is returned when no catalog is cached for the slug.
	ErrCacheMiss = errors.New("catalog cache: miss")

	// ErrCacheUnavailable is returned on redis transport or codec failures.
	ErrCacheUnavailable = errors.New("catalog cache: unavailable")
)
