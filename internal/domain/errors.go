package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogAPIFailure is returned when the catalog store request fails
	ErrCatalogAPIFailure = errors.New("catalog store request failed")

	// ErrEmptyCatalog is returned when the catalog store has no products
	ErrEmptyCatalog = errors.New("catalog contains no products")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
