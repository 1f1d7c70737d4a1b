package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogProvider defines the interface for listing the live product catalog.
// Implementations resolve supplier display names before returning; a product
// whose supplier cannot be resolved is returned with an empty SupplierName.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]Product, error)
}
