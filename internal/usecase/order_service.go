package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rasoilink/backend/internal/domain"
)

const catalogCacheKey = "catalog:products"

// VoiceOrderServiceConfig holds configuration for the voice order service
type VoiceOrderServiceConfig struct {
	CatalogCacheTTL    time.Duration
	MaxEditDistance    int
	EnableDebugLogging bool
}

// VoiceOrderService interprets transcribed voice orders against the live
// catalog. Catalog freshness is handled here (cache in front of the store
// client); the parse itself stays pure and holds no state between calls.
type VoiceOrderService struct {
	cache              domain.CacheRepository
	catalog            domain.CatalogProvider
	parser             *OrderParser
	catalogCacheTTL    time.Duration
	enableDebugLogging bool
}

// NewVoiceOrderService creates a new voice order service with dependencies
func NewVoiceOrderService(
	cache domain.CacheRepository,
	catalog domain.CatalogProvider,
	config VoiceOrderServiceConfig,
) *VoiceOrderService {
	matcher := NewMatchingService(MatchConfig{
		MaxEditDistance:    config.MaxEditDistance,
		EnableDebugLogging: config.EnableDebugLogging,
	})

	cacheTTL := config.CatalogCacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute // keep voice orders close to the live catalog
	}

	return &VoiceOrderService{
		cache:              cache,
		catalog:            catalog,
		parser:             NewOrderParser(matcher),
		catalogCacheTTL:    cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// InterpretOrder converts a transcript into a structured order.
// Flow: load catalog snapshot (cache -> store) -> parse -> render.
// Empty or unintelligible input is a valid outcome, not an error; only
// catalog acquisition can fail.
func (s *VoiceOrderService) InterpretOrder(
	ctx context.Context,
	request *domain.VoiceOrderRequest,
) (*domain.VoiceOrderResponse, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := s.parser.Parse(request.Text, products)

	if s.enableDebugLogging {
		log.Printf("[ORDER] Parsed %q: %d tokens, %d line items, %d unresolved",
			request.Text, result.TokenCount, len(result.LineItems), len(result.Unresolved))
	}

	return &domain.VoiceOrderResponse{
		Result:       result,
		Confirmation: renderConfirmation(result, request.Language),
	}, nil
}

// loadCatalog returns the current catalog snapshot, consulting the cache
// before the remote store. A failed cache write is not fatal.
func (s *VoiceOrderService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
		if products := productsFromCache(cached); products != nil {
			return products, nil
		}
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	if err := s.cache.Set(ctx, catalogCacheKey, products, s.catalogCacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[ORDER] Failed to cache catalog snapshot: %v", err)
	}

	return products, nil
}

// productsFromCache rebuilds the product slice from a cached value. The
// cache JSON round-trips values (mimicking Redis), so a stored
// []domain.Product comes back as []interface{} of maps.
func productsFromCache(value interface{}) []domain.Product {
	if products, ok := value.([]domain.Product); ok {
		return products
	}

	entries, ok := value.([]interface{})
	if !ok {
		return nil
	}

	products := make([]domain.Product, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			return nil
		}
		p := domain.Product{}
		if v, ok := fields["id"].(string); ok {
			p.ID = v
		}
		if v, ok := fields["name"].(string); ok {
			p.Name = v
		}
		if v, ok := fields["price"].(float64); ok {
			p.Price = v
		}
		if v, ok := fields["unit"].(string); ok {
			p.Unit = v
		}
		if v, ok := fields["supplierId"].(string); ok {
			p.SupplierID = v
		}
		if v, ok := fields["supplierName"].(string); ok {
			p.SupplierName = v
		}
		products = append(products, p)
	}
	return products
}
