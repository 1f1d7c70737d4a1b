package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rasoilink/backend/internal/domain"
)

// fakeCache is a minimal CacheRepository that stores values untouched.
type fakeCache struct {
	data map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (c *fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, domain.ErrCacheMiss
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

// fakeCatalog is a CatalogProvider returning a fixed snapshot or error.
type fakeCatalog struct {
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func TestInterpretOrder(t *testing.T) {
	ctx := context.Background()

	newService := func(catalog *fakeCatalog, cache *fakeCache) *VoiceOrderService {
		return NewVoiceOrderService(cache, catalog, VoiceOrderServiceConfig{})
	}

	t.Run("returns error for nil request", func(t *testing.T) {
		svc := newService(&fakeCatalog{products: testCatalog()}, newFakeCache())
		_, err := svc.InterpretOrder(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("interprets a mixed-language order", func(t *testing.T) {
		svc := newService(&fakeCatalog{products: testCatalog()}, newFakeCache())

		resp, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{
			Text:     "दो आलू aur one doodh",
			Language: "hi-IN",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(resp.Result.LineItems) != 2 {
			t.Fatalf("LineItems = %v, want potatoes and milk", resp.Result.LineItems)
		}
		if resp.Result.LineItems[0].Quantity != 2 {
			t.Errorf("potatoes quantity = %d, want 2", resp.Result.LineItems[0].Quantity)
		}
		// "aur" (Hindi "and") is noise and must surface as unresolved
		if len(resp.Result.Unresolved) != 1 || resp.Result.Unresolved[0] != "aur" {
			t.Errorf("Unresolved = %v, want [aur]", resp.Result.Unresolved)
		}
		if !strings.Contains(resp.Confirmation, "जोड़ा गया") {
			t.Errorf("Confirmation = %q, want hindi template", resp.Confirmation)
		}
	})

	t.Run("empty text is a valid outcome", func(t *testing.T) {
		svc := newService(&fakeCatalog{products: testCatalog()}, newFakeCache())

		for _, text := range []string{"", "   "} {
			resp, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: text})
			if err != nil {
				t.Fatalf("InterpretOrder(%q) error: %v", text, err)
			}
			if resp.Result.TokenCount != 0 {
				t.Errorf("InterpretOrder(%q): TokenCount = %d, want 0", text, resp.Result.TokenCount)
			}
			if resp.Confirmation != "Could not understand your order." {
				t.Errorf("InterpretOrder(%q): Confirmation = %q", text, resp.Confirmation)
			}
		}
	})

	t.Run("caches the catalog snapshot between calls", func(t *testing.T) {
		catalog := &fakeCatalog{products: testCatalog()}
		svc := newService(catalog, newFakeCache())

		for i := 0; i < 3; i++ {
			if _, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: "aloo"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if catalog.calls != 1 {
			t.Errorf("store calls = %d, want 1 (snapshot cached)", catalog.calls)
		}
	})

	t.Run("decodes a JSON-shaped cached snapshot", func(t *testing.T) {
		cache := newFakeCache()
		// Shape a Redis-style round-tripped value: []interface{} of maps.
		cache.data[catalogCacheKey] = []interface{}{
			map[string]interface{}{
				"id": "p9", "name": "onion", "price": 30.0,
				"unit": "kg", "supplierId": "s9", "supplierName": "Gupta & Sons",
			},
		}
		catalog := &fakeCatalog{products: testCatalog()}
		svc := newService(catalog, cache)

		resp, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: "pyaz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if catalog.calls != 0 {
			t.Errorf("store calls = %d, want 0 (served from cache)", catalog.calls)
		}
		if len(resp.Result.LineItems) != 1 || resp.Result.LineItems[0].Product.ID != "p9" {
			t.Errorf("LineItems = %v, want cached onion p9", resp.Result.LineItems)
		}
	})

	t.Run("wraps catalog store failures", func(t *testing.T) {
		svc := newService(&fakeCatalog{err: errors.New("boom")}, newFakeCache())

		_, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: "aloo"})
		if !errors.Is(err, domain.ErrCatalogAPIFailure) {
			t.Errorf("error = %v, want ErrCatalogAPIFailure", err)
		}
	})

	t.Run("same transcript and snapshot give identical results", func(t *testing.T) {
		svc := newService(&fakeCatalog{products: testCatalog()}, newFakeCache())

		first, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: "2 aloo xyz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.InterpretOrder(ctx, &domain.VoiceOrderRequest{Text: "2 aloo xyz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Confirmation != second.Confirmation {
			t.Errorf("confirmations differ: %q vs %q", first.Confirmation, second.Confirmation)
		}
	})
}
