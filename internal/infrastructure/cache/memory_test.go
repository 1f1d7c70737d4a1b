package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rasoilink/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get returns the value", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := c.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "value" {
			t.Errorf("Get() = %v, want value", got)
		}
	})

	t.Run("missing key returns cache miss", func(t *testing.T) {
		c := NewMemoryCache()
		_, err := c.Get(ctx, "absent")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entry returns cache miss", func(t *testing.T) {
		c := NewMemoryCache()
		if err := c.Set(ctx, "key", "value", time.Millisecond); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "key")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("values are JSON round-tripped like redis", func(t *testing.T) {
		c := NewMemoryCache()
		products := []domain.Product{
			{ID: "p1", Name: "onion", Price: 32, Unit: "kg", SupplierID: "s1", SupplierName: "Sharma Traders"},
		}
		if err := c.Set(ctx, "catalog", products, time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := c.Get(ctx, "catalog")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		entries, ok := got.([]interface{})
		if !ok {
			t.Fatalf("Get() = %T, want []interface{} (JSON shape)", got)
		}
		fields, ok := entries[0].(map[string]interface{})
		if !ok {
			t.Fatalf("entry = %T, want map[string]interface{}", entries[0])
		}
		if fields["name"] != "onion" {
			t.Errorf("name = %v, want onion", fields["name"])
		}
		if fields["price"] != 32.0 {
			t.Errorf("price = %v, want 32", fields["price"])
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c := NewMemoryCache()
		_ = c.Set(ctx, "key", "value", time.Minute)
		if err := c.Delete(ctx, "key"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error after delete = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("exists reflects presence and expiry", func(t *testing.T) {
		c := NewMemoryCache()
		_ = c.Set(ctx, "live", "v", time.Minute)
		_ = c.Set(ctx, "dead", "v", time.Millisecond)
		time.Sleep(5 * time.Millisecond)

		if ok, _ := c.Exists(ctx, "live"); !ok {
			t.Error("Exists(live) = false, want true")
		}
		if ok, _ := c.Exists(ctx, "dead"); ok {
			t.Error("Exists(dead) = true, want false")
		}
		if ok, _ := c.Exists(ctx, "never"); ok {
			t.Error("Exists(never) = true, want false")
		}
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		c := NewMemoryCache()
		_ = c.Set(ctx, "a", 1, time.Minute)
		_ = c.Set(ctx, "b", 2, time.Minute)

		c.Clear()
		if c.Size() != 0 {
			t.Errorf("Size() = %d after Clear, want 0", c.Size())
		}
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		c := NewMemoryCache()
		done := make(chan struct{})

		for i := 0; i < 10; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				for j := 0; j < 100; j++ {
					_ = c.Set(ctx, "shared", j, time.Minute)
					_, _ = c.Get(ctx, "shared")
				}
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}
	})
}
