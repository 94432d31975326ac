package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Backend tests need a live server:
//
//	FIGWIND_TEST_REDIS=localhost:6379 FIGWIND_TEST_MONGO=mongodb://localhost:27017 go test ./pkg/cache
func liveBackends(t *testing.T) map[string]Cache {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backends := make(map[string]Cache)
	scope := "figwind-test-" + uuid.NewString()
	if addr := os.Getenv("FIGWIND_TEST_REDIS"); addr != "" {
		c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: scope + ":"})
		if err != nil {
			t.Fatalf("NewRedisCache: %v", err)
		}
		backends["redis"] = c
	}
	if uri := os.Getenv("FIGWIND_TEST_MONGO"); uri != "" {
		c, err := NewMongoCache(ctx, MongoConfig{URI: uri, Collection: scope})
		if err != nil {
			t.Fatalf("NewMongoCache: %v", err)
		}
		backends["mongo"] = c
	}
	if len(backends) == 0 {
		t.Skip("set FIGWIND_TEST_REDIS or FIGWIND_TEST_MONGO to run backend tests")
	}
	return backends
}

func TestBackends(t *testing.T) {
	for name, c := range liveBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			defer func() {
				if cl, ok := c.(Clearer); ok {
					_, _ = cl.Clear(ctx)
				}
				c.Close()
			}()

			if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
				t.Fatalf("Get missing = %v, %v", hit, err)
			}
			if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
				t.Fatalf("Set: %v", err)
			}
			data, hit, err := c.Get(ctx, "k")
			if err != nil || !hit || string(data) != "v" {
				t.Fatalf("Get = %q, %v, %v", data, hit, err)
			}
			if err := c.Set(ctx, "k", []byte("w"), time.Minute); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if data, _, _ := c.Get(ctx, "k"); string(data) != "w" {
				t.Errorf("overwrite not visible: %q", data)
			}
			if err := c.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, hit, _ := c.Get(ctx, "k"); hit {
				t.Error("entry survived Delete")
			}
		})
	}
}
