package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// skipIfNoRedis returns WADMIN_TEST_REDIS_URL or skips the test.
func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	url := os.Getenv("WADMIN_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: WADMIN_TEST_REDIS_URL not set")
	}
	return url
}

func newTestRedisCache(t *testing.T, prefix string) *RedisCache {
	t.Helper()
	c, err := NewRedisCacheFromURL(skipIfNoRedis(t), prefix, time.Minute)
	if err != nil {
		t.Fatalf("failed to create Redis cache: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

func TestNewRedisCache_RequiresURL(t *testing.T) {
	if _, err := NewRedisCache(RedisCacheOptions{}); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestRedisCache_Basic(t *testing.T) {
	c := newTestRedisCache(t, "wadmin-test:")
	ctx := context.Background()

	if err := c.Set(ctx, "nav.header", []byte("[]"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := c.Get(ctx, "nav.header")
	if err != nil || string(got) != "[]" {
		t.Fatalf("Get = %q, %v", got, err)
	}
	if has, _ := c.Has(ctx, "nav.header"); !has {
		t.Error("Has = false after Set")
	}
	if err := c.Delete(ctx, "nav.header"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "nav.header"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_TTL(t *testing.T) {
	c := newTestRedisCache(t, "wadmin-ttl:")
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after TTL = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_DeleteByPrefix(t *testing.T) {
	c := newTestRedisCache(t, "wadmin-prefix:")
	ctx := context.Background()

	_ = c.Set(ctx, "nav.header", []byte("h"), 0)
	_ = c.Set(ctx, "nav.footer", []byte("f"), 0)
	_ = c.Set(ctx, "menu.settings", []byte("s"), 0)

	if err := c.DeleteByPrefix(ctx, "nav."); err != nil {
		t.Fatalf("DeleteByPrefix failed: %v", err)
	}
	if has, _ := c.Has(ctx, "nav.header"); has {
		t.Error("nav.header should be deleted")
	}
	if has, _ := c.Has(ctx, "menu.settings"); !has {
		t.Error("menu.settings should remain")
	}
	if items := c.Stats().Items; items != 1 {
		t.Errorf("Items = %d, want 1", items)
	}
}
