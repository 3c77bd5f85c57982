package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	c := &memoryCache{items: make(map[string]memoryEntry), now: func() time.Time { return now }}

	t.Run("miss on unknown key", func(t *testing.T) {
		if _, err := c.Get(ctx, "nope"); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := c.Get(ctx, "k")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(got) != "v" {
			t.Fatalf("expected v, got %q", got)
		}
	})

	t.Run("expires after ttl", func(t *testing.T) {
		if err := c.Set(ctx, "short", []byte("x"), time.Second); err != nil {
			t.Fatalf("set: %v", err)
		}
		now = now.Add(2 * time.Second)
		if _, err := c.Get(ctx, "short"); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss after ttl, got %v", err)
		}
	})

	t.Run("del removes", func(t *testing.T) {
		_ = c.Set(ctx, "gone", []byte("x"), 0)
		if err := c.Del(ctx, "gone"); err != nil {
			t.Fatalf("del: %v", err)
		}
		if _, err := c.Get(ctx, "gone"); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss after del, got %v", err)
		}
	})
}
