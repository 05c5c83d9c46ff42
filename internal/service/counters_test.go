package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestLikeCounter_ReadThrough(t *testing.T) {
	storeReads := 0
	likeRepo := &mockLikeRepository{
		countByPostFunc: func(ctx context.Context, postID int64) (int64, error) {
			storeReads++
			return 42, nil
		},
	}
	counter := NewLikeCounter(likeRepo, newTestRedis(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		count, err := counter.Count(ctx, 7)
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count != 42 {
			t.Errorf("Count() = %d, want 42", count)
		}
	}

	// Only the first read hits the store; the rest come from the cache.
	if storeReads != 1 {
		t.Errorf("store reads = %d, want 1", storeReads)
	}
}

func TestLikeCounter_Invalidate(t *testing.T) {
	current := int64(1)
	likeRepo := &mockLikeRepository{
		countByPostFunc: func(ctx context.Context, postID int64) (int64, error) {
			return current, nil
		},
	}
	counter := NewLikeCounter(likeRepo, newTestRedis(t))
	ctx := context.Background()

	if count, _ := counter.Count(ctx, 7); count != 1 {
		t.Fatalf("Count() = %d, want 1", count)
	}

	current = 2
	counter.Invalidate(ctx, 7)

	if count, _ := counter.Count(ctx, 7); count != 2 {
		t.Errorf("Count() after invalidate = %d, want 2", count)
	}
}
