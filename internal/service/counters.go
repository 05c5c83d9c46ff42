package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"github.com/redis/go-redis/v9"
)

const likeCountTTL = 5 * time.Minute

// LikeCounter serves per-post like counts through a read-through redis
// cache. A cache failure falls back to the store; writes invalidate.
type LikeCounter struct {
	likeRepo repository.LikeRepository
	redis    *redis.Client
}

// NewLikeCounter creates a new LikeCounter instance.
func NewLikeCounter(likeRepo repository.LikeRepository, redisClient *redis.Client) *LikeCounter {
	return &LikeCounter{likeRepo: likeRepo, redis: redisClient}
}

func likeCountKey(postID int64) string {
	return fmt.Sprintf("like_count:%d", postID)
}

// Count returns the like count for a post, from cache when warm.
func (c *LikeCounter) Count(ctx context.Context, postID int64) (int64, error) {
	if cached, err := c.redis.Get(ctx, likeCountKey(postID)).Result(); err == nil {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return count, nil
		}
	}

	count, err := c.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	// Best effort; a failed cache write only costs the next read a query.
	c.redis.Set(ctx, likeCountKey(postID), strconv.FormatInt(count, 10), likeCountTTL)

	return count, nil
}

// Invalidate drops the cached count after a like or unlike.
func (c *LikeCounter) Invalidate(ctx context.Context, postID int64) {
	c.redis.Del(ctx, likeCountKey(postID))
}
