package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
	postTotalKey     = "posts:total"
	postTotalTTL     = 30 * time.Second
)

// FeedPage is one page of a feed.
type FeedPage struct {
	Items []PostResponse `json:"items"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
}

// FeedService serves the home feed (followed users plus self, offset
// paginated) and the explore feed (all posts, wraparound paginated).
type FeedService interface {
	Home(ctx context.Context, subjectID int64, page, limit int) (*FeedPage, error)
	Explore(ctx context.Context, page, limit int) (*FeedPage, error)
}

type feedService struct {
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	commentRepo repository.CommentRepository
	likeCounter *LikeCounter
	redis       *redis.Client
}

// NewFeedService creates a new FeedService instance.
func NewFeedService(
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	commentRepo repository.CommentRepository,
	likeCounter *LikeCounter,
	redisClient *redis.Client,
) FeedService {
	return &feedService{
		postRepo:    postRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
		likeCounter: likeCounter,
		redis:       redisClient,
	}
}

func (s *feedService) Home(ctx context.Context, subjectID int64, page, limit int) (*FeedPage, error) {
	page, limit = normalizePage(page, limit)

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followingIDs, subjectID)

	posts, err := s.postRepo.ListFeed(ctx, authorIDs, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	items, err := decoratePosts(ctx, posts, s.commentRepo, s.likeCounter, previewCommentCount)
	if err != nil {
		return nil, err
	}

	return &FeedPage{Items: items, Page: page, Limit: limit}, nil
}

// Explore pages through all posts and wraps to the beginning instead of
// returning an empty page: for any nonzero total, every page carries
// exactly min(limit, total) items.
func (s *feedService) Explore(ctx context.Context, page, limit int) (*FeedPage, error) {
	page, limit = normalizePage(page, limit)

	total, err := s.totalPosts(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &FeedPage{Items: []PostResponse{}, Page: page, Limit: limit}, nil
	}

	want := limit
	if int64(want) > total {
		want = int(total)
	}
	start := (int64(page-1) * int64(limit)) % total

	posts, err := s.postRepo.ListRange(ctx, int(start), want)
	if err != nil {
		return nil, err
	}
	if len(posts) < want {
		// Ran past the end; wrap to the start for the remainder.
		wrapped, err := s.postRepo.ListRange(ctx, 0, want-len(posts))
		if err != nil {
			return nil, err
		}
		posts = append(posts, wrapped...)
	}

	items, err := decoratePosts(ctx, posts, s.commentRepo, s.likeCounter, 0)
	if err != nil {
		return nil, err
	}

	return &FeedPage{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// totalPosts reads the post count through a short-lived redis cache; the
// explore feed tolerates a count that lags by up to the TTL.
func (s *feedService) totalPosts(ctx context.Context) (int64, error) {
	if cached, err := s.redis.Get(ctx, postTotalKey).Result(); err == nil {
		if total, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return total, nil
		}
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	s.redis.Set(ctx, postTotalKey, strconv.FormatInt(total, 10), postTotalTTL)

	return total, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return page, limit
}
