package service

import (
	"context"
	"testing"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
)

func existingPost(id int64) func(ctx context.Context, postID int64) (*models.Post, error) {
	return func(ctx context.Context, postID int64) (*models.Post, error) {
		if postID == id {
			return &models.Post{ID: id, UserID: 99}, nil
		}
		return nil, apperrors.New(apperrors.KindNotFound, "post not found")
	}
}

func TestLike_UnknownPost(t *testing.T) {
	svc := NewLikeService(
		&mockLikeRepository{},
		&mockPostRepository{findByIDFunc: existingPost(1)},
		NewLikeCounter(&mockLikeRepository{}, newTestRedis(t)),
	)

	err := svc.Like(context.Background(), 5, 404)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Like() kind = %v, want KindNotFound", apperrors.KindOf(err))
	}
}

func TestLike_DuplicateIsConflict(t *testing.T) {
	likeRepo := &mockLikeRepository{
		createFunc: func(ctx context.Context, userID, postID int64) error {
			return apperrors.New(apperrors.KindConflict, "post already liked")
		},
	}
	svc := NewLikeService(
		likeRepo,
		&mockPostRepository{findByIDFunc: existingPost(1)},
		NewLikeCounter(likeRepo, newTestRedis(t)),
	)

	err := svc.Like(context.Background(), 5, 1)
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("Like() kind = %v, want KindConflict", apperrors.KindOf(err))
	}
}

func TestLike_InvalidatesCounter(t *testing.T) {
	count := int64(0)
	likeRepo := &mockLikeRepository{
		createFunc: func(ctx context.Context, userID, postID int64) error {
			count++
			return nil
		},
		countByPostFunc: func(ctx context.Context, postID int64) (int64, error) {
			return count, nil
		},
	}
	counter := NewLikeCounter(likeRepo, newTestRedis(t))
	svc := NewLikeService(likeRepo, &mockPostRepository{findByIDFunc: existingPost(1)}, counter)
	ctx := context.Background()

	// Warm the cache at zero, then like: the stale zero must not survive.
	if c, _ := counter.Count(ctx, 1); c != 0 {
		t.Fatalf("Count() = %d, want 0", c)
	}
	if err := svc.Like(ctx, 5, 1); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if c, _ := counter.Count(ctx, 1); c != 1 {
		t.Errorf("Count() after like = %d, want 1", c)
	}
}

func TestUnlike_AbsentIsNotFound(t *testing.T) {
	likeRepo := &mockLikeRepository{
		deleteFunc: func(ctx context.Context, userID, postID int64) error {
			return apperrors.New(apperrors.KindNotFound, "like not found")
		},
	}
	svc := NewLikeService(
		likeRepo,
		&mockPostRepository{findByIDFunc: existingPost(1)},
		NewLikeCounter(likeRepo, newTestRedis(t)),
	)

	err := svc.Unlike(context.Background(), 5, 1)
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Unlike() kind = %v, want KindNotFound", apperrors.KindOf(err))
	}
}

func TestListByPost(t *testing.T) {
	likeRepo := &mockLikeRepository{
		listByPostFunc: func(ctx context.Context, postID int64) ([]models.Like, error) {
			return []models.Like{
				{UserID: 2, PostID: 1, User: models.User{ID: 2, Username: "bob"}},
				{UserID: 3, PostID: 1, User: models.User{ID: 3, Username: "carol"}},
			}, nil
		},
		countByPostFunc: func(ctx context.Context, postID int64) (int64, error) {
			return 2, nil
		},
	}
	svc := NewLikeService(
		likeRepo,
		&mockPostRepository{findByIDFunc: existingPost(1)},
		NewLikeCounter(likeRepo, newTestRedis(t)),
	)

	listing, err := svc.ListByPost(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if listing.Count != 2 || len(listing.Users) != 2 {
		t.Errorf("ListByPost() count = %d, users = %d, want 2/2", listing.Count, len(listing.Users))
	}
	if listing.Users[0].Username != "bob" {
		t.Errorf("first liker = %q, want bob", listing.Users[0].Username)
	}
}
