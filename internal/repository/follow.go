package repository

import (
	"context"
	"errors"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"gorm.io/gorm"
)

// FollowRepository manages the directed (follower, following) edge.
// Uniqueness is enforced by the composite primary key, same as likes.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	ListFollowers(ctx context.Context, userID int64) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID int64) ([]models.Follow, error)
	ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository instance.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID int64) error {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.KindConflict, "already following this user", err)
		}
		return apperrors.Wrap(apperrors.KindInternal, "failed to follow user", err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to unfollow user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "not following this user")
	}
	return nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list followers", err)
	}
	return follows, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list following", err)
	}
	return follows, nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list following ids", err)
	}
	return ids, nil
}
