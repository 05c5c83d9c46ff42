package repository

import (
	"context"
	"errors"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"gorm.io/gorm"
)

// LikeRepository manages the (user, post) like edge. The composite primary
// key is the sole correctness authority under concurrent creates: the
// loser of a race gets KindConflict from the store, not from any
// application-level check.
type LikeRepository interface {
	Create(ctx context.Context, userID, postID int64) error
	Delete(ctx context.Context, userID, postID int64) error
	ListByPost(ctx context.Context, postID int64) ([]models.Like, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository instance.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, postID int64) error {
	like := models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.KindConflict, "post already liked", err)
		}
		return apperrors.Wrap(apperrors.KindInternal, "failed to like post", err)
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to unlike post", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "like not found")
	}
	return nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID int64) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list likes", err)
	}
	return likes, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInternal, "failed to count likes", err)
	}
	return count, nil
}
