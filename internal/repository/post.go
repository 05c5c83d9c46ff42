package repository

import (
	"context"
	"errors"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	ListRecent(ctx context.Context, limit int) ([]models.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Post, error)
	// ListFeed returns posts authored by any of the given users, newest
	// first, with standard limit/offset pagination.
	ListFeed(ctx context.Context, authorIDs []int64, limit, offset int) ([]models.Post, error)
	// ListRange returns posts newest first starting at offset. Used by the
	// explore feed, which wraps around the end of the set.
	ListRange(ctx context.Context, offset, limit int) ([]models.Post, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to create post", err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.KindNotFound, "post not found", err)
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to find post", err)
	}
	return &post, nil
}

func (r *postRepository) ListRecent(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list posts", err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list user posts", err)
	}
	return posts, nil
}

func (r *postRepository) ListFeed(ctx context.Context, authorIDs []int64, limit, offset int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list feed", err)
	}
	return posts, nil
}

func (r *postRepository) ListRange(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list posts", err)
	}
	return posts, nil
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.KindInternal, "failed to count posts", err)
	}
	return count, nil
}

// Delete removes the post and its dependent likes and comments in one
// transaction. Ownership is checked by the service before this runs.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Wrap(apperrors.KindNotFound, "post not found", err)
		}
		return apperrors.Wrap(apperrors.KindInternal, "failed to delete post", err)
	}
	return nil
}
