package repository

import (
	"context"
	"errors"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// FindByID preloads the parent post so the dual-owner deletion rule can
	// run without a second fetch.
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	ListRecentByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to create comment", err)
	}
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.KindNotFound, "comment not found", err)
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to find comment", err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list comments", err)
	}
	return comments, nil
}

func (r *commentRepository) ListRecentByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list comments", err)
	}
	return comments, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInternal, "failed to count comments", err)
	}
	return count, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to delete comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "comment not found")
	}
	return nil
}
