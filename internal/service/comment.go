package service

import (
	"context"
	"strings"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
)

// CommentService implements commenting with dual-owner deletion: the
// comment author or the parent post's author may delete.
type CommentService interface {
	Create(ctx context.Context, subjectID, postID int64, content string) (*CommentResponse, error)
	ListByPost(ctx context.Context, postID int64) ([]CommentResponse, error)
	Delete(ctx context.Context, principal *Principal, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) Create(ctx context.Context, subjectID, postID int64, content string) (*CommentResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.New(apperrors.KindInvalidInput, "comment content is required")
	}

	// Unknown post is 404 before anything is written.
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  subjectID,
		PostID:  postID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		User:      author.Summary(),
	}, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]CommentResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return commentResponses(comments), nil
}

// Delete loads the comment with its parent post and applies the
// owner-or-parent-owner rule before removing it.
func (s *commentService) Delete(ctx context.Context, principal *Principal, commentID int64) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := Authorize(principal, comment.UserID, comment.Post.UserID, OwnerOrParentOwner); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}
