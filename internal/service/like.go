package service

import (
	"context"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
)

// LikeListing is the wire shape of a post's likes.
type LikeListing struct {
	Count int64                `json:"count"`
	Users []models.UserSummary `json:"users"`
}

// LikeService implements the idempotent like edge. A duplicate like is a
// conflict, an unlike of an absent edge is not found; the unique key in
// the store decides races.
type LikeService interface {
	Like(ctx context.Context, subjectID, postID int64) error
	Unlike(ctx context.Context, subjectID, postID int64) error
	ListByPost(ctx context.Context, postID int64) (*LikeListing, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	likeCounter *LikeCounter
}

// NewLikeService creates a new LikeService instance.
func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, likeCounter *LikeCounter) LikeService {
	return &likeService{likeRepo: likeRepo, postRepo: postRepo, likeCounter: likeCounter}
}

func (s *likeService) Like(ctx context.Context, subjectID, postID int64) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return err
	}

	if err := s.likeRepo.Create(ctx, subjectID, postID); err != nil {
		return err
	}

	s.likeCounter.Invalidate(ctx, postID)
	return nil
}

func (s *likeService) Unlike(ctx context.Context, subjectID, postID int64) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return err
	}

	if err := s.likeRepo.Delete(ctx, subjectID, postID); err != nil {
		return err
	}

	s.likeCounter.Invalidate(ctx, postID)
	return nil
}

func (s *likeService) ListByPost(ctx context.Context, postID int64) (*LikeListing, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeCounter.Count(ctx, postID)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserSummary, 0, len(likes))
	for i := range likes {
		users = append(users, likes[i].User.Summary())
	}

	return &LikeListing{Count: count, Users: users}, nil
}
