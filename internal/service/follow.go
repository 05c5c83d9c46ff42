package service

import (
	"context"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
)

// FollowService implements the directed follow edge between users.
// Self-follows are invalid input; duplicates are conflicts decided by the
// store's unique key.
type FollowService interface {
	Follow(ctx context.Context, subjectID, targetID int64) error
	Unfollow(ctx context.Context, subjectID, targetID int64) error
	Followers(ctx context.Context, userID int64) ([]models.UserSummary, error)
	Following(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService instance.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{followRepo: followRepo, userRepo: userRepo}
}

func (s *followService) Follow(ctx context.Context, subjectID, targetID int64) error {
	if subjectID == targetID {
		return apperrors.New(apperrors.KindInvalidInput, "you cannot follow yourself")
	}

	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		return err
	}

	return s.followRepo.Create(ctx, subjectID, targetID)
}

func (s *followService) Unfollow(ctx context.Context, subjectID, targetID int64) error {
	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, subjectID, targetID)
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	follows, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserSummary, 0, len(follows))
	for i := range follows {
		users = append(users, follows[i].Follower.Summary())
	}
	return users, nil
}

func (s *followService) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	follows, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserSummary, 0, len(follows))
	for i := range follows {
		users = append(users, follows[i].Following.Summary())
	}
	return users, nil
}
