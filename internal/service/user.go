package service

import (
	"context"
	"strings"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate carries the mutable profile fields. FullName is required;
// bio and website are cleared when empty.
type ProfileUpdate struct {
	FullName string
	Bio      string
	Website  string
}

// UserService implements profile reads and owner-only profile mutation.
// Mutations operate on the authenticated principal's own record, so the
// sole-owner rule holds by construction.
type UserService interface {
	GetProfile(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, subjectID int64, update ProfileUpdate) (*models.User, error)
	UpdateProfilePicture(ctx context.Context, subjectID int64, pictureURL string) (*models.User, error)
	ChangePassword(ctx context.Context, subjectID int64, currentPassword, newPassword string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, subjectID int64, update ProfileUpdate) (*models.User, error) {
	fullName := strings.TrimSpace(update.FullName)
	if fullName == "" {
		return nil, apperrors.New(apperrors.KindInvalidInput, "full name is required")
	}

	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Bio = strings.TrimSpace(update.Bio)
	user.Website = strings.TrimSpace(update.Website)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfilePicture(ctx context.Context, subjectID int64, pictureURL string) (*models.User, error) {
	if strings.TrimSpace(pictureURL) == "" {
		return nil, apperrors.New(apperrors.KindInvalidInput, "profile picture URL is required")
	}

	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = pictureURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, subjectID int64, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperrors.New(apperrors.KindInvalidInput, "password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.New(apperrors.KindInvalidInput, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	return s.userRepo.Update(ctx, user)
}
