package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// RegisterInput carries the fields accepted at registration. The birthday
// triple is optional but all-or-none.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	BirthMonth *int
	BirthDay   *int
	BirthYear  *int
}

// AuthService implements registration and credential verification. Token
// lifecycle beyond issuance is client-side: logout clears the cookie and
// performs no server-side revocation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, subjectID int64) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	if err := validateBirthday(input.BirthMonth, input.BirthDay, input.BirthYear); err != nil {
		return nil, "", err
	}

	// Pre-check both unique fields so the conflict can name the field. The
	// database constraint remains the authority under races; Create maps a
	// lost race to the same conflict kind.
	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, "", apperrors.New(apperrors.KindConflict, "username already in use")
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, "", err
	}
	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", apperrors.New(apperrors.KindConflict, "email already in use")
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		BirthMonth:   input.BirthMonth,
		BirthDay:     input.BirthDay,
		BirthYear:    input.BirthYear,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to issue token", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	// Unknown email and wrong password produce the same answer.
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, "", apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindInternal, "failed to issue token", err)
	}

	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, subjectID int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, subjectID)
}

func validateBirthday(month, day, year *int) error {
	set := 0
	for _, v := range []*int{month, day, year} {
		if v != nil {
			set++
		}
	}
	if set == 0 {
		return nil
	}
	if set != 3 {
		return apperrors.New(apperrors.KindInvalidInput, "all birthday fields (month, day, year) must be provided together")
	}
	if *month < 1 || *month > 12 {
		return apperrors.New(apperrors.KindInvalidInput, "month must be between 1 and 12")
	}
	if *day < 1 || *day > 31 {
		return apperrors.New(apperrors.KindInvalidInput, "day must be between 1 and 31")
	}
	currentYear := time.Now().Year()
	if *year < 1900 || *year > currentYear {
		return apperrors.New(apperrors.KindInvalidInput, fmt.Sprintf("year must be between 1900 and %d", currentYear))
	}
	return nil
}
