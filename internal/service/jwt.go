package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid covers bad signatures, unexpected signing algorithms
	// and malformed or misshapen claims.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired covers structurally valid tokens past their expiry.
	// Both map to 401 at the boundary; the split exists for logging and
	// tests, never for the response status.
	ErrTokenExpired = errors.New("token expired")
)

// Principal is the authenticated identity reconstructed from a verified
// token. It is never persisted server-side.
type Principal struct {
	SubjectID int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Claims is the one canonical token payload. subject_id is the only claim
// that identifies the user; tokens carrying any other shape are rejected.
type Claims struct {
	SubjectID int64 `json:"subject_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(subjectID int64) (string, error)
	Verify(token string) (*Principal, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService. Returns nil if the secret is
// shorter than 32 bytes.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	if len(secret) < 32 {
		return nil
	}
	return &tokenService{secret: []byte(secret), expiry: expiry}
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}

func (s *tokenService) Issue(subjectID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		// Pin the algorithm: tokens signed with anything but HS256 are
		// rejected before signature verification.
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.SubjectID == 0 || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, ErrTokenInvalid
	}

	return &Principal{
		SubjectID: claims.SubjectID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
