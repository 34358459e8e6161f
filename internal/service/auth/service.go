package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookstore/internal/domain"
	userrepo "bookstore/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// bcryptCost matches the work factor the original accounts were hashed
// with; changing it would not invalidate existing hashes but keeps new
// ones comparable.
const bcryptCost = 10

// Service handles registration, login, and password changes.
type Service struct {
	repo   userrepo.Repository
	tokens *tokenManager
}

// New creates a Service issuing tokens signed with secret, valid for ttl.
func New(repo userrepo.Repository, secret string, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		tokens: newTokenManager([]byte(secret), ttl),
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register stores a new user with a hashed password and returns it.
// A taken email yields domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	password := in.Password
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
}

// Login validates credentials and returns the user plus a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ChangePassword replaces the stored hash after re-verifying the
// current password.
func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password required")
	}
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}

// Profile returns the user bound to an authenticated session.
func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// VerifyToken checks signature and expiry and returns the caller's
// identity. Authentication reads no state beyond the token itself.
func (s *Service) VerifyToken(token string) (Identity, error) {
	return s.tokens.Verify(token)
}
