package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/cryptox"
	"github.com/ultracoach/ultracoach/pkg/idx"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

var (
	ErrInvalidUserRequest = errors.New("invalid registration request")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 8

// UserService handles account registration and credential checks.
type UserService struct {
	Store store.Store
}

// Register creates an account with an Argon2id password hash.
func (s *UserService) Register(ctx context.Context, email, fullName, password, role string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))
	fullName = strings.TrimSpace(fullName)

	if email == "" || !strings.Contains(email, "@") || fullName == "" {
		return domain.User{}, ErrInvalidUserRequest
	}
	if !domain.ValidRole(role) {
		return domain.User{}, ErrInvalidUserRequest
	}
	if len(password) < minPasswordLength {
		return domain.User{}, ErrInvalidUserRequest
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         domain.Role(role),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", u.ID),
		slog.String("role", role),
	)

	return u, nil
}

// Authenticate verifies an email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	return u, nil
}
