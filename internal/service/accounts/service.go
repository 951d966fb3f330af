// Package accounts handles user registration and login.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

const minPasswordLen = 8

type Service struct {
	store  repository.UserStore
	tokens *auth.TokenManager
}

func New(store repository.UserStore, tokens *auth.TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Session is a logged-in identity with its access token.
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	const op = "service.accounts.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%s: email: %w", op, ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%s: password: %w", op, ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.store.CreateUser(ctx, email, hash, false)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Login verifies the credentials and issues an access token. A wrong email
// and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	const op = "service.accounts.Login"

	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, exp, err := s.tokens.Issue(u.ID, u.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{User: *u, Token: token, ExpiresAt: exp}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	const op = "service.accounts.Me"

	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
