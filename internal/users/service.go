package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analytics/internal/shared/auth"
	"resume-analytics/internal/shared/metrics"
	"resume-analytics/internal/shared/telemetry"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrInvalidToken       = errors.New("invalid refresh token")
)

type Service struct {
	Repo     Repo
	Tokens   *auth.TokenMaker
	Attempts auth.AttemptStore
	Now      func() time.Time
}

func NewService(repo Repo, tokens *auth.TokenMaker, attempts auth.AttemptStore) *Service {
	return &Service{Repo: repo, Tokens: tokens, Attempts: attempts, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *Service) configured() error {
	if s == nil || s.Repo == nil || s.Tokens == nil {
		return errors.New("users service not configured")
	}
	return nil
}

// Register creates an account for email with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password string) (User, error) {
	if err := s.configured(); err != nil {
		return User{}, err
	}
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return User{}, fmt.Errorf("%w: Invalid email format", ErrInvalidInput)
	}
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	if reason := auth.CheckPasswordStrength(password); reason != "" {
		return User{}, fmt.Errorf("%w: %s", ErrInvalidInput, reason)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	telemetry.Info("user.registered", map[string]any{"user_id": user.ID})
	return user, nil
}

// Login checks credentials and issues an access and a persisted refresh token.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if err := s.configured(); err != nil {
		return Session{}, err
	}
	email = strings.TrimSpace(email)
	if s.Attempts != nil && !s.Attempts.Allowed(email) {
		return Session{}, ErrTooManyAttempts
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.failLogin(email)
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		s.failLogin(email)
		return Session{}, ErrInvalidCredentials
	}
	if s.Attempts != nil {
		s.Attempts.Reset(email)
	}

	access, accessExp, err := s.Tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		return Session{}, err
	}
	refresh, refreshExp, err := s.Tokens.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return Session{}, err
	}
	if err := s.Repo.SaveRefreshToken(ctx, RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: refreshExp,
	}); err != nil {
		return Session{}, fmt.Errorf("persist refresh token: %w", err)
	}
	return Session{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        "bearer",
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *Service) failLogin(email string) {
	metrics.IncLoginFailed()
	if s.Attempts != nil {
		s.Attempts.Fail(email)
	}
}

// Refresh exchanges a valid, persisted refresh token for a new access token.
// The refresh token itself is returned unchanged.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if err := s.configured(); err != nil {
		return Session{}, err
	}
	claims, err := s.Tokens.Verify(refreshToken, auth.TokenRefresh)
	if err != nil {
		return Session{}, ErrInvalidToken
	}
	rec, err := s.Repo.GetRefreshToken(ctx, claims.UserID(), refreshToken)
	if err != nil {
		if errors.Is(err, ErrTokenMissing) {
			return Session{}, ErrInvalidToken
		}
		return Session{}, err
	}
	if !rec.ExpiresAt.After(s.now()) {
		return Session{}, ErrInvalidToken
	}
	access, accessExp, err := s.Tokens.IssueAccess(claims.UserID(), claims.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{
		AccessToken:      access,
		RefreshToken:     refreshToken,
		TokenType:        "bearer",
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: rec.ExpiresAt,
	}, nil
}

// Logout revokes refreshToken, or all of the user's refresh tokens when it
// is empty.
func (s *Service) Logout(ctx context.Context, userID, refreshToken string) error {
	if err := s.configured(); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.DeleteRefreshTokens(ctx, userID, strings.TrimSpace(refreshToken))
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}
