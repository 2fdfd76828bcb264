package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-analytics/internal/shared/auth"
)

func newTestService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	tokens, err := auth.NewTokenMaker("users-test-secret", false, time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("token maker: %v", err)
	}
	repo := NewMemoryRepo()
	return NewService(repo, tokens, auth.NewMemoryAttempts(3, time.Minute, nil)), repo
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "Str0ngPass"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid email, got %v", err)
	}
	if _, err := svc.Register(ctx, "dev@example.com", "weak"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected weak password, got %v", err)
	}
	user, err := svc.Register(ctx, "dev@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "Str0ngPass" {
		t.Fatalf("password should be hashed")
	}
	if _, err := svc.Register(ctx, "DEV@example.com", "Str0ngPass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRefreshLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, err := svc.Register(ctx, "dev@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	session, err := svc.Login(ctx, "dev@example.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := svc.Tokens.Verify(session.AccessToken, auth.TokenAccess)
	if err != nil || claims.UserID() != user.ID {
		t.Fatalf("access token invalid: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, session.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken != session.RefreshToken {
		t.Fatalf("refresh token should be returned unchanged")
	}
	if _, err := svc.Refresh(ctx, session.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}

	if err := svc.Logout(ctx, user.ID, session.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, session.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("revoked token must not refresh, got %v", err)
	}
}

func TestLoginLockoutAfterFailures(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "dev@example.com", "Str0ngPass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(ctx, "dev@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected invalid credentials, got %v", i, err)
		}
	}
	if _, err := svc.Login(ctx, "dev@example.com", "Str0ngPass"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected lockout, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Login(context.Background(), "ghost@example.com", "Str0ngPass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestRefreshRejectsExpiredRecord(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	user, _ := svc.Register(ctx, "dev@example.com", "Str0ngPass")
	token, _, err := svc.Tokens.IssueRefresh(user.ID, user.Email)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_ = repo.SaveRefreshToken(ctx, RefreshToken{
		ID:        "rt-1",
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if _, err := svc.Refresh(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired record to be rejected, got %v", err)
	}
}
