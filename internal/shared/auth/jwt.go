package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"

	devSecret = "dev-secret-change-me-dev-secret-change-me"
)

// Claims represents the identity contained in a JWT.
type Claims struct {
	Email string    `json:"email,omitempty"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenMaker signs and verifies HS256 tokens.
type TokenMaker struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenMaker builds a TokenMaker. An empty secret is only tolerated
// outside production, where a fixed development secret is used.
func NewTokenMaker(secret string, production bool, accessTTL, refreshTTL time.Duration) (*TokenMaker, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		if production {
			return nil, fmt.Errorf("%w: JWT_SECRET required in production", ErrMissingSecret)
		}
		secret = devSecret
	}
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenMaker{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// WithClock returns a copy of the maker that reads time from now.
func (m *TokenMaker) WithClock(now func() time.Time) *TokenMaker {
	cp := *m
	cp.now = now
	return &cp
}

// RefreshTTL reports how long refresh tokens live.
func (m *TokenMaker) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// IssueAccess signs an access token for the user.
func (m *TokenMaker) IssueAccess(userID, email string) (string, time.Time, error) {
	return m.issue(userID, email, TokenAccess, m.accessTTL)
}

// IssueRefresh signs a refresh token for the user.
func (m *TokenMaker) IssueRefresh(userID, email string) (string, time.Time, error) {
	return m.issue(userID, email, TokenRefresh, m.refreshTTL)
}

func (m *TokenMaker) issue(userID, email string, typ TokenType, ttl time.Duration) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("sub is required")
	}
	now := m.now().UTC()
	exp := now.Add(ttl)
	claims := &Claims{
		Email: email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify parses a token and checks its signature, expiry and type.
func (m *TokenMaker) Verify(token string, want TokenType) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.Type != want {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
