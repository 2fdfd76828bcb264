package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrDuplicate    = errors.New("email already registered")
	ErrTokenMissing = errors.New("refresh token not found")
)

type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	SaveRefreshToken(ctx context.Context, token RefreshToken) error
	GetRefreshToken(ctx context.Context, userID, token string) (RefreshToken, error)
	// DeleteRefreshTokens removes token for userID, or every token of the
	// user when token is empty.
	DeleteRefreshTokens(ctx context.Context, userID, token string) error
}
