package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMakerRoundTrip(t *testing.T) {
	maker, err := NewTokenMaker("unit-test-secret", false, time.Hour, 7*24*time.Hour)
	require.NoError(t, err)

	access, exp, err := maker.IssueAccess("user-1", "a@b.io")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := maker.Verify(access, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "a@b.io", claims.Email)

	_, err = maker.Verify(access, TokenRefresh)
	assert.True(t, errors.Is(err, ErrInvalidToken), "access token must not pass as refresh")

	refresh, _, err := maker.IssueRefresh("user-1", "a@b.io")
	require.NoError(t, err)
	_, err = maker.Verify(refresh, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMakerRejectsExpiredAndForeign(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	maker, err := NewTokenMaker("unit-test-secret", false, time.Minute, time.Hour)
	require.NoError(t, err)
	maker = maker.WithClock(func() time.Time { return start })

	token, _, err := maker.IssueAccess("user-1", "")
	require.NoError(t, err)

	later := maker.WithClock(func() time.Time { return start.Add(2 * time.Minute) })
	_, err = later.Verify(token, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokenMaker("another-secret", false, time.Minute, time.Hour)
	require.NoError(t, err)
	other = other.WithClock(func() time.Time { return start })
	_, err = other.Verify(token, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = maker.Verify("", TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenMakerRequiresSecretInProduction(t *testing.T) {
	_, err := NewTokenMaker("", true, 0, 0)
	assert.ErrorIs(t, err, ErrMissingSecret)

	m, err := NewTokenMaker("", false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, m.RefreshTTL())
}

func TestCheckPasswordStrength(t *testing.T) {
	tests := map[string]bool{
		"Short1":       false,
		"alllower123":  false,
		"ALLUPPER123":  false,
		"NoDigitsHere": false,
		"Str0ngPass":   true,
	}
	for pw, ok := range tests {
		reason := CheckPasswordStrength(pw)
		assert.Equalf(t, ok, reason == "", "password %q: %q", pw, reason)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ngPass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass", hash)
	assert.NoError(t, CheckPassword("Str0ngPass", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

func TestMemoryAttemptsWindow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryAttempts(5, 5*time.Minute, func() time.Time { return now })

	for i := 0; i < 5; i++ {
		require.True(t, store.Allowed("A@B.io"))
		store.Fail("a@b.io ")
	}
	assert.False(t, store.Allowed("a@b.io"))
	assert.True(t, store.Allowed("other@b.io"))

	now = now.Add(5*time.Minute + time.Second)
	assert.True(t, store.Allowed("a@b.io"), "failures expire after the window")

	store.Fail("a@b.io")
	store.Reset("a@b.io")
	assert.True(t, store.Allowed("a@b.io"))
}
