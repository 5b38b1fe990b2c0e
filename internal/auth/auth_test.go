package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", "test", time.Minute, time.Hour)
}

func TestGeneratePairRoundTrip(t *testing.T) {
	tm := newTestManager()

	pair, err := tm.GeneratePair("user-1", "pastor", "church-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), pair.ExpiresAt, 5*time.Second)

	claims, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "pastor", claims.Role)
	assert.Equal(t, "church-1", claims.ChurchID)

	claims, err = tm.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	tm := newTestManager()
	pair, err := tm.GeneratePair("user-1", "membro", "church-1")
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredAccessToken(t *testing.T) {
	tm := newTestManager()
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	pair, err := tm.GeneratePair("user-1", "membro", "church-1")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForeignIssuerRejected(t *testing.T) {
	other := NewTokenManager("access-secret", "refresh-secret", "someone-else", time.Minute, time.Hour)
	pair, err := other.GeneratePair("user-1", "membro", "church-1")
	require.NoError(t, err)

	_, err = newTestManager().ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswords(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NoError(t, VerifyPassword("correct horse", hash))
	assert.Error(t, VerifyPassword("wrong horse", hash))
}
