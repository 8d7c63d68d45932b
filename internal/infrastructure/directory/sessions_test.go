package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

func newTestSessionManager(ttl time.Duration) *SessionManager {
	return NewSessionManager("test-secret", ttl, NewMemoryRevocations())
}

func TestSessionManager_IssueAndVerify(t *testing.T) {
	m := newTestSessionManager(time.Hour)

	token, err := m.Issue("identity-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "identity-1", id)
}

func TestSessionManager_RejectsGarbageAndForeignTokens(t *testing.T) {
	m := newTestSessionManager(time.Hour)

	_, err := m.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	other := NewSessionManager("other-secret", time.Hour, NewMemoryRevocations())
	foreign, err := other.Issue("identity-1")
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), foreign)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSessionManager_RejectsExpiredToken(t *testing.T) {
	m := newTestSessionManager(-time.Minute)

	token, err := m.Issue("identity-1")
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSessionManager_RevokeInvalidatesToken(t *testing.T) {
	m := newTestSessionManager(time.Hour)

	token, err := m.Issue("identity-1")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), token))

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSessionManager_RevokeIsPerToken(t *testing.T) {
	m := newTestSessionManager(time.Hour)

	first, err := m.Issue("identity-1")
	require.NoError(t, err)
	second, err := m.Issue("identity-1")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), first))

	_, err = m.Verify(context.Background(), first)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	id, err := m.Verify(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, "identity-1", id)
}

func TestSessionManager_RevokeGarbageIsNoop(t *testing.T) {
	m := newTestSessionManager(time.Hour)
	assert.NoError(t, m.Revoke(context.Background(), "not-a-jwt"))
}

func TestMemoryRevocations_Expiry(t *testing.T) {
	r := NewMemoryRevocations()

	require.NoError(t, r.Revoke(context.Background(), "jti-1", time.Hour))
	revoked, err := r.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// An entry whose TTL has elapsed is pruned on check.
	require.NoError(t, r.Revoke(context.Background(), "jti-2", -time.Second))
	revoked, err = r.IsRevoked(context.Background(), "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
