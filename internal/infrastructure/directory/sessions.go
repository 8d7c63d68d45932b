package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// IRevocationStore remembers revoked session ids until they would have
// expired anyway.
type IRevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionManager issues and verifies the bearer tokens of the embedded
// directory. Tokens are stateless JWTs; logout works through the
// revocation store.
type SessionManager struct {
	secret      []byte
	ttl         time.Duration
	revocations IRevocationStore
}

func NewSessionManager(secret string, ttl time.Duration, revocations IRevocationStore) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, revocations: revocations}
}

// Issue mints a session token for the identity.
func (m *SessionManager) Issue(identityID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   identityID,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the identity id it belongs to.
func (m *SessionManager) Verify(ctx context.Context, token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", entity.ErrInvalidCredentials
	}
	revoked, err := m.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("%w: revocation check: %v", entity.ErrUpstream, err)
	}
	if revoked {
		return "", entity.ErrInvalidCredentials
	}
	return claims.Subject, nil
}

// Revoke invalidates a token for the remainder of its lifetime. Revoking
// an already-invalid token is a no-op.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	ttl := m.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := m.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%w: revoke session: %v", entity.ErrUpstream, err)
	}
	return nil
}

func (m *SessionManager) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, entity.ErrInvalidCredentials
	}
	return claims, nil
}

// RedisRevocations stores revoked session ids in Redis with a TTL matching
// the token's remaining lifetime, so revocations survive process restarts
// and are shared across replicas.
type RedisRevocations struct {
	client *redis.Client
}

var _ IRevocationStore = (*RedisRevocations)(nil)

func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client}
}

func (r *RedisRevocations) key(jti string) string {
	return "session:revoked:" + jti
}

func (r *RedisRevocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(jti), "1", ttl).Err()
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevocations is the in-process fallback used when Redis is not
// configured. Revocations are lost on restart, which only shortens the
// logout guarantee to the token TTL.
type MemoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

var _ IRevocationStore = (*MemoryRevocations)(nil)

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{revoked: make(map[string]time.Time)}
}

func (m *MemoryRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(m.revoked, jti)
		return false, nil
	}
	return true, nil
}
