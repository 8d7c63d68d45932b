package contract

import (
	"context"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// Session is what the directory hands back after verifying a credential.
type Session struct {
	Token    string
	Identity *entity.Identity
}

// IdentityPatch is a partial metadata update; nil fields are left untouched.
type IdentityPatch struct {
	Nickname             *string
	Role                 *entity.Role
	CWT                  *float64
	CWS                  *int64
	Phone                *string
	Province             *string
	WalletAddress        *string
	NotificationsEnabled *bool
	LastSignInAt         *time.Time
}

// IIdentityDirectory is the adapter over the external system of record for
// accounts, credentials, and session tokens. All durable state lives behind
// this interface; the process keeps nothing across requests.
type IIdentityDirectory interface {
	// ListIdentities returns every identity in the directory. The nickname
	// resolver scans this list, so cost is O(n) per register/login unless
	// the implementation also provides INicknameIndex.
	ListIdentities(ctx context.Context) ([]*entity.Identity, error)
	GetIdentityByID(ctx context.Context, id string) (*entity.Identity, error)
	// CreateIdentity stores a new identity with the given password
	// credential and returns the stored record with its assigned ID.
	CreateIdentity(ctx context.Context, ident *entity.Identity, password string) (*entity.Identity, error)
	// VerifyPassword checks a credential and returns a fresh session.
	// A wrong password or unknown email fails with ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (*Session, error)
	// VerifyToken resolves a bearer token to its identity.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
	UpdateIdentity(ctx context.Context, id string, patch IdentityPatch) (*entity.Identity, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	RevokeSession(ctx context.Context, token string) error
}

// INicknameIndex is an optional fast path for directories that index
// nicknames natively. When present, the resolver uses it instead of the
// full-list scan. Lookup is case-insensitive.
type INicknameIndex interface {
	FindByNickname(ctx context.Context, nickname string) (*entity.Identity, error)
}

// IMailSender delivers transactional email.
type IMailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// IUUIDGenerator mints opaque identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
