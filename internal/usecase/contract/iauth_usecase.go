package usecasecontract

import (
	"context"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// IAuthUseCase defines the interface for registration, login, and session
// handling against the identity directory.
type IAuthUseCase interface {
	// Register creates a new identity from nickname and password and
	// issues a session best-effort: a nil error with an empty token means
	// the identity exists but session issuance failed.
	Register(ctx context.Context, nickname, password string) (*entity.Identity, string, error)
	Login(ctx context.Context, nickname, password string) (*entity.Identity, string, error)
	// Authenticate resolves a bearer token to its identity.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, caller *entity.Identity, currentPassword, newPassword string) error
}
