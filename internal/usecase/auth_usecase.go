package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// syntheticEmailDomain hosts the internal-only addresses the directory
// requires. These are never shown to the user as their identifier.
const syntheticEmailDomain = "users.cowry.internal"

// AuthUsecase implements the IAuthUseCase interface.
type AuthUsecase struct {
	directory contract.IIdentityDirectory
	resolver  *NicknameResolver
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

func NewAuthUsecase(
	directory contract.IIdentityDirectory,
	resolver *NicknameResolver,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		directory: directory,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Register creates a new identity and issues a session for it.
func (uc *AuthUsecase) Register(ctx context.Context, nickname, password string) (*entity.Identity, string, error) {
	if err := uc.validator.ValidateNickname(nickname); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	taken, err := uc.resolver.ExistsCaseInsensitive(ctx, nickname, "")
	if err != nil {
		uc.logger.Errorf("failed to check nickname availability: %v", err)
		return nil, "", err
	}
	if taken {
		return nil, "", entity.ErrNicknameTaken
	}

	// The directory requires an email; derive an internal-only one from
	// nickname plus a high-resolution timestamp to avoid collisions.
	email := fmt.Sprintf("%s-%d@%s", strings.ToLower(nickname), time.Now().UnixNano(), syntheticEmailDomain)

	ident, err := uc.directory.CreateIdentity(ctx, &entity.Identity{
		Email:                email,
		Nickname:             nickname,
		Role:                 entity.DefaultRole(),
		Balance:              entity.Balance{},
		NotificationsEnabled: true,
		CreatedAt:            time.Now().UTC(),
	}, password)
	if err != nil {
		if errors.Is(err, entity.ErrNicknameTaken) {
			return nil, "", err
		}
		uc.logger.Errorf("failed to create identity for nickname %s: %v", nickname, err)
		return nil, "", err
	}

	// Session issuance is best-effort: the identity is already created and
	// is not rolled back when the directory declines to mint a token.
	session, err := uc.directory.VerifyPassword(ctx, ident.Email, password)
	if err != nil {
		uc.logger.Warnf("identity %s created but session issuance failed: %v", ident.ID, err)
		return ident, "", nil
	}
	return session.Identity, session.Token, nil
}

// Login resolves the nickname and verifies the credential against the
// directory. Unknown nickname and wrong password are indistinguishable to
// the caller.
func (uc *AuthUsecase) Login(ctx context.Context, nickname, password string) (*entity.Identity, string, error) {
	ident, err := uc.resolver.Resolve(ctx, nickname)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to resolve nickname for login: %v", err)
		return nil, "", err
	}

	session, err := uc.directory.VerifyPassword(ctx, ident.Email, password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("credential verification failed upstream for %s: %v", ident.ID, err)
		return nil, "", err
	}
	return session.Identity, session.Token, nil
}

// Authenticate resolves a bearer token to its identity. An empty token
// fails immediately without a directory call.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, entity.ErrInvalidCredentials
	}
	ident, err := uc.directory.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) || errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("token verification failed upstream: %v", err)
		return nil, err
	}
	return ident, nil
}

// Logout revokes the session token at the directory.
func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	if err := uc.directory.RevokeSession(ctx, token); err != nil {
		uc.logger.Errorf("failed to revoke session: %v", err)
		return err
	}
	return nil
}

// ChangePassword verifies the caller's current credential before updating it.
func (uc *AuthUsecase) ChangePassword(ctx context.Context, caller *entity.Identity, currentPassword, newPassword string) error {
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	if _, err := uc.directory.VerifyPassword(ctx, caller.Email, currentPassword); err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			return fmt.Errorf("%w: current password incorrect", entity.ErrValidation)
		}
		uc.logger.Errorf("password verification failed upstream for %s: %v", caller.ID, err)
		return err
	}

	if err := uc.directory.UpdatePassword(ctx, caller.ID, newPassword); err != nil {
		uc.logger.Errorf("failed to update password for %s: %v", caller.ID, err)
		return err
	}
	return nil
}
