package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// AccountUsecase implements the IAccountUseCase interface.
type AccountUsecase struct {
	directory contract.IIdentityDirectory
	resolver  *NicknameResolver
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

func NewAccountUsecase(
	directory contract.IIdentityDirectory,
	resolver *NicknameResolver,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AccountUsecase {
	return &AccountUsecase{
		directory: directory,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}

var _ usecasecontract.IAccountUseCase = (*AccountUsecase)(nil)

// GetProfile returns a fresh read of the caller's identity.
func (uc *AccountUsecase) GetProfile(ctx context.Context, callerID string) (*entity.Identity, error) {
	return uc.directory.GetIdentityByID(ctx, callerID)
}

// UpdateProfile applies the caller-editable fields. A nickname change goes
// through the same case-insensitive uniqueness check as registration, with
// the caller's own id excluded so renaming to the current nickname passes.
func (uc *AccountUsecase) UpdateProfile(ctx context.Context, caller *entity.Identity, update usecasecontract.ProfileUpdate) (*entity.Identity, error) {
	patch := contract.IdentityPatch{
		Phone:                update.Phone,
		Province:             update.Province,
		WalletAddress:        update.WalletAddress,
		NotificationsEnabled: update.NotificationsEnabled,
	}

	if update.Nickname != nil && *update.Nickname != caller.Nickname {
		if err := uc.validator.ValidateNickname(*update.Nickname); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
		}
		taken, err := uc.resolver.ExistsCaseInsensitive(ctx, *update.Nickname, caller.ID)
		if err != nil {
			uc.logger.Errorf("failed to check nickname availability: %v", err)
			return nil, err
		}
		if taken {
			return nil, entity.ErrNicknameTaken
		}
		patch.Nickname = update.Nickname
	}

	updated, err := uc.directory.UpdateIdentity(ctx, caller.ID, patch)
	if err != nil {
		uc.logger.Errorf("failed to update profile for %s: %v", caller.ID, err)
		return nil, err
	}
	return updated, nil
}

// GetBalance returns the caller's current balances.
func (uc *AccountUsecase) GetBalance(ctx context.Context, callerID string) (entity.Balance, error) {
	ident, err := uc.directory.GetIdentityByID(ctx, callerID)
	if err != nil {
		return entity.Balance{}, err
	}
	return ident.Balance, nil
}

// GetDashboard returns the caller's identity and summary block.
func (uc *AccountUsecase) GetDashboard(ctx context.Context, callerID string) (*entity.Identity, *usecasecontract.Dashboard, error) {
	ident, err := uc.directory.GetIdentityByID(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}
	txs := sampleTransactions(ident)
	return ident, &usecasecontract.Dashboard{
		Balance:          ident.Balance,
		MemberSince:      ident.CreatedAt,
		LastSignInAt:     ident.LastSignInAt,
		TransactionCount: len(txs),
	}, nil
}

// GetTransactions returns the sample history alongside current balances.
func (uc *AccountUsecase) GetTransactions(ctx context.Context, callerID string) ([]usecasecontract.Transaction, entity.Balance, error) {
	ident, err := uc.directory.GetIdentityByID(ctx, callerID)
	if err != nil {
		return nil, entity.Balance{}, err
	}
	return sampleTransactions(ident), ident.Balance, nil
}

// sampleTransactions builds the hard-coded history rows. There is no
// persisted ledger; the rows are anchored to the account's creation time so
// they stay stable per identity.
func sampleTransactions(ident *entity.Identity) []usecasecontract.Transaction {
	base := ident.CreatedAt
	return []usecasecontract.Transaction{
		{
			ID:          ident.ID + "-tx-001",
			Type:        "signup_bonus",
			AmountCWT:   0,
			AmountCWS:   0,
			Description: "Welcome to Cowry",
			Status:      "completed",
			CreatedAt:   base,
		},
		{
			ID:          ident.ID + "-tx-002",
			Type:        "adjustment",
			AmountCWT:   ident.Balance.CWT,
			AmountCWS:   ident.Balance.CWS,
			Description: "Balance adjustment",
			Status:      "completed",
			CreatedAt:   base.Add(24 * time.Hour),
		},
	}
}
