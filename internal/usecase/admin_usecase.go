package usecase

import (
	"context"
	"math"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// AdminUsecase implements the IAdminUseCase interface.
//
// Balance mutation here is a read-modify-write against the directory with
// no conflict detection: two concurrent adjustments to the same identity
// are last-writer-wins. That limitation comes from the directory API shape
// and is accepted, not worked around with locking.
type AdminUsecase struct {
	directory contract.IIdentityDirectory
	logger    usecasecontract.IAppLogger
}

func NewAdminUsecase(directory contract.IIdentityDirectory, logger usecasecontract.IAppLogger) *AdminUsecase {
	return &AdminUsecase{directory: directory, logger: logger}
}

var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

// ListUsers returns every identity in the directory.
func (uc *AdminUsecase) ListUsers(ctx context.Context) ([]*entity.Identity, error) {
	return uc.directory.ListIdentities(ctx)
}

// AdjustBalance loads the target, applies the pure mutator, and persists
// the clamped result. Nil or non-finite deltas count as zero.
func (uc *AdminUsecase) AdjustBalance(ctx context.Context, targetID string, adj usecasecontract.BalanceAdjustment) (entity.Balance, *entity.Identity, error) {
	target, err := uc.directory.GetIdentityByID(ctx, targetID)
	if err != nil {
		return entity.Balance{}, nil, err
	}

	var deltaCWT float64
	if adj.CWT != nil && !math.IsNaN(*adj.CWT) {
		deltaCWT = *adj.CWT
	}
	var deltaCWS int64
	if adj.CWS != nil {
		deltaCWS = *adj.CWS
	}

	previous := target.Balance
	next := entity.ApplyBalanceOperation(previous, deltaCWT, deltaCWS, adj.Operation)

	updated, err := uc.directory.UpdateIdentity(ctx, targetID, contract.IdentityPatch{
		CWT: &next.CWT,
		CWS: &next.CWS,
	})
	if err != nil {
		uc.logger.Errorf("failed to persist balance for %s: %v", targetID, err)
		return entity.Balance{}, nil, err
	}

	uc.logger.Infof("balance adjusted for %s: op=%s cwt %.4f -> %.4f, cws %d -> %d, reason=%q",
		targetID, adj.Operation, previous.CWT, next.CWT, previous.CWS, next.CWS, adj.Reason)
	return previous, updated, nil
}

// SetRole assigns a new role. The role string is validated before any
// directory access so an invalid role never reaches the store.
func (uc *AdminUsecase) SetRole(ctx context.Context, targetID, role string) (entity.Role, *entity.Identity, error) {
	parsed, err := entity.ParseRole(role)
	if err != nil {
		return "", nil, err
	}

	target, err := uc.directory.GetIdentityByID(ctx, targetID)
	if err != nil {
		return "", nil, err
	}

	previous := target.Role
	updated, err := uc.directory.UpdateIdentity(ctx, targetID, contract.IdentityPatch{Role: &parsed})
	if err != nil {
		uc.logger.Errorf("failed to persist role for %s: %v", targetID, err)
		return "", nil, err
	}

	uc.logger.Infof("role changed for %s: %s -> %s", targetID, previous, parsed)
	return previous, updated, nil
}
