package usecasecontract

import (
	"context"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// BalanceAdjustment is the input for an admin balance mutation. Nil deltas
// are treated as zero, never as errors.
type BalanceAdjustment struct {
	CWT       *float64
	CWS       *int64
	Operation entity.BalanceOp
	Reason    string
}

// IAdminUseCase defines the interface for admin-only operations on other
// identities. Authorization (the admin role check) happens before any of
// these run; the usecase itself only guards role validity.
type IAdminUseCase interface {
	ListUsers(ctx context.Context) ([]*entity.Identity, error)
	// AdjustBalance applies the pure balance mutator to the target and
	// persists the result. Returns the pre-mutation balance alongside the
	// updated identity.
	AdjustBalance(ctx context.Context, targetID string, adj BalanceAdjustment) (entity.Balance, *entity.Identity, error)
	// SetRole assigns a new role to the target. An out-of-set role fails
	// with ErrInvalidRole before any directory access.
	SetRole(ctx context.Context, targetID, role string) (entity.Role, *entity.Identity, error)
}
