package mocks

import (
	"context"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// MockAdminUsecase is a mock implementation of the IAdminUseCase interface.
type MockAdminUsecase struct {
	// Control mock behavior
	ShouldFailListUsers     bool
	ShouldFailAdjustBalance bool
	ShouldFailSetRole       bool

	// InvalidRole makes SetRole reject the role before touching the target.
	InvalidRole bool

	// Return values
	MockIdentity        entity.Identity
	MockPreviousBalance entity.Balance
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{
		MockIdentity: entity.Identity{
			ID:                   "mock-target-id",
			Nickname:             "target",
			Role:                 entity.RoleUser,
			Balance:              entity.Balance{CWT: 13, CWS: 120},
			NotificationsEnabled: true,
			CreatedAt:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockPreviousBalance: entity.Balance{CWT: 10, CWS: 100},
	}
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context) ([]*entity.Identity, error) {
	if m.ShouldFailListUsers {
		return nil, entity.ErrUpstream
	}
	return []*entity.Identity{&m.MockIdentity}, nil
}

func (m *MockAdminUsecase) AdjustBalance(ctx context.Context, targetID string, adj usecasecontract.BalanceAdjustment) (entity.Balance, *entity.Identity, error) {
	if m.ShouldFailAdjustBalance {
		return entity.Balance{}, nil, entity.ErrNotFound
	}
	return m.MockPreviousBalance, &m.MockIdentity, nil
}

func (m *MockAdminUsecase) SetRole(ctx context.Context, targetID, role string) (entity.Role, *entity.Identity, error) {
	if m.InvalidRole {
		return "", nil, entity.ErrInvalidRole
	}
	if m.ShouldFailSetRole {
		return "", nil, entity.ErrNotFound
	}
	updated := m.MockIdentity
	updated.Role = entity.Role(role)
	return m.MockIdentity.Role, &updated, nil
}
