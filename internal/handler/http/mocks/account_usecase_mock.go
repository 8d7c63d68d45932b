package mocks

import (
	"context"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// MockAccountUsecase is a mock implementation of the IAccountUseCase
// interface.
type MockAccountUsecase struct {
	// Control mock behavior
	ShouldFailGetProfile      bool
	ShouldFailUpdateProfile   bool
	ShouldFailGetBalance      bool
	ShouldFailGetDashboard    bool
	ShouldFailGetTransactions bool

	// NicknameTaken makes UpdateProfile fail the uniqueness check instead of
	// the generic not-found failure.
	NicknameTaken bool

	// Return values
	MockIdentity     entity.Identity
	MockDashboard    usecasecontract.Dashboard
	MockTransactions []usecasecontract.Transaction
}

var _ usecasecontract.IAccountUseCase = (*MockAccountUsecase)(nil)

func NewMockAccountUsecase() *MockAccountUsecase {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &MockAccountUsecase{
		MockIdentity: entity.Identity{
			ID:                   "mock-identity-id",
			Nickname:             "testuser",
			Role:                 entity.RoleUser,
			Balance:              entity.Balance{CWT: 10, CWS: 100},
			NotificationsEnabled: true,
			CreatedAt:            createdAt,
		},
		MockDashboard: usecasecontract.Dashboard{
			Balance:          entity.Balance{CWT: 10, CWS: 100},
			MemberSince:      createdAt,
			TransactionCount: 2,
		},
		MockTransactions: []usecasecontract.Transaction{
			{
				ID:          "mock-tx-1",
				Type:        "signup_bonus",
				AmountCWT:   10,
				AmountCWS:   100,
				Description: "Welcome bonus",
				Status:      "completed",
				CreatedAt:   createdAt,
			},
		},
	}
}

func (m *MockAccountUsecase) GetProfile(ctx context.Context, callerID string) (*entity.Identity, error) {
	if m.ShouldFailGetProfile {
		return nil, entity.ErrNotFound
	}
	return &m.MockIdentity, nil
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, caller *entity.Identity, update usecasecontract.ProfileUpdate) (*entity.Identity, error) {
	if m.NicknameTaken {
		return nil, entity.ErrNicknameTaken
	}
	if m.ShouldFailUpdateProfile {
		return nil, entity.ErrNotFound
	}
	return &m.MockIdentity, nil
}

func (m *MockAccountUsecase) GetBalance(ctx context.Context, callerID string) (entity.Balance, error) {
	if m.ShouldFailGetBalance {
		return entity.Balance{}, entity.ErrNotFound
	}
	return m.MockIdentity.Balance, nil
}

func (m *MockAccountUsecase) GetDashboard(ctx context.Context, callerID string) (*entity.Identity, *usecasecontract.Dashboard, error) {
	if m.ShouldFailGetDashboard {
		return nil, nil, entity.ErrNotFound
	}
	return &m.MockIdentity, &m.MockDashboard, nil
}

func (m *MockAccountUsecase) GetTransactions(ctx context.Context, callerID string) ([]usecasecontract.Transaction, entity.Balance, error) {
	if m.ShouldFailGetTransactions {
		return nil, entity.Balance{}, entity.ErrNotFound
	}
	return m.MockTransactions, m.MockIdentity.Balance, nil
}
