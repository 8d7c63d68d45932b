package mocks

import (
	"context"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface.
// Failures return the sentinel error each operation would naturally produce
// so handler tests exercise the real status mapping.
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailAuthenticate   bool
	ShouldFailLogout         bool
	ShouldFailChangePassword bool

	// RegisterWithoutToken simulates a registration where the identity was
	// created but session issuance failed.
	RegisterWithoutToken bool

	// Return values
	MockIdentity entity.Identity
	MockToken    string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockIdentity: entity.Identity{
			ID:                   "mock-identity-id",
			Nickname:             "testuser",
			Role:                 entity.RoleUser,
			Balance:              entity.Balance{CWT: 10, CWS: 100},
			NotificationsEnabled: true,
			CreatedAt:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockToken: "mock_session_token",
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, nickname, password string) (*entity.Identity, string, error) {
	if m.ShouldFailRegister {
		return nil, "", entity.ErrNicknameTaken
	}
	if m.RegisterWithoutToken {
		return &m.MockIdentity, "", nil
	}
	return &m.MockIdentity, m.MockToken, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, nickname, password string) (*entity.Identity, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockIdentity, m.MockToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if m.ShouldFailAuthenticate {
		return nil, entity.ErrInvalidCredentials
	}
	return &m.MockIdentity, nil
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	if m.ShouldFailLogout {
		return entity.ErrUpstream
	}
	return nil
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, caller *entity.Identity, currentPassword, newPassword string) error {
	if m.ShouldFailChangePassword {
		return entity.ErrValidation
	}
	return nil
}
