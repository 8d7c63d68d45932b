package usecasecontract

import (
	"context"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// ProfileUpdate carries the caller-editable profile fields; nil fields are
// left untouched.
type ProfileUpdate struct {
	Nickname             *string
	Phone                *string
	Province             *string
	WalletAddress        *string
	NotificationsEnabled *bool
}

// Dashboard is the summary block shown after login.
type Dashboard struct {
	Balance          entity.Balance `json:"balance"`
	MemberSince      time.Time      `json:"member_since"`
	LastSignInAt     *time.Time     `json:"last_sign_in_at,omitempty"`
	TransactionCount int            `json:"transaction_count"`
}

// Transaction is a single history row. History is sample data only; there
// is no persisted ledger behind it.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AmountCWT   float64   `json:"amount_cwt"`
	AmountCWS   int64     `json:"amount_cws"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// IAccountUseCase defines the interface for self-service account operations.
type IAccountUseCase interface {
	GetProfile(ctx context.Context, callerID string) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, caller *entity.Identity, update ProfileUpdate) (*entity.Identity, error)
	GetBalance(ctx context.Context, callerID string) (entity.Balance, error)
	GetDashboard(ctx context.Context, callerID string) (*entity.Identity, *Dashboard, error)
	GetTransactions(ctx context.Context, callerID string) ([]Transaction, entity.Balance, error)
}
