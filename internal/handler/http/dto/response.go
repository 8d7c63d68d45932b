package dto

import (
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// UserPayload is the DTO for an identity as shown to its owner or an admin.
// The synthetic directory email is deliberately absent.
type UserPayload struct {
	ID                   string  `json:"id"`
	Nickname             string  `json:"nickname"`
	Role                 string  `json:"role"`
	CWT                  float64 `json:"cwt"`
	CWS                  int64   `json:"cws"`
	Phone                string  `json:"phone,omitempty"`
	Province             string  `json:"province,omitempty"`
	WalletAddress        string  `json:"wallet_address,omitempty"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	CreatedAt            string  `json:"created_at"`
	LastSignInAt         *string `json:"last_sign_in_at,omitempty"`
}

// ProfilePayload is the DTO for the self-service profile endpoints.
type ProfilePayload struct {
	Nickname             string `json:"nickname"`
	Phone                string `json:"phone"`
	Province             string `json:"province"`
	WalletAddress        string `json:"wallet_address"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	CreatedAt            string `json:"created_at"`
}

// BalancePayload is the DTO for a balance pair.
type BalancePayload struct {
	CWT float64 `json:"cwt"`
	CWS int64   `json:"cws"`
}

// ToUserPayload converts an entity.Identity to a UserPayload DTO.
func ToUserPayload(ident entity.Identity) UserPayload {
	p := UserPayload{
		ID:                   ident.ID,
		Nickname:             ident.Nickname,
		Role:                 string(ident.Role),
		CWT:                  ident.Balance.CWT,
		CWS:                  ident.Balance.CWS,
		Phone:                ident.Phone,
		Province:             ident.Province,
		WalletAddress:        ident.WalletAddress,
		NotificationsEnabled: ident.NotificationsEnabled,
		CreatedAt:            ident.CreatedAt.Format(time.RFC3339),
	}
	if ident.LastSignInAt != nil {
		s := ident.LastSignInAt.Format(time.RFC3339)
		p.LastSignInAt = &s
	}
	return p
}

// ToProfilePayload converts an entity.Identity to a ProfilePayload DTO.
func ToProfilePayload(ident entity.Identity) ProfilePayload {
	return ProfilePayload{
		Nickname:             ident.Nickname,
		Phone:                ident.Phone,
		Province:             ident.Province,
		WalletAddress:        ident.WalletAddress,
		NotificationsEnabled: ident.NotificationsEnabled,
		CreatedAt:            ident.CreatedAt.Format(time.RFC3339),
	}
}

// ToBalancePayload converts an entity.Balance to its DTO.
func ToBalancePayload(b entity.Balance) BalancePayload {
	return BalancePayload{CWT: b.CWT, CWS: b.CWS}
}
