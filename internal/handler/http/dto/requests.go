package dto

// RegisterRequest is the body for POST /api/register. termsAccepted must
// be true; the required tag rejects the zero value.
type RegisterRequest struct {
	Nickname      string `json:"nickname" binding:"required,nickname"`
	Password      string `json:"password" binding:"required,min=6"`
	TermsAccepted bool   `json:"termsAccepted" binding:"required"`
}

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body for PUT /api/user/profile. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Nickname      *string `json:"nickname" binding:"omitempty,nickname"`
	Phone         *string `json:"phone"`
	Province      *string `json:"province"`
	WalletAddress *string `json:"wallet_address"`
	Notifications *bool   `json:"notifications"`
}

// ChangePasswordRequest is the body for POST /api/user/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// AdjustBalanceRequest is the body for PUT /api/admin/users/:userId/balance.
// Missing deltas count as zero and any operation outside add/subtract
// (including none) means absolute set.
type AdjustBalanceRequest struct {
	CWT       *float64 `json:"cwt"`
	CWS       *int64   `json:"cws"`
	Operation string   `json:"operation"`
	Reason    string   `json:"reason"`
}

// SetRoleRequest is the body for PUT /api/admin/users/:userId/role.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
