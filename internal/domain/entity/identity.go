package entity

import (
	"time"
)

// Identity represents a registered account in the identity directory.
// The directory is the system of record; this struct is the translated
// view of an identity record plus its metadata fields.
type Identity struct {
	ID string `bson:"_id,omitempty" json:"id"`
	// Email is synthetic and internal to the directory. It is never shown
	// to the end user as their own identifier.
	Email                string     `bson:"email" json:"-"`
	Nickname             string     `bson:"nickname" json:"nickname"`
	PasswordHash         string     `bson:"password_hash,omitempty" json:"-"`
	Role                 Role       `bson:"role" json:"role"`
	Balance              Balance    `bson:"balance" json:"balance"`
	Phone                string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Province             string     `bson:"province,omitempty" json:"province,omitempty"`
	WalletAddress        string     `bson:"wallet_address,omitempty" json:"wallet_address,omitempty"`
	NotificationsEnabled bool       `bson:"notifications_enabled" json:"notifications_enabled"`
	CreatedAt            time.Time  `bson:"created_at" json:"created_at"`
	LastSignInAt         *time.Time `bson:"last_sign_in_at,omitempty" json:"last_sign_in_at,omitempty"`
}

// Role represents the access tier of an identity.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

func DefaultRole() Role {
	return RoleUser
}

// Valid reports whether the role is one of the closed set of tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role, failing with ErrInvalidRole
// for anything outside the closed set. Matching is case-sensitive.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
