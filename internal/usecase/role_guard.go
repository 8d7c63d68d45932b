package usecase

import (
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// RequireAdmin authorizes access to the admin surface. The check is a
// case-sensitive exact match on "admin": moderators, plain users, an empty
// role, and casing variants like "Admin" are all forbidden.
func RequireAdmin(role entity.Role) error {
	if role == entity.RoleAdmin {
		return nil
	}
	return entity.ErrForbidden
}
