package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// NicknameResolver maps nicknames to identities. The directory only
// indexes by synthetic email, so the generic path fetches the complete
// identity list and scans it case-insensitively — O(n) per call, on every
// register and login. Directories that index nicknames natively implement
// contract.INicknameIndex and the resolver takes that path instead.
//
// If the uniqueness invariant were ever violated upstream, Resolve returns
// the first match in listing order; which record that is, is deliberately
// undefined.
type NicknameResolver struct {
	directory contract.IIdentityDirectory
}

func NewNicknameResolver(directory contract.IIdentityDirectory) *NicknameResolver {
	return &NicknameResolver{directory: directory}
}

// Resolve returns the identity owning the nickname, or ErrNotFound.
func (r *NicknameResolver) Resolve(ctx context.Context, nickname string) (*entity.Identity, error) {
	if idx, ok := r.directory.(contract.INicknameIndex); ok {
		return idx.FindByNickname(ctx, nickname)
	}

	identities, err := r.directory.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}
	for _, ident := range identities {
		if strings.EqualFold(ident.Nickname, nickname) {
			return ident, nil
		}
	}
	return nil, entity.ErrNotFound
}

// ExistsCaseInsensitive reports whether any identity other than excludeID
// already holds the nickname. excludeID is empty at registration; at
// profile update it is the caller's own id, so renaming to one's current
// nickname is not rejected.
func (r *NicknameResolver) ExistsCaseInsensitive(ctx context.Context, nickname, excludeID string) (bool, error) {
	ident, err := r.Resolve(ctx, nickname)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return ident.ID != excludeID, nil
}
