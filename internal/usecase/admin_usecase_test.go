package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/directory"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/logger"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

func float64Ptr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64       { return &i }

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(entity.RoleAdmin))

	for _, role := range []entity.Role{entity.RoleModerator, entity.RoleUser, "", "Admin", "ADMIN"} {
		assert.ErrorIs(t, RequireAdmin(role), entity.ErrForbidden, "role %q must be forbidden", role)
	}
}

func TestAdjustBalance_Add(t *testing.T) {
	dir := directory.NewMemory()
	target := seedIdentity(t, dir, "alice")
	setBalance(t, dir, target.ID, entity.Balance{CWT: 10, CWS: 100})
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	previous, updated, err := uc.AdjustBalance(context.Background(), target.ID, usecasecontract.BalanceAdjustment{
		CWT:       float64Ptr(3),
		CWS:       int64Ptr(20),
		Operation: entity.OpAdd,
		Reason:    "promo credit",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Balance{CWT: 10, CWS: 100}, previous)
	assert.Equal(t, entity.Balance{CWT: 13, CWS: 120}, updated.Balance)
}

func TestAdjustBalance_SubtractClamps(t *testing.T) {
	dir := directory.NewMemory()
	target := seedIdentity(t, dir, "alice")
	setBalance(t, dir, target.ID, entity.Balance{CWT: 10, CWS: 100})
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	_, updated, err := uc.AdjustBalance(context.Background(), target.ID, usecasecontract.BalanceAdjustment{
		CWT:       float64Ptr(30),
		CWS:       int64Ptr(200),
		Operation: entity.OpSubtract,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Balance{CWT: 0, CWS: 0}, updated.Balance)
}

func TestAdjustBalance_MissingDeltasAreZero(t *testing.T) {
	dir := directory.NewMemory()
	target := seedIdentity(t, dir, "alice")
	setBalance(t, dir, target.ID, entity.Balance{CWT: 10, CWS: 100})
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	// No deltas with the default set operation zeroes the balances.
	_, updated, err := uc.AdjustBalance(context.Background(), target.ID, usecasecontract.BalanceAdjustment{})
	require.NoError(t, err)
	assert.Equal(t, entity.Balance{CWT: 0, CWS: 0}, updated.Balance)
}

func TestAdjustBalance_UnknownTarget(t *testing.T) {
	dir := directory.NewMemory()
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	_, _, err := uc.AdjustBalance(context.Background(), "missing-id", usecasecontract.BalanceAdjustment{
		CWT:       float64Ptr(1),
		Operation: entity.OpAdd,
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSetRole(t *testing.T) {
	dir := directory.NewMemory()
	target := seedIdentity(t, dir, "alice")
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	previous, updated, err := uc.SetRole(context.Background(), target.ID, "moderator")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, previous)
	assert.Equal(t, entity.RoleModerator, updated.Role)
}

func TestSetRole_InvalidRoleNeverReachesDirectory(t *testing.T) {
	dir := directory.NewMemory()
	target := seedIdentity(t, dir, "alice")
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	before := dir.UpdateCalls
	_, _, err := uc.SetRole(context.Background(), target.ID, "superadmin")
	assert.ErrorIs(t, err, entity.ErrInvalidRole)
	assert.Equal(t, before, dir.UpdateCalls)
}

func TestSetRole_UnknownTarget(t *testing.T) {
	dir := directory.NewMemory()
	uc := NewAdminUsecase(dir, logger.NewNopLogger())

	_, _, err := uc.SetRole(context.Background(), "missing-id", "admin")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func setBalance(t *testing.T, dir *directory.Memory, id string, balance entity.Balance) {
	t.Helper()
	_, err := dir.UpdateIdentity(context.Background(), id, contract.IdentityPatch{
		CWT: &balance.CWT,
		CWS: &balance.CWS,
	})
	require.NoError(t, err)
}
