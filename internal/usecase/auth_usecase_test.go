package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowryhub/cowry-backend/internal/domain/entity"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/directory"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/logger"
	"github.com/cowryhub/cowry-backend/internal/infrastructure/validator"
)

func newAuthUsecase(dir *directory.Memory) *AuthUsecase {
	resolver := NewNicknameResolver(dir)
	return NewAuthUsecase(dir, resolver, validator.NewValidator(), logger.NewNopLogger())
}

func TestRegister_CreatesIdentityWithDefaults(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	ident, token, err := uc.Register(context.Background(), "bob123", "password123")
	require.NoError(t, err)
	require.NotNil(t, ident)

	assert.NotEmpty(t, ident.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "bob123", ident.Nickname)
	assert.Equal(t, entity.RoleUser, ident.Role)
	assert.Equal(t, float64(0), ident.Balance.CWT)
	assert.Equal(t, int64(0), ident.Balance.CWS)
	assert.True(t, ident.NotificationsEnabled)
	assert.True(t, strings.HasPrefix(ident.Email, "bob123-"))
	assert.True(t, strings.HasSuffix(ident.Email, "@users.cowry.internal"))
}

func TestRegister_RejectsInvalidNickname(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	for _, nickname := range []string{"ab", "this_nickname_is_way_too_long", "bad name", "bad-name", ""} {
		_, _, err := uc.Register(context.Background(), nickname, "password123")
		assert.ErrorIs(t, err, entity.ErrValidation, "nickname %q should be rejected", nickname)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	_, _, err := uc.Register(context.Background(), "bob123", "short")
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRegister_DuplicateNicknameCaseInsensitive(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	_, _, err := uc.Register(context.Background(), "ALICE", "password123")
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, entity.ErrNicknameTaken)
}

func TestLogin_Succeeds(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	created, _, err := uc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	ident, token, err := uc.Login(context.Background(), "Alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, ident.ID)
	assert.NotEmpty(t, token)
	assert.NotNil(t, ident.LastSignInAt)
}

func TestLogin_UnknownNicknameAndWrongPasswordIndistinguishable(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	_, _, err := uc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	_, _, errUnknown := uc.Login(context.Background(), "nobody", "password123")
	_, _, errWrongPass := uc.Login(context.Background(), "alice", "wrongpassword")

	assert.ErrorIs(t, errUnknown, entity.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, entity.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthenticate_ResolvesToken(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	created, token, err := uc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := uc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ident.ID)
}

func TestAuthenticate_EmptyAndUnknownTokensFail(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	_, err := uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = uc.Authenticate(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	_, token, err := uc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), token))

	_, err = uc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	dir := directory.NewMemory()
	uc := newAuthUsecase(dir)

	ident, _, err := uc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	// Wrong current password is a validation failure, not a 401.
	err = uc.ChangePassword(context.Background(), ident, "wrongpassword", "newpassword1")
	assert.ErrorIs(t, err, entity.ErrValidation)

	// Too-short new password rejected before any directory call.
	err = uc.ChangePassword(context.Background(), ident, "password123", "short")
	assert.ErrorIs(t, err, entity.ErrValidation)

	require.NoError(t, uc.ChangePassword(context.Background(), ident, "password123", "newpassword1"))

	_, _, err = uc.Login(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), "alice", "newpassword1")
	assert.NoError(t, err)
}
