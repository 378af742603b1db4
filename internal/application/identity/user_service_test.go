package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/auth"
	"github.com/koreat/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-user-service-tests",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "koreat-test",
		MaxRefreshCount:        3,
	})
}

// verifiedLedgerEntry returns a record that passed the code check plus
// the one-time token it issued.
func verifiedLedgerEntry(t *testing.T, email string, purpose identity.VerificationPurpose) (*identity.EmailVerification, string) {
	t.Helper()
	v, err := identity.NewEmailVerification(email, purpose)
	require.NoError(t, err)
	token, err := v.Verify(v.Code, time.Now())
	require.NoError(t, err)
	return v, token
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and burns the token", func(t *testing.T) {
		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		verification, token := verifiedLedgerEntry(t, "new@example.com", identity.PurposeRegister)

		verifications.On("FindLatest", ctx, "new@example.com", identity.PurposeRegister).Return(verification, nil)
		verifications.On("Delete", ctx, "new@example.com", identity.PurposeRegister).Return(nil)
		users.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := NewUserService(users, verifications, auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		info, err := svc.Register(ctx, RegisterInput{
			Email:    "new@example.com",
			Name:     "Mina",
			Password: "password1",
			Token:    token,
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", info.Email)
		assert.Equal(t, "Mina", info.Name)
		assert.False(t, info.Staff)
		verifications.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		verification, _ := verifiedLedgerEntry(t, "new@example.com", identity.PurposeRegister)

		verifications.On("FindLatest", ctx, "new@example.com", identity.PurposeRegister).Return(verification, nil)

		svc := NewUserService(users, verifications, auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		_, err := svc.Register(ctx, RegisterInput{
			Email:    "new@example.com",
			Name:     "Mina",
			Password: "password1",
			Token:    "forged-token",
		})

		assert.ErrorIs(t, err, shared.ErrCodeMismatch)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a token from a record that was never verified", func(t *testing.T) {
		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		verification, err := identity.NewEmailVerification("new@example.com", identity.PurposeRegister)
		require.NoError(t, err)

		verifications.On("FindLatest", ctx, "new@example.com", identity.PurposeRegister).Return(verification, nil)

		svc := NewUserService(users, verifications, auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		_, err = svc.Register(ctx, RegisterInput{
			Email:    "new@example.com",
			Name:     "Mina",
			Password: "password1",
			Token:    "",
		})

		assert.ErrorIs(t, err, shared.ErrCodeMismatch)
	})

	t.Run("surfaces a registration race as a conflict", func(t *testing.T) {
		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		verification, token := verifiedLedgerEntry(t, "new@example.com", identity.PurposeRegister)

		verifications.On("FindLatest", ctx, "new@example.com", identity.PurposeRegister).Return(verification, nil)
		verifications.On("Delete", ctx, "new@example.com", identity.PurposeRegister).Return(nil)
		users.On("Create", ctx, mock.Anything).Return(shared.ErrAlreadyExists)

		svc := NewUserService(users, verifications, auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		_, err := svc.Register(ctx, RegisterInput{
			Email:    "new@example.com",
			Name:     "Mina",
			Password: "password1",
			Token:    token,
		})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the password and revokes sessions", func(t *testing.T) {
		user, err := identity.NewUser("user@example.com", "Mina", "oldpass12")
		require.NoError(t, err)

		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		verification, token := verifiedLedgerEntry(t, "user@example.com", identity.PurposeReset)

		verifications.On("FindLatest", ctx, "user@example.com", identity.PurposeReset).Return(verification, nil)
		verifications.On("Delete", ctx, "user@example.com", identity.PurposeReset).Return(nil)
		users.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		svc := NewUserService(users, verifications, blacklist, newTestJWTService(), zap.NewNop())
		err = svc.ResetPassword(ctx, ResetPasswordInput{
			Email:       "user@example.com",
			Token:       token,
			NewPassword: "newpass34",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("newpass34"))
		assert.False(t, user.VerifyPassword("oldpass12"))

		// Tokens issued before the reset are now rejected
		invalidated, err := blacklist.IsUserTokenInvalidated(ctx, user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, invalidated)
	})

	t.Run("rejects a wrong token without touching the account", func(t *testing.T) {
		users := new(MockUserRepository)
		verifications := new(MockVerificationRepository)
		verification, _ := verifiedLedgerEntry(t, "user@example.com", identity.PurposeReset)

		verifications.On("FindLatest", ctx, "user@example.com", identity.PurposeReset).Return(verification, nil)

		svc := NewUserService(users, verifications, auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		err := svc.ResetPassword(ctx, ResetPasswordInput{
			Email:       "user@example.com",
			Token:       "forged-token",
			NewPassword: "newpass34",
		})

		assert.ErrorIs(t, err, shared.ErrCodeMismatch)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_Rename(t *testing.T) {
	ctx := context.Background()

	user, err := identity.NewUser("user@example.com", "Mina", "password1")
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("FindByID", ctx, user.ID).Return(user, nil)
	users.On("Update", ctx, user).Return(nil)

	svc := NewUserService(users, new(MockVerificationRepository), auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
	info, err := svc.Rename(ctx, RenameInput{UserID: user.ID, Name: "Minji"})

	require.NoError(t, err)
	assert.Equal(t, "Minji", info.Name)
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes after a password re-check", func(t *testing.T) {
		user, err := identity.NewUser("user@example.com", "Mina", "password1")
		require.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Delete", ctx, user.ID).Return(nil)

		svc := NewUserService(users, new(MockVerificationRepository), auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		err = svc.DeleteAccount(ctx, DeleteAccountInput{UserID: user.ID, Password: "password1"})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("wrong password keeps the account", func(t *testing.T) {
		user, err := identity.NewUser("user@example.com", "Mina", "password1")
		require.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := NewUserService(users, new(MockVerificationRepository), auth.NewInMemoryTokenBlacklist(), newTestJWTService(), zap.NewNop())
		err = svc.DeleteAccount(ctx, DeleteAccountInput{UserID: user.ID, Password: "wrongpass1"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
