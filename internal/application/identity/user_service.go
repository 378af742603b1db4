package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/auth"
)

// UserService handles account lifecycle operations
type UserService struct {
	userRepo         identity.UserRepository
	verificationRepo identity.VerificationRepository
	blacklist        auth.TokenBlacklist
	jwtService       *auth.JWTService
	logger           *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	verificationRepo identity.VerificationRepository,
	blacklist auth.TokenBlacklist,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		blacklist:        blacklist,
		jwtService:       jwtService,
		logger:           logger,
	}
}

// Register creates an account after the email has been verified.
// The one-time token from the verify step is consumed here, so a token
// can create at most one account.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := s.consumeToken(ctx, email, identity.PurposeRegister, input.Token); err != nil {
		s.logger.Warn("Registration token rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	user, err := identity.NewUser(email, input.Name, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Warn("Registration raced an existing account", zap.String("email", email))
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.logger.Info("User registered",
		zap.String("email", email),
		zap.String("user_id", user.ID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// ResetPassword sets a new password for the account that completed the
// reset verification flow. All outstanding sessions are revoked.
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := s.consumeToken(ctx, email, identity.PurposeReset, input.Token); err != nil {
		s.logger.Warn("Reset token rejected", zap.String("email", email), zap.Error(err))
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return shared.ErrNotFound
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to persist new password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	// Revoke every token issued before now; TTL matches the longest
	// lifetime a stale refresh token could still have
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Error("Failed to revoke sessions after password reset",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))

	return nil
}

// GetUser returns the account identified by id
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info := NewUserInfo(user)
	return &info, nil
}

// Rename changes the account's display name
func (s *UserService) Rename(ctx context.Context, input RenameInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := user.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to persist rename", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update name")
	}

	s.logger.Info("User renamed", zap.String("user_id", user.ID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// DeleteAccount removes the account and its owned collections after a
// password re-check. Moderation records are kept for the audit trail.
func (s *UserService) DeleteAccount(ctx context.Context, input DeleteAccountInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.ErrNotFound
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Account deletion with wrong password",
			zap.String("user_id", user.ID.String()))
		return shared.NewDomainError("INVALID_CREDENTIALS", "Password does not match")
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete account")
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Error("Failed to revoke sessions after account deletion",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Account deleted", zap.String("user_id", user.ID.String()))

	return nil
}

// consumeToken validates a one-time verification token for the pair and
// burns the ledger record so the token cannot be replayed.
func (s *UserService) consumeToken(ctx context.Context, email string, purpose identity.VerificationPurpose, token string) error {
	verification, err := s.verificationRepo.FindLatest(ctx, email, purpose)
	if err != nil {
		return shared.ErrCodeMismatch
	}

	if err := verification.CheckToken(token); err != nil {
		return err
	}

	if err := s.verificationRepo.Delete(ctx, email, purpose); err != nil {
		s.logger.Error("Failed to consume verification record",
			zap.String("email", email),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to consume verification")
	}

	return nil
}
