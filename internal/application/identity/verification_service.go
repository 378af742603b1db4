package identity

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/shared"
)

// VerificationService drives the email verification ledger backing
// registration and password reset.
type VerificationService struct {
	verificationRepo identity.VerificationRepository
	userRepo         identity.UserRepository
	mailer           Mailer
	logger           *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	verificationRepo identity.VerificationRepository,
	userRepo identity.UserRepository,
	mailer Mailer,
	logger *zap.Logger,
) *VerificationService {
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

// SendCode issues a fresh code for (email, purpose), replacing any
// earlier record for the pair. The record is persisted before mail is
// attempted, so a delivery failure leaves a code the user can still
// receive on retry without the ledger drifting.
func (s *VerificationService) SendCode(ctx context.Context, input SendCodeInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := identity.ValidateEmail(email); err != nil {
		return err
	}
	if !input.Purpose.Valid() {
		return shared.NewDomainError("INVALID_PURPOSE", "Unknown verification purpose")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to check email")
	}

	// Registration requires a free address, reset an occupied one
	switch input.Purpose {
	case identity.PurposeRegister:
		if exists {
			s.logger.Warn("Verification requested for registered email",
				zap.String("email", email))
			return shared.ErrAlreadyExists
		}
	case identity.PurposeReset:
		if !exists {
			s.logger.Warn("Reset requested for unknown email",
				zap.String("email", email))
			return shared.ErrNotFound
		}
	}

	verification, err := identity.NewEmailVerification(email, input.Purpose)
	if err != nil {
		return err
	}

	if err := s.verificationRepo.Replace(ctx, verification); err != nil {
		s.logger.Error("Failed to store verification record", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to store verification code")
	}

	if err := s.mailer.SendVerificationCode(ctx, email, verification.Code, input.Purpose); err != nil {
		s.logger.Warn("Verification mail not delivered",
			zap.String("email", email),
			zap.String("purpose", string(input.Purpose)),
			zap.Error(err))
		return shared.ErrUpstream
	}

	s.logger.Info("Verification code sent",
		zap.String("email", email),
		zap.String("purpose", string(input.Purpose)))

	return nil
}

// VerifyCode checks the submitted code against the latest record for
// (email, purpose) and returns the one-time token on success.
func (s *VerificationService) VerifyCode(ctx context.Context, input VerifyCodeInput) (*VerifyCodeResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	verification, err := s.verificationRepo.FindLatest(ctx, email, input.Purpose)
	if err != nil {
		s.logger.Warn("No verification record for code check",
			zap.String("email", email),
			zap.String("purpose", string(input.Purpose)))
		return nil, shared.ErrNotFound
	}

	token, err := verification.Verify(input.Code, time.Now())
	if err != nil {
		s.logger.Warn("Verification code rejected",
			zap.String("email", email),
			zap.String("purpose", string(input.Purpose)),
			zap.Error(err))
		return nil, err
	}

	if err := s.verificationRepo.Update(ctx, verification); err != nil {
		s.logger.Error("Failed to persist verified state", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record verification")
	}

	s.logger.Info("Verification code accepted",
		zap.String("email", email),
		zap.String("purpose", string(input.Purpose)))

	return &VerifyCodeResult{Token: token}, nil
}
