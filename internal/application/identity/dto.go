package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/koreat/backend/internal/domain/identity"
)

// SendCodeInput contains the input for issuing a verification code
type SendCodeInput struct {
	Email   string
	Purpose identity.VerificationPurpose
}

// VerifyCodeInput contains the input for checking a verification code
type VerifyCodeInput struct {
	Email   string
	Purpose identity.VerificationPurpose
	Code    string
}

// VerifyCodeResult carries the one-time token proving the code was checked
type VerifyCodeResult struct {
	Token string
}

// RegisterInput contains the input for account creation.
// Token is the one-time token obtained from the verify step.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Token    string
}

// ResetPasswordInput contains the input for the password reset flow
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// RenameInput contains the input for changing the display name
type RenameInput struct {
	UserID uuid.UUID
	Name   string
}

// DeleteAccountInput contains the input for account deletion.
// The password re-check guards against a stolen access token.
type DeleteAccountInput struct {
	UserID   uuid.UUID
	Password string
}

// UserInfo contains the account fields exposed to callers
type UserInfo struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Staff        bool
	Capabilities []string
	CreatedAt    time.Time
}

// NewUserInfo maps a domain user to its outward form
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Staff:        user.Staff,
		Capabilities: capabilityStrings(user.Capabilities()),
		CreatedAt:    user.CreatedAt,
	}
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

func capabilityStrings(caps []identity.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}
