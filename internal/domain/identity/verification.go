package identity

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"time"

	"github.com/koreat/backend/internal/domain/shared"
)

// VerificationPurpose distinguishes the two flows backed by the ledger
type VerificationPurpose string

const (
	PurposeRegister VerificationPurpose = "register"
	PurposeReset    VerificationPurpose = "reset"
)

// Valid reports whether the purpose is one of the known flows
func (p VerificationPurpose) Valid() bool {
	return p == PurposeRegister || p == PurposeReset
}

// VerificationState is the explicit lifecycle state of a ledger record.
// A record is created as issued, becomes verified once the code has been
// checked and a one-time token attached, and is deleted on consumption.
type VerificationState string

const (
	VerificationIssued   VerificationState = "issued"
	VerificationVerified VerificationState = "verified"
)

// CodeTTL is the window within which an issued code may be verified
const CodeTTL = 5 * time.Minute

// EmailVerification is a short-lived record in the verification ledger.
// At most one record exists per (email, purpose); re-sending replaces it.
type EmailVerification struct {
	shared.BaseEntity
	Email   string
	Purpose VerificationPurpose
	Code    string
	Token   string
	State   VerificationState
}

// NewEmailVerification issues a fresh code for the given (email, purpose)
func NewEmailVerification(email string, purpose VerificationPurpose) (*EmailVerification, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if !purpose.Valid() {
		return nil, shared.NewDomainError("INVALID_PURPOSE", "Unknown verification purpose")
	}

	code, err := generateCode()
	if err != nil {
		return nil, shared.NewDomainError("CODE_GENERATION_ERROR", "Failed to generate verification code")
	}

	return &EmailVerification{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Purpose:    purpose,
		Code:       code,
		State:      VerificationIssued,
	}, nil
}

// IsExpired reports whether the code window has closed
func (v *EmailVerification) IsExpired(now time.Time) bool {
	return now.After(v.CreatedAt.Add(CodeTTL))
}

// Verify checks the supplied code and, on success, transitions the record
// to verified with a fresh one-time token attached. The code is not
// re-checkable afterwards.
func (v *EmailVerification) Verify(code string, now time.Time) (string, error) {
	if v.IsExpired(now) {
		return "", shared.ErrCodeExpired
	}
	if v.State != VerificationIssued {
		return "", shared.ErrInvalidState
	}
	if v.Code != code {
		return "", shared.ErrCodeMismatch
	}

	token, err := generateToken()
	if err != nil {
		return "", shared.NewDomainError("TOKEN_GENERATION_ERROR", "Failed to generate verification token")
	}

	v.Token = token
	v.State = VerificationVerified
	v.Touch()

	return token, nil
}

// CheckToken validates a token presented at consume time.
// The token does not carry its own expiry; it is superseded only by a
// new send for the same (email, purpose).
func (v *EmailVerification) CheckToken(token string) error {
	if v.State != VerificationVerified || v.Token == "" || v.Token != token {
		return shared.ErrCodeMismatch
	}
	return nil
}

// generateCode produces a 6-digit numeric code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// generateToken produces a 32-byte URL-safe one-time token
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
