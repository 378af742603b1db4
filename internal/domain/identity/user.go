package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/koreat/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Capability represents an action a user may be allowed to perform.
// Moderation and place administration are gated on capabilities rather
// than on the raw staff flag so roles can grow without touching call sites.
type Capability string

const (
	CapModerate     Capability = "moderation"
	CapManagePlaces Capability = "places.manage"
	CapManageUsers  Capability = "users.manage"
)

// User represents an account in the system.
// It is the aggregate root for account operations.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Staff        bool
	Superuser    bool
	Active       bool
	LastLoginAt  *time.Time
}

// NewUser creates a new active, non-staff user
func NewUser(email, name, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      passwordHash,
		Active:            true,
	}, nil
}

// Rename changes the user's display name
func (u *User) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.Name = strings.TrimSpace(name)
	u.Touch()
	u.IncrementVersion()
	return nil
}

// SetPassword replaces the password without checking the old one.
// Used by the reset flow where possession of the verification token
// is the proof of identity.
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = passwordHash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.Touch()
	u.IncrementVersion()
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if !u.Active {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}
	u.Active = false
	u.Touch()
	u.IncrementVersion()
	return nil
}

// CanLogin returns true if the user may authenticate
func (u *User) CanLogin() bool {
	return u.Active
}

// Can reports whether the user holds the given capability.
// Superusers hold everything; staff hold the moderation and
// place-administration capabilities.
func (u *User) Can(cap Capability) bool {
	if !u.Active {
		return false
	}
	if u.Superuser {
		return true
	}
	if u.Staff {
		switch cap {
		case CapModerate, CapManagePlaces:
			return true
		}
	}
	return false
}

// Capabilities returns all capabilities held by the user
func (u *User) Capabilities() []Capability {
	all := []Capability{CapModerate, CapManagePlaces, CapManageUsers}
	held := make([]Capability, 0, len(all))
	for _, c := range all {
		if u.Can(c) {
			held = append(held, c)
		}
	}
	return held
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)

// ValidateEmail checks the email shape used throughout registration
// and the verification ledger.
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
