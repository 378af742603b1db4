package models

import (
	"time"

	"github.com/koreat/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	AggregateModel
	Email        string `gorm:"size:200;not null;uniqueIndex"`
	Name         string `gorm:"size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Staff        bool   `gorm:"not null;default:false"`
	Superuser    bool   `gorm:"not null;default:false"`
	Active       bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// UserModelFromDomain creates a UserModel from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Staff:        u.Staff,
		Superuser:    u.Superuser,
		Active:       u.Active,
		LastLoginAt:  u.LastLoginAt,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}

// ToDomain converts UserModel to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		Name:              m.Name,
		PasswordHash:      m.PasswordHash,
		Staff:             m.Staff,
		Superuser:         m.Superuser,
		Active:            m.Active,
		LastLoginAt:       m.LastLoginAt,
	}
}

// EmailVerificationModel is the persistence model for the verification ledger
type EmailVerificationModel struct {
	BaseModel
	Email   string `gorm:"size:200;not null;uniqueIndex:idx_verifications_email_purpose"`
	Purpose string `gorm:"size:20;not null;uniqueIndex:idx_verifications_email_purpose"`
	Code    string `gorm:"size:6;not null"`
	Token   string `gorm:"size:64"`
	State   string `gorm:"size:20;not null"`
}

// TableName returns the table name for EmailVerificationModel
func (EmailVerificationModel) TableName() string {
	return "email_verifications"
}

// VerificationModelFromDomain creates an EmailVerificationModel from a domain record
func VerificationModelFromDomain(v *identity.EmailVerification) *EmailVerificationModel {
	m := &EmailVerificationModel{
		Email:   v.Email,
		Purpose: string(v.Purpose),
		Code:    v.Code,
		Token:   v.Token,
		State:   string(v.State),
	}
	m.FromDomainBaseEntity(v.BaseEntity)
	return m
}

// ToDomain converts EmailVerificationModel to a domain record
func (m *EmailVerificationModel) ToDomain() *identity.EmailVerification {
	return &identity.EmailVerification{
		BaseEntity: m.BaseModel.ToDomain(),
		Email:      m.Email,
		Purpose:    identity.VerificationPurpose(m.Purpose),
		Code:       m.Code,
		Token:      m.Token,
		State:      identity.VerificationState(m.State),
	}
}
