package persistence

import (
	"context"
	"errors"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVerificationRepository implements VerificationRepository using GORM
type GormVerificationRepository struct {
	db *gorm.DB
}

// NewGormVerificationRepository creates a new GormVerificationRepository
func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Replace atomically removes any prior record for the (email, purpose)
// pair and inserts the fresh one. At most one live record per pair.
func (r *GormVerificationRepository) Replace(ctx context.Context, v *identity.EmailVerification) error {
	model := models.VerificationModelFromDomain(v)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("email = ? AND purpose = ?", v.Email, string(v.Purpose)).
			Delete(&models.EmailVerificationModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
}

// Update persists state transitions (issued -> verified)
func (r *GormVerificationRepository) Update(ctx context.Context, v *identity.EmailVerification) error {
	model := models.VerificationModelFromDomain(v)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindLatest returns the live record for the (email, purpose) pair
func (r *GormVerificationRepository) FindLatest(ctx context.Context, email string, purpose identity.VerificationPurpose) (*identity.EmailVerification, error) {
	var model models.EmailVerificationModel
	if err := r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes the record for the (email, purpose) pair. Called on
// consumption so a token can never be used twice.
func (r *GormVerificationRepository) Delete(ctx context.Context, email string, purpose identity.VerificationPurpose) error {
	result := r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		Delete(&models.EmailVerificationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormVerificationRepository implements VerificationRepository
var _ identity.VerificationRepository = (*GormVerificationRepository)(nil)
