package persistence

import (
	"context"
	"errors"

	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTranslationRepository implements TranslationRepository using GORM
type GormTranslationRepository struct {
	db *gorm.DB
}

// NewGormTranslationRepository creates a new GormTranslationRepository
func NewGormTranslationRepository(db *gorm.DB) *GormTranslationRepository {
	return &GormTranslationRepository{db: db}
}

// FindCategory looks up a memoized category translation
func (r *GormTranslationRepository) FindCategory(ctx context.Context, korean string) (*place.CategoryTranslation, error) {
	var model models.CategoryTranslationModel
	if err := r.db.WithContext(ctx).
		Where("korean = ?", korean).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveCategory memoizes a category translation. A concurrent save of
// the same term keeps the first row.
func (r *GormTranslationRepository) SaveCategory(ctx context.Context, t *place.CategoryTranslation) error {
	model := models.CategoryTranslationModelFromDomain(t)
	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil && isDuplicateKey(err) {
		return nil
	}
	return err
}

// FindRegion looks up a memoized region translation
func (r *GormTranslationRepository) FindRegion(ctx context.Context, english string) (*place.RegionTranslation, error) {
	var model models.RegionTranslationModel
	if err := r.db.WithContext(ctx).
		Where("english = ?", english).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveRegion memoizes a region translation
func (r *GormTranslationRepository) SaveRegion(ctx context.Context, t *place.RegionTranslation) error {
	model := models.RegionTranslationModelFromDomain(t)
	err := r.db.WithContext(ctx).Create(model).Error
	if err != nil && isDuplicateKey(err) {
		return nil
	}
	return err
}

// Ensure GormTranslationRepository implements TranslationRepository
var _ place.TranslationRepository = (*GormTranslationRepository)(nil)
