package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSavedPlaceRepository implements SavedPlaceRepository using GORM
type GormSavedPlaceRepository struct {
	db *gorm.DB
}

// NewGormSavedPlaceRepository creates a new GormSavedPlaceRepository
func NewGormSavedPlaceRepository(db *gorm.DB) *GormSavedPlaceRepository {
	return &GormSavedPlaceRepository{db: db}
}

// Create inserts a bookmark; duplicate (category, place) pairs surface
// as shared.ErrAlreadyExists
func (r *GormSavedPlaceRepository) Create(ctx context.Context, s *collection.SavedPlace) error {
	model := models.SavedPlaceModelFromDomain(s)
	return translateCreateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates a bookmark (alias edits, folder moves)
func (r *GormSavedPlaceRepository) Update(ctx context.Context, s *collection.SavedPlace) error {
	model := models.SavedPlaceModelFromDomain(s)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return translateCreateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a bookmark
func (r *GormSavedPlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SavedPlaceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a bookmark by ID
func (r *GormSavedPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.SavedPlace, error) {
	var model models.SavedPlaceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory lists the bookmarks in a folder
func (r *GormSavedPlaceRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*collection.SavedPlace, error) {
	var savedModels []*models.SavedPlaceModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&savedModels).Error; err != nil {
		return nil, err
	}

	saved := make([]*collection.SavedPlace, len(savedModels))
	for i, model := range savedModels {
		saved[i] = model.ToDomain()
	}
	return saved, nil
}

// ExistsInCategory checks if a folder already holds the place
func (r *GormSavedPlaceRepository) ExistsInCategory(ctx context.Context, categoryID, placeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SavedPlaceModel{}).
		Where("category_id = ? AND place_id = ?", categoryID, placeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormSavedPlaceRepository implements SavedPlaceRepository
var _ collection.SavedPlaceRepository = (*GormSavedPlaceRepository)(nil)
