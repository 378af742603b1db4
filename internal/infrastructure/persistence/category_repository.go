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

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create inserts a folder; duplicate (owner, name) pairs surface as
// shared.ErrAlreadyExists
func (r *GormCategoryRepository) Create(ctx context.Context, c *collection.UserCategory) error {
	model := models.UserCategoryModelFromDomain(c)
	return translateCreateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update updates a folder
func (r *GormCategoryRepository) Update(ctx context.Context, c *collection.UserCategory) error {
	model := models.UserCategoryModelFromDomain(c)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return translateCreateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a folder and the bookmarks it holds
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SavedPlaceModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.UserCategoryModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a folder by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.UserCategory, error) {
	var model models.UserCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner lists an owner's folders
func (r *GormCategoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*collection.UserCategory, error) {
	var categoryModels []*models.UserCategoryModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*collection.UserCategory, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = model.ToDomain()
	}
	return categories, nil
}

// ExistsByOwnerAndName checks if the owner already has a folder with this name
func (r *GormCategoryRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserCategoryModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ collection.CategoryRepository = (*GormCategoryRepository)(nil)
