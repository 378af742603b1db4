package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/koreat/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPlaceRepository implements PlaceRepository using GORM
type GormPlaceRepository struct {
	db *gorm.DB
}

// NewGormPlaceRepository creates a new GormPlaceRepository
func NewGormPlaceRepository(db *gorm.DB) *GormPlaceRepository {
	return &GormPlaceRepository{db: db}
}

// Create inserts a cache entry. A concurrent insert of the same
// (name, address, language) key surfaces as shared.ErrAlreadyExists so
// the caller can re-read the winner's row.
func (r *GormPlaceRepository) Create(ctx context.Context, p *place.PlaceInfo) error {
	model, err := models.PlaceInfoModelFromDomain(p)
	if err != nil {
		return err
	}
	return translateCreateError(r.db.WithContext(ctx).Create(model).Error)
}

// Update overwrites an existing cache entry
func (r *GormPlaceRepository) Update(ctx context.Context, p *place.PlaceInfo) error {
	model, err := models.PlaceInfoModelFromDomain(p)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a cache entry by ID
func (r *GormPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*place.PlaceInfo, error) {
	var model models.PlaceInfoModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByKey finds a cache entry by its (name, address, language) key.
// The absent-address form is stored as an empty string.
func (r *GormPlaceRepository) FindByKey(ctx context.Context, name, address, language string) (*place.PlaceInfo, error) {
	var model models.PlaceInfoModel
	if err := r.db.WithContext(ctx).
		Where("name = ? AND address = ? AND language = ?", name, address, language).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Ensure GormPlaceRepository implements PlaceRepository
var _ place.PlaceRepository = (*GormPlaceRepository)(nil)
