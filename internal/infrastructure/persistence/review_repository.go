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

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a review
func (r *GormReviewRepository) Create(ctx context.Context, review *collection.PlaceReview) error {
	model, err := models.PlaceReviewModelFromDomain(review)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates a review
func (r *GormReviewRepository) Update(ctx context.Context, review *collection.PlaceReview) error {
	model, err := models.PlaceReviewModelFromDomain(review)
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

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PlaceReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.PlaceReview, error) {
	var model models.PlaceReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByPlace lists the reviews written for a place
func (r *GormReviewRepository) FindByPlace(ctx context.Context, placeID uuid.UUID) ([]*collection.PlaceReview, error) {
	return r.findAll(ctx, "place_id = ?", placeID)
}

// FindByOwner lists the reviews a user has written
func (r *GormReviewRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*collection.PlaceReview, error) {
	return r.findAll(ctx, "owner_id = ?", ownerID)
}

func (r *GormReviewRepository) findAll(ctx context.Context, query string, arg any) ([]*collection.PlaceReview, error) {
	var reviewModels []*models.PlaceReviewModel
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]*collection.PlaceReview, len(reviewModels))
	for i, model := range reviewModels {
		review, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		reviews[i] = review
	}
	return reviews, nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ collection.ReviewRepository = (*GormReviewRepository)(nil)
