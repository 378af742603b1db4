package collection

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// SavedPlaceService handles bookmarks inside user folders
type SavedPlaceService struct {
	savedPlaceRepo collection.SavedPlaceRepository
	categoryRepo   collection.CategoryRepository
	placeRepo      place.PlaceRepository
	logger         *zap.Logger
}

// NewSavedPlaceService creates a new saved place service
func NewSavedPlaceService(
	savedPlaceRepo collection.SavedPlaceRepository,
	categoryRepo collection.CategoryRepository,
	placeRepo place.PlaceRepository,
	logger *zap.Logger,
) *SavedPlaceService {
	return &SavedPlaceService{
		savedPlaceRepo: savedPlaceRepo,
		categoryRepo:   categoryRepo,
		placeRepo:      placeRepo,
		logger:         logger,
	}
}

// SavePlace bookmarks a cached place into an owned folder. A folder
// holds a place at most once; duplicates conflict.
func (s *SavedPlaceService) SavePlace(ctx context.Context, input SavePlaceInput) (*collection.SavedPlace, error) {
	if _, err := s.ownedCategory(ctx, input.CategoryID, input.OwnerID); err != nil {
		return nil, err
	}

	if _, err := s.placeRepo.FindByID(ctx, input.PlaceID); err != nil {
		return nil, shared.ErrNotFound
	}

	held, err := s.savedPlaceRepo.ExistsInCategory(ctx, input.CategoryID, input.PlaceID)
	if err != nil {
		s.logger.Error("Failed to check bookmark presence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save place")
	}
	if held {
		return nil, shared.ErrAlreadyExists
	}

	saved, err := collection.NewSavedPlace(input.OwnerID, input.CategoryID, input.PlaceID, input.Alias)
	if err != nil {
		return nil, err
	}

	if err := s.savedPlaceRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("Failed to create bookmark", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save place")
	}

	s.logger.Info("Place saved",
		zap.String("saved_place_id", saved.ID.String()),
		zap.String("category_id", input.CategoryID.String()))

	return saved, nil
}

// MovePlace reassigns a bookmark to another owned folder. Moving into a
// folder that already holds the place conflicts rather than merging.
func (s *SavedPlaceService) MovePlace(ctx context.Context, input MovePlaceInput) (*collection.SavedPlace, error) {
	saved, err := s.savedPlaceRepo.FindByID(ctx, input.SavedPlaceID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !saved.OwnedBy(input.OwnerID) {
		return nil, shared.ErrForbidden
	}

	target, err := s.categoryRepo.FindByID(ctx, input.TargetCategoryID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !target.OwnedBy(input.OwnerID) {
		return nil, shared.ErrForbidden
	}

	held, err := s.savedPlaceRepo.ExistsInCategory(ctx, target.ID, saved.PlaceID)
	if err != nil {
		s.logger.Error("Failed to check bookmark presence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to move place")
	}
	if held {
		return nil, shared.ErrAlreadyExists
	}

	if err := saved.MoveTo(target.ID); err != nil {
		return nil, err
	}

	if err := s.savedPlaceRepo.Update(ctx, saved); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("Failed to persist bookmark move", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to move place")
	}

	return saved, nil
}

// RemovePlace deletes an owned bookmark
func (s *SavedPlaceService) RemovePlace(ctx context.Context, input RemovePlaceInput) error {
	saved, err := s.savedPlaceRepo.FindByID(ctx, input.SavedPlaceID)
	if err != nil {
		return shared.ErrNotFound
	}
	if !saved.OwnedBy(input.OwnerID) {
		return shared.ErrForbidden
	}

	if err := s.savedPlaceRepo.Delete(ctx, saved.ID); err != nil {
		s.logger.Error("Failed to delete bookmark", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove place")
	}

	return nil
}

// ListPlaces returns the bookmarks in an owned folder
func (s *SavedPlaceService) ListPlaces(ctx context.Context, input ListPlacesInput) ([]*collection.SavedPlace, error) {
	if _, err := s.ownedCategory(ctx, input.CategoryID, input.OwnerID); err != nil {
		return nil, err
	}

	places, err := s.savedPlaceRepo.FindByCategory(ctx, input.CategoryID)
	if err != nil {
		s.logger.Error("Failed to list bookmarks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list places")
	}
	return places, nil
}

func (s *SavedPlaceService) ownedCategory(ctx context.Context, categoryID, ownerID uuid.UUID) (*collection.UserCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !category.OwnedBy(ownerID) {
		s.logger.Warn("Category access by non-owner",
			zap.String("category_id", categoryID.String()),
			zap.String("user_id", ownerID.String()))
		return nil, shared.ErrForbidden
	}
	return category, nil
}
