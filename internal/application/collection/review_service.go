package collection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// ReviewService handles user reviews of cached places, including the
// image uploads attached to them.
type ReviewService struct {
	reviewRepo collection.ReviewRepository
	placeRepo  place.PlaceRepository
	storage    ObjectStorage
	logger     *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo collection.ReviewRepository,
	placeRepo place.PlaceRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		storage:    storage,
		logger:     logger,
	}
}

// CreateReview submits a review with up to four images. Individual
// upload failures are swallowed; the review saves with the successful
// subset.
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*collection.PlaceReview, error) {
	if len(input.Images) > collection.MaxReviewImages {
		return nil, shared.NewDomainError("INVALID_INPUT", "A review may carry at most 4 images")
	}

	if _, err := s.placeRepo.FindByID(ctx, input.PlaceID); err != nil {
		return nil, shared.ErrNotFound
	}

	imageURLs := s.uploadImages(ctx, input.Images)

	review, err := collection.NewPlaceReview(input.OwnerID, input.PlaceID, input.Rating, input.Content, imageURLs)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create review")
	}

	s.logger.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("place_id", input.PlaceID.String()),
		zap.Int("images", len(imageURLs)))

	return review, nil
}

// EditReview updates rating and content of an owned review
func (s *ReviewService) EditReview(ctx context.Context, input EditReviewInput) (*collection.PlaceReview, error) {
	review, err := s.findOwned(ctx, input.ReviewID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := review.Edit(input.Rating, input.Content); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to persist review edit", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update review")
	}

	return review, nil
}

// DeleteReview removes an owned review
func (s *ReviewService) DeleteReview(ctx context.Context, input DeleteReviewInput) error {
	review, err := s.findOwned(ctx, input.ReviewID, input.OwnerID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		s.logger.Error("Failed to delete review", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete review")
	}

	s.logger.Info("Review deleted", zap.String("review_id", review.ID.String()))

	return nil
}

// ListByPlace returns all reviews of a place
func (s *ReviewService) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*collection.PlaceReview, error) {
	reviews, err := s.reviewRepo.FindByPlace(ctx, placeID)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reviews")
	}
	return reviews, nil
}

// ListByOwner returns the user's own reviews
func (s *ReviewService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*collection.PlaceReview, error) {
	reviews, err := s.reviewRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reviews")
	}
	return reviews, nil
}

// uploadImages stores each image and collects the public URLs. A failed
// upload drops that image only.
func (s *ReviewService) uploadImages(ctx context.Context, images []ImageUpload) []string {
	if len(images) == 0 {
		return nil
	}

	batch := uuid.New().String()
	urls := make([]string, 0, len(images))
	for i, img := range images {
		key := fmt.Sprintf("reviews/%s/%d", batch, i)
		url, err := s.storage.Upload(ctx, key, img.Data, img.ContentType)
		if err != nil {
			s.logger.Warn("Review image upload failed",
				zap.String("key", key),
				zap.Error(err))
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *ReviewService) findOwned(ctx context.Context, reviewID, ownerID uuid.UUID) (*collection.PlaceReview, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !review.OwnedBy(ownerID) {
		s.logger.Warn("Review access by non-owner",
			zap.String("review_id", reviewID.String()),
			zap.String("user_id", ownerID.String()))
		return nil, shared.ErrForbidden
	}
	return review, nil
}
