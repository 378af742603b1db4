package collection

import (
	"strings"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/shared"
)

// MaxReviewImages caps the externally stored images per review
const MaxReviewImages = 4

// PlaceReview is a user-authored review of a cached place with a
// rating, text and up to four uploaded images.
type PlaceReview struct {
	shared.BaseEntity
	OwnerID   uuid.UUID
	PlaceID   uuid.UUID
	Rating    int
	Content   string
	ImageURLs []string
}

// NewPlaceReview creates a review. Image URLs beyond the cap are
// rejected rather than truncated.
func NewPlaceReview(ownerID, placeID uuid.UUID, rating int, content string, imageURLs []string) (*PlaceReview, error) {
	if ownerID == uuid.Nil || placeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner and place are required")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Rating must be between 1 and 5")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Review content cannot be empty")
	}
	if len(imageURLs) > MaxReviewImages {
		return nil, shared.NewDomainError("INVALID_INPUT", "A review may carry at most 4 images")
	}

	return &PlaceReview{
		BaseEntity: shared.NewBaseEntity(),
		OwnerID:    ownerID,
		PlaceID:    placeID,
		Rating:     rating,
		Content:    content,
		ImageURLs:  imageURLs,
	}, nil
}

// Edit updates rating and content
func (r *PlaceReview) Edit(rating int, content string) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("INVALID_INPUT", "Rating must be between 1 and 5")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return shared.NewDomainError("INVALID_INPUT", "Review content cannot be empty")
	}
	r.Rating = rating
	r.Content = content
	r.Touch()
	return nil
}

// OwnedBy reports whether the review belongs to the given user
func (r *PlaceReview) OwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}
