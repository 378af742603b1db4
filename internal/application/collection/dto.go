package collection

import (
	"github.com/google/uuid"

	"github.com/koreat/backend/internal/domain/place"
)

// CreateCategoryInput contains the input for creating a folder
type CreateCategoryInput struct {
	OwnerID uuid.UUID
	Name    string
}

// RenameCategoryInput contains the input for renaming a folder
type RenameCategoryInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	Name       string
}

// DeleteCategoryInput contains the input for deleting a folder
type DeleteCategoryInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
}

// SavePlaceInput contains the input for bookmarking a place
type SavePlaceInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	PlaceID    uuid.UUID
	Alias      string
}

// MovePlaceInput contains the input for moving a bookmark between folders
type MovePlaceInput struct {
	OwnerID          uuid.UUID
	SavedPlaceID     uuid.UUID
	TargetCategoryID uuid.UUID
}

// RemovePlaceInput contains the input for removing a bookmark
type RemovePlaceInput struct {
	OwnerID      uuid.UUID
	SavedPlaceID uuid.UUID
}

// ListPlacesInput contains the input for listing a folder's bookmarks
type ListPlacesInput struct {
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
}

// ImageUpload is one raw image attached to a review submission
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// CreateReviewInput contains the input for submitting a review
type CreateReviewInput struct {
	OwnerID uuid.UUID
	PlaceID uuid.UUID
	Rating  int
	Content string
	Images  []ImageUpload
}

// EditReviewInput contains the input for editing a review
type EditReviewInput struct {
	OwnerID  uuid.UUID
	ReviewID uuid.UUID
	Rating   int
	Content  string
}

// DeleteReviewInput contains the input for deleting a review
type DeleteReviewInput struct {
	OwnerID  uuid.UUID
	ReviewID uuid.UUID
}

// SubmitChangeRequestInput contains a proposed menu replacement
type SubmitChangeRequestInput struct {
	OwnerID      uuid.UUID
	PlaceID      uuid.UUID
	ProposedMenu []place.MenuItem
	Note         string
}

// ReportReviewInput contains the input for filing a moderation report
type ReportReviewInput struct {
	ReporterID uuid.UUID
	ReviewID   uuid.UUID
	Reason     string
}

// ModerationDecisionInput identifies the submission a staff member rules on
type ModerationDecisionInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
}
