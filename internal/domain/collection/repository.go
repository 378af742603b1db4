package collection

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository persists user folders
type CategoryRepository interface {
	// Create inserts a folder; duplicate (owner, name) pairs return
	// shared.ErrAlreadyExists.
	Create(ctx context.Context, c *UserCategory) error
	Update(ctx context.Context, c *UserCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*UserCategory, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*UserCategory, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
}

// SavedPlaceRepository persists bookmarks
type SavedPlaceRepository interface {
	// Create inserts a bookmark; duplicate (category, place) pairs
	// return shared.ErrAlreadyExists.
	Create(ctx context.Context, s *SavedPlace) error
	Update(ctx context.Context, s *SavedPlace) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*SavedPlace, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*SavedPlace, error)
	ExistsInCategory(ctx context.Context, categoryID, placeID uuid.UUID) (bool, error)
}

// ReviewRepository persists place reviews
type ReviewRepository interface {
	Create(ctx context.Context, r *PlaceReview) error
	Update(ctx context.Context, r *PlaceReview) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*PlaceReview, error)
	FindByPlace(ctx context.Context, placeID uuid.UUID) ([]*PlaceReview, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PlaceReview, error)
}

// ModerationRepository persists change requests and review reports
type ModerationRepository interface {
	CreateChangeRequest(ctx context.Context, c *ChangeRequest) error
	UpdateChangeRequest(ctx context.Context, c *ChangeRequest) error
	FindChangeRequestByID(ctx context.Context, id uuid.UUID) (*ChangeRequest, error)
	FindPendingChangeRequests(ctx context.Context) ([]*ChangeRequest, error)

	CreateReport(ctx context.Context, r *ReviewReport) error
	UpdateReport(ctx context.Context, r *ReviewReport) error
	FindReportByID(ctx context.Context, id uuid.UUID) (*ReviewReport, error)
	FindPendingReports(ctx context.Context) ([]*ReviewReport, error)
}
