package place

import (
	"context"

	"github.com/google/uuid"
)

// PlaceRepository defines the persistence contract for the place cache
type PlaceRepository interface {
	// Create inserts a new cache entry. Returns shared.ErrAlreadyExists
	// when the (name, address, language) key is already present, which
	// callers resolve by re-reading the winner's row.
	Create(ctx context.Context, p *PlaceInfo) error

	// Update persists an administrative overwrite
	Update(ctx context.Context, p *PlaceInfo) error

	// FindByID finds a cache entry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PlaceInfo, error)

	// FindByKey finds a cache entry by its (name, address, language) key
	FindByKey(ctx context.Context, name, address, language string) (*PlaceInfo, error)
}

// TranslationRepository defines the persistence contract for the
// translation memo tables
type TranslationRepository interface {
	// FindCategory looks up the memoized English rendering of a Korean term
	FindCategory(ctx context.Context, korean string) (*CategoryTranslation, error)

	// SaveCategory stores a memo pair; duplicate sources return the
	// stored entry untouched.
	SaveCategory(ctx context.Context, t *CategoryTranslation) error

	// FindRegion looks up the memoized Korean rendering of an English name
	FindRegion(ctx context.Context, english string) (*RegionTranslation, error)

	// SaveRegion stores a memo pair
	SaveRegion(ctx context.Context, t *RegionTranslation) error
}

// AuditRepository appends lookup logs. Failures to log never fail the
// lookup itself; implementations report errors for observability only.
type AuditRepository interface {
	AppendPlaceLookup(ctx context.Context, log *PlaceLookupLog) error
	AppendCategoryLookup(ctx context.Context, log *CategoryLookupLog) error
	AppendRegionLookup(ctx context.Context, log *RegionLookupLog) error
}
