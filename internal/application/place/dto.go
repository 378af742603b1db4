package place

import (
	"github.com/google/uuid"

	"github.com/koreat/backend/internal/domain/place"
)

// GetPlaceInput contains the input for a cache lookup
type GetPlaceInput struct {
	Name     string
	Address  string
	Language string
}

// GetTranslatedPlaceInput additionally names the display language the
// cached fields are rendered into
type GetTranslatedPlaceInput struct {
	Name            string
	Address         string
	Language        string
	DisplayLanguage string
}

// UpdatePlaceInput contains the input for the administrative overwrite.
// Empty title/category and nil menu/reviews leave the field untouched.
type UpdatePlaceInput struct {
	ActorID  uuid.UUID
	PlaceID  uuid.UUID
	Title    string
	Category string
	Menu     []place.MenuItem
	Reviews  []string
}

// TranslateCategoryInput contains the Korean category term to render
type TranslateCategoryInput struct {
	Korean string
}

// TranslateRegionInput contains the English region name to render
type TranslateRegionInput struct {
	English string
}

// TranslationResult carries a memoized or freshly fetched rendering
type TranslationResult struct {
	Source     string
	Translated string
	CacheHit   bool
}

// SeedCategoriesInput contains the input for installing the fixed
// category vocabulary
type SeedCategoriesInput struct {
	ActorID uuid.UUID
}

// SeedCategoriesResult reports how many pairs were installed
type SeedCategoriesResult struct {
	Installed int
}
