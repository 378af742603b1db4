package place

import (
	"strings"

	"github.com/koreat/backend/internal/domain/shared"
)

// CategoryTranslation memoizes a Korean category term and its English
// rendering. Acts as a second-level cache in front of the translation
// service; entries never expire.
type CategoryTranslation struct {
	shared.BaseEntity
	Korean  string
	English string
}

// NewCategoryTranslation creates a memo entry for a category term
func NewCategoryTranslation(korean, english string) (*CategoryTranslation, error) {
	korean = strings.TrimSpace(korean)
	english = strings.TrimSpace(english)
	if korean == "" || english == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Both source and translated terms are required")
	}
	return &CategoryTranslation{
		BaseEntity: shared.NewBaseEntity(),
		Korean:     korean,
		English:    english,
	}, nil
}

// RegionTranslation memoizes an English region name and its Korean
// rendering.
type RegionTranslation struct {
	shared.BaseEntity
	English string
	Korean  string
}

// NewRegionTranslation creates a memo entry for a region name
func NewRegionTranslation(english, korean string) (*RegionTranslation, error) {
	english = strings.TrimSpace(english)
	korean = strings.TrimSpace(korean)
	if english == "" || korean == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Both source and translated terms are required")
	}
	return &RegionTranslation{
		BaseEntity: shared.NewBaseEntity(),
		English:    english,
		Korean:     korean,
	}, nil
}

// SeedCategoryPairs is the fixed category vocabulary installed by the
// seed operation. The left side is the Korean term as it appears in
// enrichment output, the right side the canonical English category.
var SeedCategoryPairs = map[string]string{
	"한식":    "Korean food",
	"중식":    "Chinese food",
	"일식":    "Japanese food",
	"양식":    "Western food",
	"분식":    "Snack bar",
	"카페":    "Cafe",
	"디저트":   "Dessert",
	"치킨":    "Fried chicken",
	"피자":    "Pizza",
	"버거":    "Burger",
	"고기구이":  "Korean BBQ",
	"해산물":   "Seafood",
	"국밥":    "Rice soup",
	"족발·보쌈": "Braised pork",
	"술집":    "Bar",
	"관광지":   "Tourist attraction",
	"박물관":   "Museum",
	"시장":    "Traditional market",
}
