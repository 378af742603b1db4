package place

import "github.com/koreat/backend/internal/domain/shared"

// Lookup logs are append-only; every call is recorded regardless of
// cache hit or miss. They exist for analytics only and carry no
// invariants beyond insert-only.

// PlaceLookupLog records one place lookup
type PlaceLookupLog struct {
	shared.BaseEntity
	Name     string
	Address  string
	Language string
	CacheHit bool
}

// NewPlaceLookupLog creates a lookup record
func NewPlaceLookupLog(name, address, language string, cacheHit bool) *PlaceLookupLog {
	return &PlaceLookupLog{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Language:   language,
		CacheHit:   cacheHit,
	}
}

// CategoryLookupLog records one category translation call
type CategoryLookupLog struct {
	shared.BaseEntity
	Korean   string
	CacheHit bool
}

// NewCategoryLookupLog creates a category lookup record
func NewCategoryLookupLog(korean string, cacheHit bool) *CategoryLookupLog {
	return &CategoryLookupLog{
		BaseEntity: shared.NewBaseEntity(),
		Korean:     korean,
		CacheHit:   cacheHit,
	}
}

// RegionLookupLog records one region translation call
type RegionLookupLog struct {
	shared.BaseEntity
	English  string
	CacheHit bool
}

// NewRegionLookupLog creates a region lookup record
func NewRegionLookupLog(english string, cacheHit bool) *RegionLookupLog {
	return &RegionLookupLog{
		BaseEntity: shared.NewBaseEntity(),
		English:    english,
		CacheHit:   cacheHit,
	}
}
