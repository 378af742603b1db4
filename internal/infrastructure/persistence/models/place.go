package models

import (
	"encoding/json"

	"github.com/koreat/backend/internal/domain/place"
)

// PlaceInfoModel is the persistence model for cached place enrichments.
// Structured fields are stored as JSON text so the model works on both
// postgres and sqlite.
type PlaceInfoModel struct {
	AggregateModel
	Name          string `gorm:"size:255;not null;uniqueIndex:idx_places_key"`
	Address       string `gorm:"size:255;not null;default:'';uniqueIndex:idx_places_key"`
	Language      string `gorm:"size:10;not null;uniqueIndex:idx_places_key"`
	Title         string `gorm:"size:255"`
	Category      string `gorm:"size:100"`
	Menu          string `gorm:"type:text"`
	Reviews       string `gorm:"type:text"`
	ReferenceURLs string `gorm:"type:text"`
}

// TableName returns the table name for PlaceInfoModel
func (PlaceInfoModel) TableName() string {
	return "place_infos"
}

// PlaceInfoModelFromDomain creates a PlaceInfoModel from a domain PlaceInfo
func PlaceInfoModelFromDomain(p *place.PlaceInfo) (*PlaceInfoModel, error) {
	menu, err := json.Marshal(p.Menu)
	if err != nil {
		return nil, err
	}
	reviews, err := json.Marshal(p.Reviews)
	if err != nil {
		return nil, err
	}
	urls, err := json.Marshal(p.ReferenceURLs)
	if err != nil {
		return nil, err
	}

	m := &PlaceInfoModel{
		Name:          p.Name,
		Address:       p.Address,
		Language:      p.Language,
		Title:         p.Title,
		Category:      p.Category,
		Menu:          string(menu),
		Reviews:       string(reviews),
		ReferenceURLs: string(urls),
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m, nil
}

// ToDomain converts PlaceInfoModel to a domain PlaceInfo
func (m *PlaceInfoModel) ToDomain() (*place.PlaceInfo, error) {
	p := &place.PlaceInfo{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		Language:          m.Language,
		Title:             m.Title,
		Category:          m.Category,
	}

	if m.Menu != "" {
		if err := json.Unmarshal([]byte(m.Menu), &p.Menu); err != nil {
			return nil, err
		}
	}
	if m.Reviews != "" {
		if err := json.Unmarshal([]byte(m.Reviews), &p.Reviews); err != nil {
			return nil, err
		}
	}
	if m.ReferenceURLs != "" {
		if err := json.Unmarshal([]byte(m.ReferenceURLs), &p.ReferenceURLs); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// CategoryTranslationModel memoizes category translations
type CategoryTranslationModel struct {
	BaseModel
	Korean  string `gorm:"size:100;not null;uniqueIndex"`
	English string `gorm:"size:100;not null"`
}

// TableName returns the table name for CategoryTranslationModel
func (CategoryTranslationModel) TableName() string {
	return "category_translations"
}

// CategoryTranslationModelFromDomain creates a model from a domain memo entry
func CategoryTranslationModelFromDomain(t *place.CategoryTranslation) *CategoryTranslationModel {
	m := &CategoryTranslationModel{Korean: t.Korean, English: t.English}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// ToDomain converts the model to a domain memo entry
func (m *CategoryTranslationModel) ToDomain() *place.CategoryTranslation {
	return &place.CategoryTranslation{
		BaseEntity: m.BaseModel.ToDomain(),
		Korean:     m.Korean,
		English:    m.English,
	}
}

// RegionTranslationModel memoizes region translations
type RegionTranslationModel struct {
	BaseModel
	English string `gorm:"size:100;not null;uniqueIndex"`
	Korean  string `gorm:"size:100;not null"`
}

// TableName returns the table name for RegionTranslationModel
func (RegionTranslationModel) TableName() string {
	return "region_translations"
}

// RegionTranslationModelFromDomain creates a model from a domain memo entry
func RegionTranslationModelFromDomain(t *place.RegionTranslation) *RegionTranslationModel {
	m := &RegionTranslationModel{English: t.English, Korean: t.Korean}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// ToDomain converts the model to a domain memo entry
func (m *RegionTranslationModel) ToDomain() *place.RegionTranslation {
	return &place.RegionTranslation{
		BaseEntity: m.BaseModel.ToDomain(),
		English:    m.English,
		Korean:     m.Korean,
	}
}

// PlaceLookupLogModel is the append-only lookup log for places
type PlaceLookupLogModel struct {
	BaseModel
	Name     string `gorm:"size:255;not null"`
	Address  string `gorm:"size:255"`
	Language string `gorm:"size:10;not null"`
	CacheHit bool   `gorm:"not null"`
}

// TableName returns the table name for PlaceLookupLogModel
func (PlaceLookupLogModel) TableName() string {
	return "place_lookup_logs"
}

// PlaceLookupLogModelFromDomain creates a model from a domain log entry
func PlaceLookupLogModelFromDomain(l *place.PlaceLookupLog) *PlaceLookupLogModel {
	m := &PlaceLookupLogModel{
		Name:     l.Name,
		Address:  l.Address,
		Language: l.Language,
		CacheHit: l.CacheHit,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// CategoryLookupLogModel is the append-only lookup log for category translations
type CategoryLookupLogModel struct {
	BaseModel
	Korean   string `gorm:"size:100;not null"`
	CacheHit bool   `gorm:"not null"`
}

// TableName returns the table name for CategoryLookupLogModel
func (CategoryLookupLogModel) TableName() string {
	return "category_lookup_logs"
}

// CategoryLookupLogModelFromDomain creates a model from a domain log entry
func CategoryLookupLogModelFromDomain(l *place.CategoryLookupLog) *CategoryLookupLogModel {
	m := &CategoryLookupLogModel{Korean: l.Korean, CacheHit: l.CacheHit}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// RegionLookupLogModel is the append-only lookup log for region translations
type RegionLookupLogModel struct {
	BaseModel
	English  string `gorm:"size:100;not null"`
	CacheHit bool   `gorm:"not null"`
}

// TableName returns the table name for RegionLookupLogModel
func (RegionLookupLogModel) TableName() string {
	return "region_lookup_logs"
}

// RegionLookupLogModelFromDomain creates a model from a domain log entry
func RegionLookupLogModelFromDomain(l *place.RegionLookupLog) *RegionLookupLogModel {
	m := &RegionLookupLogModel{English: l.English, CacheHit: l.CacheHit}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}
