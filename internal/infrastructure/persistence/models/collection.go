package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/place"
)

// UserCategoryModel is the persistence model for user folders
type UserCategoryModel struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_name"`
	Name    string    `gorm:"size:100;not null;uniqueIndex:idx_categories_owner_name"`
}

// TableName returns the table name for UserCategoryModel
func (UserCategoryModel) TableName() string {
	return "user_categories"
}

// UserCategoryModelFromDomain creates a model from a domain folder
func UserCategoryModelFromDomain(c *collection.UserCategory) *UserCategoryModel {
	m := &UserCategoryModel{OwnerID: c.OwnerID, Name: c.Name}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// ToDomain converts the model to a domain folder
func (m *UserCategoryModel) ToDomain() *collection.UserCategory {
	return &collection.UserCategory{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		Name:       m.Name,
	}
}

// SavedPlaceModel is the persistence model for bookmarks
type SavedPlaceModel struct {
	BaseModel
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_places_category_place"`
	PlaceID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_places_category_place"`
	Alias      string    `gorm:"size:255"`
}

// TableName returns the table name for SavedPlaceModel
func (SavedPlaceModel) TableName() string {
	return "saved_places"
}

// SavedPlaceModelFromDomain creates a model from a domain bookmark
func SavedPlaceModelFromDomain(s *collection.SavedPlace) *SavedPlaceModel {
	m := &SavedPlaceModel{
		OwnerID:    s.OwnerID,
		CategoryID: s.CategoryID,
		PlaceID:    s.PlaceID,
		Alias:      s.Alias,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// ToDomain converts the model to a domain bookmark
func (m *SavedPlaceModel) ToDomain() *collection.SavedPlace {
	return &collection.SavedPlace{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		CategoryID: m.CategoryID,
		PlaceID:    m.PlaceID,
		Alias:      m.Alias,
	}
}

// PlaceReviewModel is the persistence model for reviews
type PlaceReviewModel struct {
	BaseModel
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	ImageURLs string    `gorm:"type:text"`
}

// TableName returns the table name for PlaceReviewModel
func (PlaceReviewModel) TableName() string {
	return "place_reviews"
}

// PlaceReviewModelFromDomain creates a model from a domain review
func PlaceReviewModelFromDomain(r *collection.PlaceReview) (*PlaceReviewModel, error) {
	urls, err := json.Marshal(r.ImageURLs)
	if err != nil {
		return nil, err
	}
	m := &PlaceReviewModel{
		OwnerID:   r.OwnerID,
		PlaceID:   r.PlaceID,
		Rating:    r.Rating,
		Content:   r.Content,
		ImageURLs: string(urls),
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m, nil
}

// ToDomain converts the model to a domain review
func (m *PlaceReviewModel) ToDomain() (*collection.PlaceReview, error) {
	r := &collection.PlaceReview{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		PlaceID:    m.PlaceID,
		Rating:     m.Rating,
		Content:    m.Content,
	}
	if m.ImageURLs != "" {
		if err := json.Unmarshal([]byte(m.ImageURLs), &r.ImageURLs); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ChangeRequestModel is the persistence model for menu change requests
type ChangeRequestModel struct {
	BaseModel
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PlaceID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProposedMenu string    `gorm:"type:text;not null"`
	Note         string    `gorm:"type:text"`
	State        string    `gorm:"size:20;not null;index"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for ChangeRequestModel
func (ChangeRequestModel) TableName() string {
	return "change_requests"
}

// ChangeRequestModelFromDomain creates a model from a domain change request
func ChangeRequestModelFromDomain(c *collection.ChangeRequest) (*ChangeRequestModel, error) {
	menu, err := json.Marshal(c.ProposedMenu)
	if err != nil {
		return nil, err
	}
	m := &ChangeRequestModel{
		OwnerID:      c.OwnerID,
		PlaceID:      c.PlaceID,
		ProposedMenu: string(menu),
		Note:         c.Note,
		State:        string(c.State),
		ReviewedBy:   c.ReviewedBy,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m, nil
}

// ToDomain converts the model to a domain change request
func (m *ChangeRequestModel) ToDomain() (*collection.ChangeRequest, error) {
	c := &collection.ChangeRequest{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		PlaceID:    m.PlaceID,
		Note:       m.Note,
		State:      collection.ModerationState(m.State),
		ReviewedBy: m.ReviewedBy,
	}
	if m.ProposedMenu != "" {
		var menu []place.MenuItem
		if err := json.Unmarshal([]byte(m.ProposedMenu), &menu); err != nil {
			return nil, err
		}
		c.ProposedMenu = menu
	}
	return c, nil
}

// ReviewReportModel is the persistence model for review reports
type ReviewReportModel struct {
	BaseModel
	ReporterID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReviewID   *uuid.UUID `gorm:"type:uuid;index"`
	Reason     string     `gorm:"type:text;not null"`
	State      string     `gorm:"size:20;not null;index"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for ReviewReportModel
func (ReviewReportModel) TableName() string {
	return "review_reports"
}

// ReviewReportModelFromDomain creates a model from a domain report
func ReviewReportModelFromDomain(r *collection.ReviewReport) *ReviewReportModel {
	m := &ReviewReportModel{
		ReporterID: r.ReporterID,
		ReviewID:   r.ReviewID,
		Reason:     r.Reason,
		State:      string(r.State),
		ReviewedBy: r.ReviewedBy,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// ToDomain converts the model to a domain report
func (m *ReviewReportModel) ToDomain() *collection.ReviewReport {
	return &collection.ReviewReport{
		BaseEntity: m.BaseModel.ToDomain(),
		ReporterID: m.ReporterID,
		ReviewID:   m.ReviewID,
		Reason:     m.Reason,
		State:      collection.ModerationState(m.State),
		ReviewedBy: m.ReviewedBy,
	}
}
