package collection

import (
	"strings"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/shared"
)

// UserCategory is a user-owned folder of saved places.
// Names are unique per owner; every operation is scoped by the owner.
type UserCategory struct {
	shared.BaseEntity
	OwnerID uuid.UUID
	Name    string
}

// NewUserCategory creates a folder for the given owner
func NewUserCategory(ownerID uuid.UUID, name string) (*UserCategory, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner is required")
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &UserCategory{
		BaseEntity: shared.NewBaseEntity(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(name),
	}, nil
}

// Rename changes the folder name
func (c *UserCategory) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Touch()
	return nil
}

// OwnedBy reports whether the folder belongs to the given user
func (c *UserCategory) OwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Category name cannot exceed 100 characters")
	}
	return nil
}

// SavedPlace is a bookmark of a cached place inside a folder.
// Unique on (category, place); moving into a folder that already holds
// the place is a conflict, never a silent overwrite.
type SavedPlace struct {
	shared.BaseEntity
	OwnerID    uuid.UUID
	CategoryID uuid.UUID
	PlaceID    uuid.UUID
	Alias      string
}

// NewSavedPlace bookmarks a place into a folder
func NewSavedPlace(ownerID, categoryID, placeID uuid.UUID, alias string) (*SavedPlace, error) {
	if ownerID == uuid.Nil || categoryID == uuid.Nil || placeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner, category and place are required")
	}
	return &SavedPlace{
		BaseEntity: shared.NewBaseEntity(),
		OwnerID:    ownerID,
		CategoryID: categoryID,
		PlaceID:    placeID,
		Alias:      strings.TrimSpace(alias),
	}, nil
}

// MoveTo reassigns the bookmark to another folder
func (s *SavedPlace) MoveTo(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Target category is required")
	}
	s.CategoryID = categoryID
	s.Touch()
	return nil
}

// OwnedBy reports whether the bookmark belongs to the given user
func (s *SavedPlace) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
