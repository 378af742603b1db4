package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	collectionapp "github.com/koreat/backend/internal/application/collection"
	"github.com/koreat/backend/internal/domain/collection"
)

// CategoryHandler handles bookmark folder HTTP requests
type CategoryHandler struct {
	BaseHandler
	categoryService   *collectionapp.CategoryService
	savedPlaceService *collectionapp.SavedPlaceService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	categoryService *collectionapp.CategoryService,
	savedPlaceService *collectionapp.SavedPlaceService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService:   categoryService,
		savedPlaceService: savedPlaceService,
	}
}

// RegisterRoutes registers folder and bookmark routes on the given group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.PATCH("/:id", h.RenameCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.POST("/:id/places", h.SavePlace)
		categories.GET("/:id/places", h.ListPlaces)
	}

	saved := rg.Group("/saved-places")
	{
		saved.PATCH("/:id", h.MovePlace)
		saved.DELETE("/:id", h.RemovePlace)
	}
}

// CategoryRequest represents the request body for creating or renaming a folder
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// SavePlaceRequest represents the request body for bookmarking a place
type SavePlaceRequest struct {
	PlaceID uuid.UUID `json:"place_id" binding:"required"`
	Alias   string    `json:"alias" binding:"max=100"`
}

// MovePlaceRequest represents the request body for moving a bookmark
type MovePlaceRequest struct {
	TargetCategoryID uuid.UUID `json:"target_category_id" binding:"required"`
}

// CategoryResponse represents a bookmark folder
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newCategoryResponse(category *collection.UserCategory) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

// SavedPlaceResponse represents a bookmarked place
type SavedPlaceResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	PlaceID    uuid.UUID `json:"place_id"`
	Alias      string    `json:"alias,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newSavedPlaceResponse(saved *collection.SavedPlace) SavedPlaceResponse {
	return SavedPlaceResponse{
		ID:         saved.ID,
		CategoryID: saved.CategoryID,
		PlaceID:    saved.PlaceID,
		Alias:      saved.Alias,
		CreatedAt:  saved.CreatedAt,
	}
}

// CreateCategory creates a bookmark folder
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), collectionapp.CreateCategoryInput{
		OwnerID: userID,
		Name:    req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newCategoryResponse(category))
}

// ListCategories lists the authenticated user's folders
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, newCategoryResponse(category))
	}

	h.Success(c, responses)
}

// RenameCategory renames an owned folder
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), collectionapp.RenameCategoryInput{
		OwnerID:    userID,
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCategoryResponse(category))
}

// DeleteCategory deletes an owned folder and its bookmarks
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	err = h.categoryService.DeleteCategory(c.Request.Context(), collectionapp.DeleteCategoryInput{
		OwnerID:    userID,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SavePlace bookmarks a place into an owned folder
func (h *CategoryHandler) SavePlace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req SavePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	saved, err := h.savedPlaceService.SavePlace(c.Request.Context(), collectionapp.SavePlaceInput{
		OwnerID:    userID,
		CategoryID: categoryID,
		PlaceID:    req.PlaceID,
		Alias:      req.Alias,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newSavedPlaceResponse(saved))
}

// ListPlaces lists the bookmarks in an owned folder
func (h *CategoryHandler) ListPlaces(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	saved, err := h.savedPlaceService.ListPlaces(c.Request.Context(), collectionapp.ListPlacesInput{
		OwnerID:    userID,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SavedPlaceResponse, 0, len(saved))
	for _, s := range saved {
		responses = append(responses, newSavedPlaceResponse(s))
	}

	h.Success(c, responses)
}

// MovePlace moves a bookmark into another owned folder
func (h *CategoryHandler) MovePlace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	savedPlaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bookmark ID")
		return
	}

	var req MovePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	saved, err := h.savedPlaceService.MovePlace(c.Request.Context(), collectionapp.MovePlaceInput{
		OwnerID:          userID,
		SavedPlaceID:     savedPlaceID,
		TargetCategoryID: req.TargetCategoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newSavedPlaceResponse(saved))
}

// RemovePlace removes a bookmark
func (h *CategoryHandler) RemovePlace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	savedPlaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bookmark ID")
		return
	}

	err = h.savedPlaceService.RemovePlace(c.Request.Context(), collectionapp.RemovePlaceInput{
		OwnerID:      userID,
		SavedPlaceID: savedPlaceID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
