package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	placeapp "github.com/koreat/backend/internal/application/place"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/interfaces/http/middleware"
)

// PlaceHandler handles place lookup and translation HTTP requests
type PlaceHandler struct {
	BaseHandler
	placeService       *placeapp.PlaceService
	translationService *placeapp.TranslationService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *placeapp.PlaceService, translationService *placeapp.TranslationService) *PlaceHandler {
	return &PlaceHandler{
		placeService:       placeService,
		translationService: translationService,
	}
}

// RegisterRoutes registers place and translation routes on the given group
func (h *PlaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	places := rg.Group("/places")
	{
		places.GET("", h.GetPlace)
		places.GET("/translated", h.GetTranslatedPlace)
		places.PUT("/:id", middleware.RequireCapability(string(identity.CapManagePlaces)), h.UpdatePlace)
	}

	translations := rg.Group("/translations")
	{
		translations.GET("/category", h.TranslateCategory)
		translations.GET("/region", h.TranslateRegion)
		translations.POST("/categories/seed", middleware.RequireCapability(string(identity.CapManagePlaces)), h.SeedCategories)
	}
}

// GetPlaceRequest represents the query parameters for a place lookup
type GetPlaceRequest struct {
	Name     string `form:"name" binding:"required"`
	Address  string `form:"address"`
	Language string `form:"lang" binding:"required"`
}

// GetTranslatedPlaceRequest adds the display language to a place lookup
type GetTranslatedPlaceRequest struct {
	Name            string `form:"name" binding:"required"`
	Address         string `form:"address"`
	Language        string `form:"lang" binding:"required"`
	DisplayLanguage string `form:"display_lang" binding:"required"`
}

// UpdatePlaceRequest represents the request body for the administrative overwrite
type UpdatePlaceRequest struct {
	Title    string           `json:"title"`
	Category string           `json:"category"`
	Menu     []place.MenuItem `json:"menu"`
	Reviews  []string         `json:"reviews"`
}

// PlaceResponse represents a cached place entry
type PlaceResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address,omitempty"`
	Language      string           `json:"language"`
	Title         string           `json:"title"`
	Category      string           `json:"category,omitempty"`
	Menu          []place.MenuItem `json:"menu"`
	Reviews       []string         `json:"reviews"`
	ReferenceURLs []string         `json:"reference_urls,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func newPlaceResponse(info *place.PlaceInfo) PlaceResponse {
	return PlaceResponse{
		ID:            info.ID,
		Name:          info.Name,
		Address:       info.Address,
		Language:      info.Language,
		Title:         info.Title,
		Category:      info.Category,
		Menu:          info.Menu,
		Reviews:       info.Reviews,
		ReferenceURLs: info.ReferenceURLs,
		CreatedAt:     info.CreatedAt,
		UpdatedAt:     info.UpdatedAt,
	}
}

// TranslationResponse represents a memoized term rendering
type TranslationResponse struct {
	Source     string `json:"source"`
	Translated string `json:"translated"`
	CacheHit   bool   `json:"cache_hit"`
}

// GetPlace returns the cached entry for a place, fetching it on a miss
func (h *PlaceHandler) GetPlace(c *gin.Context) {
	var req GetPlaceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Name and language are required")
		return
	}

	info, err := h.placeService.GetOrFetch(c.Request.Context(), placeapp.GetPlaceInput{
		Name:     req.Name,
		Address:  req.Address,
		Language: req.Language,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newPlaceResponse(info))
}

// GetTranslatedPlace returns the cached entry rendered into a display language
func (h *PlaceHandler) GetTranslatedPlace(c *gin.Context) {
	var req GetTranslatedPlaceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Name, language and display language are required")
		return
	}

	info, err := h.placeService.GetOrFetchTranslated(c.Request.Context(), placeapp.GetTranslatedPlaceInput{
		Name:            req.Name,
		Address:         req.Address,
		Language:        req.Language,
		DisplayLanguage: req.DisplayLanguage,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newPlaceResponse(info))
}

// UpdatePlace overwrites fields of a cached entry
func (h *PlaceHandler) UpdatePlace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid place ID")
		return
	}

	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.placeService.UpdatePlace(c.Request.Context(), placeapp.UpdatePlaceInput{
		ActorID:  userID,
		PlaceID:  placeID,
		Title:    req.Title,
		Category: req.Category,
		Menu:     req.Menu,
		Reviews:  req.Reviews,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newPlaceResponse(info))
}

// TranslateCategory renders a Korean category term into English
func (h *PlaceHandler) TranslateCategory(c *gin.Context) {
	korean := c.Query("korean")
	if korean == "" {
		h.BadRequest(c, "Query parameter korean is required")
		return
	}

	result, err := h.translationService.TranslateCategory(c.Request.Context(), placeapp.TranslateCategoryInput{
		Korean: korean,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TranslationResponse{
		Source:     result.Source,
		Translated: result.Translated,
		CacheHit:   result.CacheHit,
	})
}

// TranslateRegion renders an English region name into Korean
func (h *PlaceHandler) TranslateRegion(c *gin.Context) {
	english := c.Query("english")
	if english == "" {
		h.BadRequest(c, "Query parameter english is required")
		return
	}

	result, err := h.translationService.TranslateRegion(c.Request.Context(), placeapp.TranslateRegionInput{
		English: english,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TranslationResponse{
		Source:     result.Source,
		Translated: result.Translated,
		CacheHit:   result.CacheHit,
	})
}

// SeedCategories installs the fixed category vocabulary
func (h *PlaceHandler) SeedCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.translationService.SeedCategories(c.Request.Context(), placeapp.SeedCategoriesInput{
		ActorID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"installed": result.Installed,
	})
}
