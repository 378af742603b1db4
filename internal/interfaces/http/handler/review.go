package handler

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	collectionapp "github.com/koreat/backend/internal/application/collection"
	"github.com/koreat/backend/internal/domain/collection"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	BaseHandler
	reviewService *collectionapp.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *collectionapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers review routes on the given group
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("", h.ListMyReviews)
		reviews.PATCH("/:id", h.EditReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}

	rg.GET("/places/:id/reviews", h.ListPlaceReviews)
}

// CreateReviewRequest represents the multipart form fields for a review submission
type CreateReviewRequest struct {
	PlaceID uuid.UUID `form:"place_id" binding:"required"`
	Rating  int       `form:"rating" binding:"required,min=1,max=5"`
	Content string    `form:"content" binding:"required,max=2000"`
}

// EditReviewRequest represents the request body for a review edit
type EditReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"required,max=2000"`
}

// ReviewResponse represents a review
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	PlaceID   uuid.UUID `json:"place_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newReviewResponse(review *collection.PlaceReview) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		PlaceID:   review.PlaceID,
		OwnerID:   review.OwnerID,
		Rating:    review.Rating,
		Content:   review.Content,
		ImageURLs: review.ImageURLs,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// CreateReview files a review with optional image attachments
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	images, err := h.readImages(c)
	if err != nil {
		h.BadRequest(c, "Could not read attached images")
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), collectionapp.CreateReviewInput{
		OwnerID: userID,
		PlaceID: req.PlaceID,
		Rating:  req.Rating,
		Content: req.Content,
		Images:  images,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newReviewResponse(review))
}

// readImages reads image attachments from the multipart form
func (h *ReviewHandler) readImages(c *gin.Context) ([]collectionapp.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// A plain form post without attachments is fine
		return nil, nil
	}

	files := form.File["images"]
	uploads := make([]collectionapp.ImageUpload, 0, len(files))
	for _, header := range files {
		data, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, collectionapp.ImageUpload{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		})
	}
	return uploads, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// ListMyReviews lists the authenticated user's reviews
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviews, err := h.reviewService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, newReviewResponse(review))
	}

	h.Success(c, responses)
}

// ListPlaceReviews lists the reviews filed against a place
func (h *ReviewHandler) ListPlaceReviews(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid place ID")
		return
	}

	reviews, err := h.reviewService.ListByPlace(c.Request.Context(), placeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, newReviewResponse(review))
	}

	h.Success(c, responses)
}

// EditReview changes the rating and content of an owned review
func (h *ReviewHandler) EditReview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var req EditReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.EditReview(c.Request.Context(), collectionapp.EditReviewInput{
		OwnerID:  userID,
		ReviewID: reviewID,
		Rating:   req.Rating,
		Content:  req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReviewResponse(review))
}

// DeleteReview removes an owned review
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	err = h.reviewService.DeleteReview(c.Request.Context(), collectionapp.DeleteReviewInput{
		OwnerID:  userID,
		ReviewID: reviewID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
