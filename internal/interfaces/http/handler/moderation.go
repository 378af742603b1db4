package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	collectionapp "github.com/koreat/backend/internal/application/collection"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/interfaces/http/middleware"
)

// ModerationHandler handles change request and report HTTP requests
type ModerationHandler struct {
	BaseHandler
	moderationService *collectionapp.ModerationService
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(moderationService *collectionapp.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
	}
}

// RegisterRoutes registers submission and moderation routes on the given group
func (h *ModerationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/change-requests", h.SubmitChangeRequest)
	rg.POST("/reports", h.ReportReview)

	moderation := rg.Group("/moderation", middleware.RequireCapability(string(identity.CapModerate)))
	{
		moderation.GET("/change-requests", h.ListChangeRequests)
		moderation.POST("/change-requests/:id/approve", h.ApproveChangeRequest)
		moderation.POST("/change-requests/:id/reject", h.RejectChangeRequest)
		moderation.GET("/reports", h.ListReports)
		moderation.POST("/reports/:id/approve", h.ApproveReport)
		moderation.POST("/reports/:id/reject", h.RejectReport)
	}
}

// SubmitChangeRequestRequest represents the request body for proposing a menu change
type SubmitChangeRequestRequest struct {
	PlaceID uuid.UUID        `json:"place_id" binding:"required"`
	Menu    []place.MenuItem `json:"menu" binding:"required,min=1"`
	Note    string           `json:"note" binding:"max=1000"`
}

// ReportReviewRequest represents the request body for reporting a review
type ReportReviewRequest struct {
	ReviewID uuid.UUID `json:"review_id" binding:"required"`
	Reason   string    `json:"reason" binding:"required,max=1000"`
}

// ChangeRequestResponse represents a menu change request
type ChangeRequestResponse struct {
	ID           uuid.UUID        `json:"id"`
	PlaceID      uuid.UUID        `json:"place_id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	ProposedMenu []place.MenuItem `json:"proposed_menu"`
	Note         string           `json:"note,omitempty"`
	State        string           `json:"state"`
	ReviewedBy   *uuid.UUID       `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func newChangeRequestResponse(request *collection.ChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:           request.ID,
		PlaceID:      request.PlaceID,
		OwnerID:      request.OwnerID,
		ProposedMenu: request.ProposedMenu,
		Note:         request.Note,
		State:        string(request.State),
		ReviewedBy:   request.ReviewedBy,
		CreatedAt:    request.CreatedAt,
	}
}

// ReportResponse represents a review report
type ReportResponse struct {
	ID         uuid.UUID  `json:"id"`
	ReviewID   *uuid.UUID `json:"review_id,omitempty"`
	ReporterID uuid.UUID  `json:"reporter_id"`
	Reason     string     `json:"reason"`
	State      string     `json:"state"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func newReportResponse(report *collection.ReviewReport) ReportResponse {
	return ReportResponse{
		ID:         report.ID,
		ReviewID:   report.ReviewID,
		ReporterID: report.ReporterID,
		Reason:     report.Reason,
		State:      string(report.State),
		ReviewedBy: report.ReviewedBy,
		CreatedAt:  report.CreatedAt,
	}
}

// SubmitChangeRequest files a menu change proposal for staff review
func (h *ModerationHandler) SubmitChangeRequest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SubmitChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.moderationService.SubmitChangeRequest(c.Request.Context(), collectionapp.SubmitChangeRequestInput{
		OwnerID:      userID,
		PlaceID:      req.PlaceID,
		ProposedMenu: req.Menu,
		Note:         req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newChangeRequestResponse(request))
}

// ReportReview files a report against a review for staff review
func (h *ModerationHandler) ReportReview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.moderationService.ReportReview(c.Request.Context(), collectionapp.ReportReviewInput{
		ReporterID: userID,
		ReviewID:   req.ReviewID,
		Reason:     req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newReportResponse(report))
}

// ListChangeRequests lists pending change requests
func (h *ModerationHandler) ListChangeRequests(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requests, err := h.moderationService.ListPendingChangeRequests(c.Request.Context(), collectionapp.ModerationDecisionInput{
		ActorID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ChangeRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, newChangeRequestResponse(request))
	}

	h.Success(c, responses)
}

// ApproveChangeRequest applies a pending change request to its place
func (h *ModerationHandler) ApproveChangeRequest(c *gin.Context) {
	h.decideChangeRequest(c, h.moderationService.ApproveChangeRequest)
}

// RejectChangeRequest declines a pending change request
func (h *ModerationHandler) RejectChangeRequest(c *gin.Context) {
	h.decideChangeRequest(c, h.moderationService.RejectChangeRequest)
}

func (h *ModerationHandler) decideChangeRequest(
	c *gin.Context,
	decide func(ctx context.Context, input collectionapp.ModerationDecisionInput) (*collection.ChangeRequest, error),
) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid change request ID")
		return
	}

	request, err := decide(c.Request.Context(), collectionapp.ModerationDecisionInput{
		ActorID:  userID,
		TargetID: requestID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newChangeRequestResponse(request))
}

// ListReports lists pending review reports
func (h *ModerationHandler) ListReports(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reports, err := h.moderationService.ListPendingReports(c.Request.Context(), collectionapp.ModerationDecisionInput{
		ActorID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, newReportResponse(report))
	}

	h.Success(c, responses)
}

// ApproveReport upholds a report and removes the reviewed content
func (h *ModerationHandler) ApproveReport(c *gin.Context) {
	h.decideReport(c, h.moderationService.ApproveReport)
}

// RejectReport declines a report and keeps the review
func (h *ModerationHandler) RejectReport(c *gin.Context) {
	h.decideReport(c, h.moderationService.RejectReport)
}

func (h *ModerationHandler) decideReport(
	c *gin.Context,
	decide func(ctx context.Context, input collectionapp.ModerationDecisionInput) (*collection.ReviewReport, error),
) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := decide(c.Request.Context(), collectionapp.ModerationDecisionInput{
		ActorID:  userID,
		TargetID: reportID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newReportResponse(report))
}
