package collection

import (
	"context"

	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// ModerationService handles user-submitted change requests and review
// reports plus the staff decisions on them.
type ModerationService struct {
	moderationRepo collection.ModerationRepository
	reviewRepo     collection.ReviewRepository
	placeRepo      place.PlaceRepository
	userRepo       identity.UserRepository
	logger         *zap.Logger
}

// NewModerationService creates a new moderation service
func NewModerationService(
	moderationRepo collection.ModerationRepository,
	reviewRepo collection.ReviewRepository,
	placeRepo place.PlaceRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ModerationService {
	return &ModerationService{
		moderationRepo: moderationRepo,
		reviewRepo:     reviewRepo,
		placeRepo:      placeRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// SubmitChangeRequest files a proposed menu replacement for a place
func (s *ModerationService) SubmitChangeRequest(ctx context.Context, input SubmitChangeRequestInput) (*collection.ChangeRequest, error) {
	if _, err := s.placeRepo.FindByID(ctx, input.PlaceID); err != nil {
		return nil, shared.ErrNotFound
	}

	request, err := collection.NewChangeRequest(input.OwnerID, input.PlaceID, input.ProposedMenu, input.Note)
	if err != nil {
		return nil, err
	}

	if err := s.moderationRepo.CreateChangeRequest(ctx, request); err != nil {
		s.logger.Error("Failed to create change request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit change request")
	}

	s.logger.Info("Change request submitted",
		zap.String("request_id", request.ID.String()),
		zap.String("place_id", input.PlaceID.String()))

	return request, nil
}

// ApproveChangeRequest applies the proposal verbatim over the cached
// place's menu. Requires the moderation capability.
func (s *ModerationService) ApproveChangeRequest(ctx context.Context, input ModerationDecisionInput) (*collection.ChangeRequest, error) {
	actor, err := s.moderator(ctx, input)
	if err != nil {
		return nil, err
	}

	request, err := s.moderationRepo.FindChangeRequestByID(ctx, input.TargetID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := request.Approve(actor.ID); err != nil {
		return nil, err
	}

	info, err := s.placeRepo.FindByID(ctx, request.PlaceID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	info.ReplaceMenu(request.ProposedMenu)

	if err := s.placeRepo.Update(ctx, info); err != nil {
		s.logger.Error("Failed to apply change request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to apply change request")
	}

	if err := s.moderationRepo.UpdateChangeRequest(ctx, request); err != nil {
		s.logger.Error("Failed to persist change request decision", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record decision")
	}

	s.logger.Info("Change request approved",
		zap.String("request_id", request.ID.String()),
		zap.String("reviewer_id", actor.ID.String()))

	return request, nil
}

// RejectChangeRequest declines the proposal, leaving the place untouched
func (s *ModerationService) RejectChangeRequest(ctx context.Context, input ModerationDecisionInput) (*collection.ChangeRequest, error) {
	actor, err := s.moderator(ctx, input)
	if err != nil {
		return nil, err
	}

	request, err := s.moderationRepo.FindChangeRequestByID(ctx, input.TargetID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := request.Reject(actor.ID); err != nil {
		return nil, err
	}

	if err := s.moderationRepo.UpdateChangeRequest(ctx, request); err != nil {
		s.logger.Error("Failed to persist change request decision", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record decision")
	}

	return request, nil
}

// ReportReview files a moderation report against a review
func (s *ModerationService) ReportReview(ctx context.Context, input ReportReviewInput) (*collection.ReviewReport, error) {
	if _, err := s.reviewRepo.FindByID(ctx, input.ReviewID); err != nil {
		return nil, shared.ErrNotFound
	}

	report, err := collection.NewReviewReport(input.ReporterID, input.ReviewID, input.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.moderationRepo.CreateReport(ctx, report); err != nil {
		s.logger.Error("Failed to create report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit report")
	}

	s.logger.Info("Review reported",
		zap.String("report_id", report.ID.String()),
		zap.String("review_id", input.ReviewID.String()))

	return report, nil
}

// ApproveReport deletes the reported review and detaches the report's
// back-reference. Requires the moderation capability.
func (s *ModerationService) ApproveReport(ctx context.Context, input ModerationDecisionInput) (*collection.ReviewReport, error) {
	actor, err := s.moderator(ctx, input)
	if err != nil {
		return nil, err
	}

	report, err := s.moderationRepo.FindReportByID(ctx, input.TargetID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	// Capture the reference before approval clears it
	reviewID := report.ReviewID

	if err := report.Approve(actor.ID); err != nil {
		return nil, err
	}

	if reviewID != nil {
		if err := s.reviewRepo.Delete(ctx, *reviewID); err != nil {
			s.logger.Error("Failed to delete reported review",
				zap.String("review_id", reviewID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to delete reported review")
		}
	}

	if err := s.moderationRepo.UpdateReport(ctx, report); err != nil {
		s.logger.Error("Failed to persist report decision", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record decision")
	}

	s.logger.Info("Report approved, review removed",
		zap.String("report_id", report.ID.String()),
		zap.String("reviewer_id", actor.ID.String()))

	return report, nil
}

// RejectReport declines the report, keeping the review in place
func (s *ModerationService) RejectReport(ctx context.Context, input ModerationDecisionInput) (*collection.ReviewReport, error) {
	actor, err := s.moderator(ctx, input)
	if err != nil {
		return nil, err
	}

	report, err := s.moderationRepo.FindReportByID(ctx, input.TargetID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := report.Reject(actor.ID); err != nil {
		return nil, err
	}

	if err := s.moderationRepo.UpdateReport(ctx, report); err != nil {
		s.logger.Error("Failed to persist report decision", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record decision")
	}

	return report, nil
}

// ListPendingChangeRequests returns the moderation queue of proposals
func (s *ModerationService) ListPendingChangeRequests(ctx context.Context, input ModerationDecisionInput) ([]*collection.ChangeRequest, error) {
	if _, err := s.moderator(ctx, input); err != nil {
		return nil, err
	}

	requests, err := s.moderationRepo.FindPendingChangeRequests(ctx)
	if err != nil {
		s.logger.Error("Failed to list change requests", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list change requests")
	}
	return requests, nil
}

// ListPendingReports returns the moderation queue of reports
func (s *ModerationService) ListPendingReports(ctx context.Context, input ModerationDecisionInput) ([]*collection.ReviewReport, error) {
	if _, err := s.moderator(ctx, input); err != nil {
		return nil, err
	}

	reports, err := s.moderationRepo.FindPendingReports(ctx)
	if err != nil {
		s.logger.Error("Failed to list reports", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reports")
	}
	return reports, nil
}

// moderator loads the acting user and enforces the moderation capability
func (s *ModerationService) moderator(ctx context.Context, input ModerationDecisionInput) (*identity.User, error) {
	actor, err := s.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !actor.Can(identity.CapModerate) {
		s.logger.Warn("Moderation attempt without capability",
			zap.String("actor_id", input.ActorID.String()))
		return nil, shared.ErrForbidden
	}
	return actor, nil
}
