package collection

import (
	"strings"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// ModerationState is the review state of a user submission
type ModerationState string

const (
	ModerationPending  ModerationState = "pending"
	ModerationApproved ModerationState = "approved"
	ModerationRejected ModerationState = "rejected"
)

// ChangeRequest is a user-proposed replacement of a place's menu/ticket
// field. Approval applies the proposal verbatim over the cached row.
type ChangeRequest struct {
	shared.BaseEntity
	OwnerID      uuid.UUID
	PlaceID      uuid.UUID
	ProposedMenu []place.MenuItem
	Note         string
	State        ModerationState
	ReviewedBy   *uuid.UUID
}

// NewChangeRequest creates a pending change request
func NewChangeRequest(ownerID, placeID uuid.UUID, proposedMenu []place.MenuItem, note string) (*ChangeRequest, error) {
	if ownerID == uuid.Nil || placeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner and place are required")
	}
	if len(proposedMenu) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A change request must propose at least one menu entry")
	}
	return &ChangeRequest{
		BaseEntity:   shared.NewBaseEntity(),
		OwnerID:      ownerID,
		PlaceID:      placeID,
		ProposedMenu: proposedMenu,
		Note:         strings.TrimSpace(note),
		State:        ModerationPending,
	}, nil
}

// Approve marks the request approved by the given reviewer
func (c *ChangeRequest) Approve(reviewerID uuid.UUID) error {
	if c.State != ModerationPending {
		return shared.ErrInvalidState
	}
	c.State = ModerationApproved
	c.ReviewedBy = &reviewerID
	c.Touch()
	return nil
}

// Reject marks the request rejected by the given reviewer
func (c *ChangeRequest) Reject(reviewerID uuid.UUID) error {
	if c.State != ModerationPending {
		return shared.ErrInvalidState
	}
	c.State = ModerationRejected
	c.ReviewedBy = &reviewerID
	c.Touch()
	return nil
}

// ReviewReport is a moderation report filed against a review. Approval
// deletes the underlying review and clears the back-reference.
type ReviewReport struct {
	shared.BaseEntity
	ReporterID uuid.UUID
	ReviewID   *uuid.UUID
	Reason     string
	State      ModerationState
	ReviewedBy *uuid.UUID
}

// NewReviewReport files a pending report against a review
func NewReviewReport(reporterID, reviewID uuid.UUID, reason string) (*ReviewReport, error) {
	if reporterID == uuid.Nil || reviewID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reporter and review are required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "A report needs a reason")
	}
	rid := reviewID
	return &ReviewReport{
		BaseEntity: shared.NewBaseEntity(),
		ReporterID: reporterID,
		ReviewID:   &rid,
		Reason:     reason,
		State:      ModerationPending,
	}, nil
}

// Approve marks the report approved and detaches the review reference
func (r *ReviewReport) Approve(reviewerID uuid.UUID) error {
	if r.State != ModerationPending {
		return shared.ErrInvalidState
	}
	r.State = ModerationApproved
	r.ReviewedBy = &reviewerID
	r.ReviewID = nil
	r.Touch()
	return nil
}

// Reject marks the report rejected, keeping the review in place
func (r *ReviewReport) Reject(reviewerID uuid.UUID) error {
	if r.State != ModerationPending {
		return shared.ErrInvalidState
	}
	r.State = ModerationRejected
	r.ReviewedBy = &reviewerID
	r.Touch()
	return nil
}
