package collection

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

type moderationFixture struct {
	moderation *MockModerationRepository
	reviews    *MockReviewRepository
	places     *MockPlaceRepository
	users      *MockUserRepository
	svc        *ModerationService

	staff  *identity.User
	member *identity.User
	info   *place.PlaceInfo
}

func newModerationFixture(t *testing.T) *moderationFixture {
	t.Helper()
	f := &moderationFixture{
		moderation: new(MockModerationRepository),
		reviews:    new(MockReviewRepository),
		places:     new(MockPlaceRepository),
		users:      new(MockUserRepository),
	}
	f.svc = NewModerationService(f.moderation, f.reviews, f.places, f.users, zap.NewNop())

	var err error
	f.staff, err = identity.NewUser("staff@koreat.app", "Staff", "password1")
	require.NoError(t, err)
	f.staff.Staff = true
	f.member, err = identity.NewUser("member@koreat.app", "Member", "password1")
	require.NoError(t, err)
	f.info, err = place.NewPlaceInfo("명동교자", "", "ko", place.EnrichmentResult{
		Title: "명동교자",
		Menu:  []place.MenuItem{{Name: "칼국수", Price: "10000"}},
	})
	require.NoError(t, err)
	return f
}

func TestModerationService_ChangeRequests(t *testing.T) {
	ctx := context.Background()

	proposed := []place.MenuItem{{Name: "칼국수", Price: "11000"}, {Name: "만두", Price: "12000"}}

	t.Run("submit files a pending request", func(t *testing.T) {
		f := newModerationFixture(t)
		f.places.On("FindByID", ctx, f.info.ID).Return(f.info, nil)
		f.moderation.On("CreateChangeRequest", ctx, mock.AnythingOfType("*collection.ChangeRequest")).Return(nil)

		got, err := f.svc.SubmitChangeRequest(ctx, SubmitChangeRequestInput{
			OwnerID:      f.member.ID,
			PlaceID:      f.info.ID,
			ProposedMenu: proposed,
			Note:         "가격이 올랐어요",
		})

		require.NoError(t, err)
		assert.Equal(t, collection.ModerationPending, got.State)
	})

	t.Run("staff approval applies the menu verbatim", func(t *testing.T) {
		f := newModerationFixture(t)
		request, err := collection.NewChangeRequest(f.member.ID, f.info.ID, proposed, "")
		require.NoError(t, err)

		f.users.On("FindByID", ctx, f.staff.ID).Return(f.staff, nil)
		f.moderation.On("FindChangeRequestByID", ctx, request.ID).Return(request, nil)
		f.places.On("FindByID", ctx, f.info.ID).Return(f.info, nil)
		f.places.On("Update", ctx, f.info).Return(nil)
		f.moderation.On("UpdateChangeRequest", ctx, request).Return(nil)

		got, err := f.svc.ApproveChangeRequest(ctx, ModerationDecisionInput{ActorID: f.staff.ID, TargetID: request.ID})

		require.NoError(t, err)
		assert.Equal(t, collection.ModerationApproved, got.State)
		assert.Equal(t, proposed, f.info.Menu)
		require.NotNil(t, got.ReviewedBy)
		assert.Equal(t, f.staff.ID, *got.ReviewedBy)
	})

	t.Run("non-staff approval is forbidden", func(t *testing.T) {
		f := newModerationFixture(t)
		request, err := collection.NewChangeRequest(f.member.ID, f.info.ID, proposed, "")
		require.NoError(t, err)

		f.users.On("FindByID", ctx, f.member.ID).Return(f.member, nil)

		_, err = f.svc.ApproveChangeRequest(ctx, ModerationDecisionInput{ActorID: f.member.ID, TargetID: request.ID})

		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("a decided request cannot be decided again", func(t *testing.T) {
		f := newModerationFixture(t)
		request, err := collection.NewChangeRequest(f.member.ID, f.info.ID, proposed, "")
		require.NoError(t, err)
		require.NoError(t, request.Reject(f.staff.ID))

		f.users.On("FindByID", ctx, f.staff.ID).Return(f.staff, nil)
		f.moderation.On("FindChangeRequestByID", ctx, request.ID).Return(request, nil)

		_, err = f.svc.ApproveChangeRequest(ctx, ModerationDecisionInput{ActorID: f.staff.ID, TargetID: request.ID})

		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("rejection leaves the place untouched", func(t *testing.T) {
		f := newModerationFixture(t)
		request, err := collection.NewChangeRequest(f.member.ID, f.info.ID, proposed, "")
		require.NoError(t, err)
		originalMenu := append([]place.MenuItem(nil), f.info.Menu...)

		f.users.On("FindByID", ctx, f.staff.ID).Return(f.staff, nil)
		f.moderation.On("FindChangeRequestByID", ctx, request.ID).Return(request, nil)
		f.moderation.On("UpdateChangeRequest", ctx, request).Return(nil)

		got, err := f.svc.RejectChangeRequest(ctx, ModerationDecisionInput{ActorID: f.staff.ID, TargetID: request.ID})

		require.NoError(t, err)
		assert.Equal(t, collection.ModerationRejected, got.State)
		assert.Equal(t, originalMenu, f.info.Menu)
		f.places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestModerationService_Reports(t *testing.T) {
	ctx := context.Background()

	t.Run("approval deletes the review and detaches the reference", func(t *testing.T) {
		f := newModerationFixture(t)
		review, err := collection.NewPlaceReview(f.member.ID, f.info.ID, 1, "spam", nil)
		require.NoError(t, err)
		report, err := collection.NewReviewReport(uuid.New(), review.ID, "abusive content")
		require.NoError(t, err)

		f.users.On("FindByID", ctx, f.staff.ID).Return(f.staff, nil)
		f.moderation.On("FindReportByID", ctx, report.ID).Return(report, nil)
		f.reviews.On("Delete", ctx, review.ID).Return(nil)
		f.moderation.On("UpdateReport", ctx, report).Return(nil)

		got, err := f.svc.ApproveReport(ctx, ModerationDecisionInput{ActorID: f.staff.ID, TargetID: report.ID})

		require.NoError(t, err)
		assert.Equal(t, collection.ModerationApproved, got.State)
		assert.Nil(t, got.ReviewID)
		f.reviews.AssertExpectations(t)
	})

	t.Run("rejection keeps the review", func(t *testing.T) {
		f := newModerationFixture(t)
		review, err := collection.NewPlaceReview(f.member.ID, f.info.ID, 1, "spam", nil)
		require.NoError(t, err)
		report, err := collection.NewReviewReport(uuid.New(), review.ID, "disagree")
		require.NoError(t, err)

		f.users.On("FindByID", ctx, f.staff.ID).Return(f.staff, nil)
		f.moderation.On("FindReportByID", ctx, report.ID).Return(report, nil)
		f.moderation.On("UpdateReport", ctx, report).Return(nil)

		got, err := f.svc.RejectReport(ctx, ModerationDecisionInput{ActorID: f.staff.ID, TargetID: report.ID})

		require.NoError(t, err)
		assert.Equal(t, collection.ModerationRejected, got.State)
		require.NotNil(t, got.ReviewID)
		f.reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("non-staff cannot read the queue", func(t *testing.T) {
		f := newModerationFixture(t)
		f.users.On("FindByID", ctx, f.member.ID).Return(f.member, nil)

		_, err := f.svc.ListPendingReports(ctx, ModerationDecisionInput{ActorID: f.member.ID})

		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.moderation.AssertNotCalled(t, "FindPendingReports", mock.Anything)
	})

	t.Run("reporting an unknown review is not found", func(t *testing.T) {
		f := newModerationFixture(t)
		missing := uuid.New()
		f.reviews.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := f.svc.ReportReview(ctx, ReportReviewInput{
			ReporterID: f.member.ID,
			ReviewID:   missing,
			Reason:     "spam",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
