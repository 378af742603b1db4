package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
)

// MockCategoryRepository is a mock implementation of collection.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *collection.UserCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *collection.UserCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.UserCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.UserCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*collection.UserCategory, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.UserCategory), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

// MockSavedPlaceRepository is a mock implementation of collection.SavedPlaceRepository
type MockSavedPlaceRepository struct {
	mock.Mock
}

func (m *MockSavedPlaceRepository) Create(ctx context.Context, s *collection.SavedPlace) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSavedPlaceRepository) Update(ctx context.Context, s *collection.SavedPlace) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSavedPlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSavedPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.SavedPlace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.SavedPlace), args.Error(1)
}

func (m *MockSavedPlaceRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*collection.SavedPlace, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.SavedPlace), args.Error(1)
}

func (m *MockSavedPlaceRepository) ExistsInCategory(ctx context.Context, categoryID, placeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID, placeID)
	return args.Bool(0), args.Error(1)
}

// MockReviewRepository is a mock implementation of collection.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *collection.PlaceReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *collection.PlaceReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.PlaceReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.PlaceReview), args.Error(1)
}

func (m *MockReviewRepository) FindByPlace(ctx context.Context, placeID uuid.UUID) ([]*collection.PlaceReview, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.PlaceReview), args.Error(1)
}

func (m *MockReviewRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*collection.PlaceReview, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.PlaceReview), args.Error(1)
}

// MockModerationRepository is a mock implementation of collection.ModerationRepository
type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) CreateChangeRequest(ctx context.Context, c *collection.ChangeRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockModerationRepository) UpdateChangeRequest(ctx context.Context, c *collection.ChangeRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockModerationRepository) FindChangeRequestByID(ctx context.Context, id uuid.UUID) (*collection.ChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.ChangeRequest), args.Error(1)
}

func (m *MockModerationRepository) FindPendingChangeRequests(ctx context.Context) ([]*collection.ChangeRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.ChangeRequest), args.Error(1)
}

func (m *MockModerationRepository) CreateReport(ctx context.Context, r *collection.ReviewReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockModerationRepository) UpdateReport(ctx context.Context, r *collection.ReviewReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockModerationRepository) FindReportByID(ctx context.Context, id uuid.UUID) (*collection.ReviewReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.ReviewReport), args.Error(1)
}

func (m *MockModerationRepository) FindPendingReports(ctx context.Context) ([]*collection.ReviewReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.ReviewReport), args.Error(1)
}

// MockPlaceRepository is a mock implementation of place.PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) Create(ctx context.Context, p *place.PlaceInfo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaceRepository) Update(ctx context.Context, p *place.PlaceInfo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*place.PlaceInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.PlaceInfo), args.Error(1)
}

func (m *MockPlaceRepository) FindByKey(ctx context.Context, name, address, language string) (*place.PlaceInfo, error) {
	args := m.Called(ctx, name, address, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.PlaceInfo), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
