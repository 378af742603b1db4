package place

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
)

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

// MockTranslationRepository is a mock implementation of place.TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) FindCategory(ctx context.Context, korean string) (*place.CategoryTranslation, error) {
	args := m.Called(ctx, korean)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.CategoryTranslation), args.Error(1)
}

func (m *MockTranslationRepository) SaveCategory(ctx context.Context, t *place.CategoryTranslation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranslationRepository) FindRegion(ctx context.Context, english string) (*place.RegionTranslation, error) {
	args := m.Called(ctx, english)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.RegionTranslation), args.Error(1)
}

func (m *MockTranslationRepository) SaveRegion(ctx context.Context, t *place.RegionTranslation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockAuditRepository is a mock implementation of place.AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AppendPlaceLookup(ctx context.Context, log *place.PlaceLookupLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditRepository) AppendCategoryLookup(ctx context.Context, log *place.CategoryLookupLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditRepository) AppendRegionLookup(ctx context.Context, log *place.RegionLookupLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
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

// MockEnricher is a mock implementation of Enricher
type MockEnricher struct {
	mock.Mock
}

func (m *MockEnricher) Fetch(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockTranslator is a mock implementation of Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}
