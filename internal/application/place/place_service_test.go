package place

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

const validEnrichment = `{"title":"명동교자","category":"한식","menu":[{"name":"칼국수","price":"10000"}],"reviews":["handmade noodles"],"reference_urls":["https://example.com/mdkj"]}`

type placeServiceFixture struct {
	places     *MockPlaceRepository
	audits     *MockAuditRepository
	users      *MockUserRepository
	enricher   *MockEnricher
	translator *MockTranslator
	svc        *PlaceService
}

func newPlaceServiceFixture() *placeServiceFixture {
	f := &placeServiceFixture{
		places:     new(MockPlaceRepository),
		audits:     new(MockAuditRepository),
		users:      new(MockUserRepository),
		enricher:   new(MockEnricher),
		translator: new(MockTranslator),
	}
	f.svc = NewPlaceService(f.places, f.audits, f.users, f.enricher, f.translator, PlaceServiceConfig{
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	}, zap.NewNop())
	return f
}

func cachedPlace(t *testing.T, name, address, lang string) *place.PlaceInfo {
	t.Helper()
	info, err := place.NewPlaceInfo(name, address, lang, place.EnrichmentResult{
		Title:    "명동교자",
		Category: "한식",
	})
	require.NoError(t, err)
	return info
}

func TestPlaceService_GetOrFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips enrichment and logs the hit", func(t *testing.T) {
		f := newPlaceServiceFixture()
		stored := cachedPlace(t, "명동교자", "서울 중구", "ko")
		f.places.On("FindByKey", ctx, "명동교자", "서울 중구", "ko").Return(stored, nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.AnythingOfType("*place.PlaceLookupLog")).Return(nil)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Address: "서울 중구", Language: "ko"})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		f.enricher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)

		log := f.audits.Calls[0].Arguments.Get(1).(*place.PlaceLookupLog)
		assert.True(t, log.CacheHit)
	})

	t.Run("cache miss enriches once and persists", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.AnythingOfType("string")).Return(validEnrichment, nil).Once()
		f.places.On("Create", ctx, mock.AnythingOfType("*place.PlaceInfo")).Return(nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		require.NoError(t, err)
		assert.Equal(t, "명동교자", got.Title)
		assert.Equal(t, "한식", got.Category)
		require.Len(t, got.Menu, 1)
		f.enricher.AssertNumberOfCalls(t, "Fetch", 1)

		log := f.audits.Calls[0].Arguments.Get(1).(*place.PlaceLookupLog)
		assert.False(t, log.CacheHit)
	})

	t.Run("language codes are normalized before keying", func(t *testing.T) {
		f := newPlaceServiceFixture()
		stored := cachedPlace(t, "명동교자", "", "en")
		f.places.On("FindByKey", ctx, "명동교자", "", "en").Return(stored, nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "en-US"})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("missing name or language fails fast", func(t *testing.T) {
		f := newPlaceServiceFixture()

		_, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "", Language: "ko"})
		assert.Error(t, err)

		_, err = f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: ""})
		assert.Error(t, err)

		f.places.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("HTML responses are retried up to the cap", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return("<html>502</html>", nil).Twice()
		f.enricher.On("Fetch", ctx, mock.Anything).Return(validEnrichment, nil).Once()
		f.places.On("Create", ctx, mock.Anything).Return(nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		require.NoError(t, err)
		assert.Equal(t, "명동교자", got.Title)
		f.enricher.AssertNumberOfCalls(t, "Fetch", 3)
	})

	t.Run("persistent HTML responses exhaust retries", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return("<!doctype html><html></html>", nil)

		_, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		assert.ErrorIs(t, err, shared.ErrUpstream)
		f.enricher.AssertNumberOfCalls(t, "Fetch", 3)
		f.places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty payload is not cached and not retried", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return(`{}`, nil)

		_, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		assert.ErrorIs(t, err, shared.ErrUpstream)
		f.enricher.AssertNumberOfCalls(t, "Fetch", 1)
		f.places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("losing the insert race returns the winner's row", func(t *testing.T) {
		f := newPlaceServiceFixture()
		winner := cachedPlace(t, "명동교자", "", "ko")

		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound).Once()
		f.enricher.On("Fetch", ctx, mock.Anything).Return(validEnrichment, nil)
		f.places.On("Create", ctx, mock.Anything).Return(shared.ErrAlreadyExists)
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(winner, nil).Once()
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		require.NoError(t, err)
		assert.Equal(t, winner, got)
	})

	t.Run("audit failures never fail the lookup", func(t *testing.T) {
		f := newPlaceServiceFixture()
		stored := cachedPlace(t, "명동교자", "", "ko")
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(stored, nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(shared.ErrUpstream)

		got, err := f.svc.GetOrFetch(ctx, GetPlaceInput{Name: "명동교자", Language: "ko"})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})
}

func TestPlaceService_GetOrFetchTranslated(t *testing.T) {
	ctx := context.Background()

	t.Run("translates fields before persisting under the display language", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "en").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return(validEnrichment, nil)
		f.translator.On("Translate", ctx, "명동교자", "ko", "en").Return("Myeongdong Kyoja", nil)
		f.translator.On("Translate", ctx, "한식", "ko", "en").Return("Korean food", nil)
		f.translator.On("Translate", ctx, "칼국수", "ko", "en").Return("Kalguksu", nil)
		f.translator.On("Translate", ctx, "handmade noodles", "ko", "en").Return("handmade noodles", nil)
		f.places.On("Create", ctx, mock.AnythingOfType("*place.PlaceInfo")).Return(nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetchTranslated(ctx, GetTranslatedPlaceInput{
			Name:            "명동교자",
			Language:        "ko",
			DisplayLanguage: "en",
		})

		require.NoError(t, err)
		assert.Equal(t, "Myeongdong Kyoja", got.Title)
		assert.Equal(t, "Korean food", got.Category)
		assert.Equal(t, "Kalguksu", got.Menu[0].Name)
		assert.Equal(t, "en", got.Language)
	})

	t.Run("same source and display language skips translation", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "ko").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return(validEnrichment, nil)
		f.places.On("Create", ctx, mock.Anything).Return(nil)
		f.audits.On("AppendPlaceLookup", ctx, mock.Anything).Return(nil)

		got, err := f.svc.GetOrFetchTranslated(ctx, GetTranslatedPlaceInput{
			Name:            "명동교자",
			Language:        "ko",
			DisplayLanguage: "ko",
		})

		require.NoError(t, err)
		assert.Equal(t, "명동교자", got.Title)
		f.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("translation failure fails the call and caches nothing", func(t *testing.T) {
		f := newPlaceServiceFixture()
		f.places.On("FindByKey", ctx, "명동교자", "", "en").Return(nil, shared.ErrNotFound)
		f.enricher.On("Fetch", ctx, mock.Anything).Return(validEnrichment, nil)
		f.translator.On("Translate", ctx, mock.Anything, "ko", "en").Return("", shared.ErrUpstream)

		_, err := f.svc.GetOrFetchTranslated(ctx, GetTranslatedPlaceInput{
			Name:            "명동교자",
			Language:        "ko",
			DisplayLanguage: "en",
		})

		assert.ErrorIs(t, err, shared.ErrUpstream)
		f.places.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlaceService_UpdatePlace(t *testing.T) {
	ctx := context.Background()

	staffUser := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewUser("staff@koreat.app", "Staff", "password1")
		require.NoError(t, err)
		user.Staff = true
		return user
	}

	t.Run("staff overwrite replaces the cached fields", func(t *testing.T) {
		f := newPlaceServiceFixture()
		actor := staffUser(t)
		stored := cachedPlace(t, "명동교자", "", "ko")

		f.users.On("FindByID", ctx, actor.ID).Return(actor, nil)
		f.places.On("FindByID", ctx, stored.ID).Return(stored, nil)
		f.places.On("Update", ctx, stored).Return(nil)

		got, err := f.svc.UpdatePlace(ctx, UpdatePlaceInput{
			ActorID: actor.ID,
			PlaceID: stored.ID,
			Title:   "명동교자 본점",
			Menu:    []place.MenuItem{{Name: "만두", Price: "12000"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "명동교자 본점", got.Title)
		assert.Equal(t, "한식", got.Category)
		require.Len(t, got.Menu, 1)
		assert.Equal(t, "만두", got.Menu[0].Name)
	})

	t.Run("non-staff actor is forbidden", func(t *testing.T) {
		f := newPlaceServiceFixture()
		actor, err := identity.NewUser("user@koreat.app", "User", "password1")
		require.NoError(t, err)
		stored := cachedPlace(t, "명동교자", "", "ko")

		f.users.On("FindByID", ctx, actor.ID).Return(actor, nil)

		_, err = f.svc.UpdatePlace(ctx, UpdatePlaceInput{ActorID: actor.ID, PlaceID: stored.ID})

		assert.ErrorIs(t, err, shared.ErrForbidden)
		f.places.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
