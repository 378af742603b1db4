package place

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// PlaceServiceConfig contains configuration for the enrichment path
type PlaceServiceConfig struct {
	MaxRetries     int           // Attempts for HTML-looking upstream failures
	RetryBaseDelay time.Duration // First backoff delay; doubles per attempt
}

// DefaultPlaceServiceConfig returns default configuration
func DefaultPlaceServiceConfig() PlaceServiceConfig {
	return PlaceServiceConfig{
		MaxRetries:     3,
		RetryBaseDelay: time.Second,
	}
}

// PlaceService answers place lookups with permanent-cache semantics,
// falling back to the paid enrichment call on miss.
type PlaceService struct {
	placeRepo  place.PlaceRepository
	auditRepo  place.AuditRepository
	userRepo   identity.UserRepository
	enricher   Enricher
	translator Translator
	config     PlaceServiceConfig
	logger     *zap.Logger
}

// NewPlaceService creates a new place service
func NewPlaceService(
	placeRepo place.PlaceRepository,
	auditRepo place.AuditRepository,
	userRepo identity.UserRepository,
	enricher Enricher,
	translator Translator,
	config PlaceServiceConfig,
	logger *zap.Logger,
) *PlaceService {
	return &PlaceService{
		placeRepo:  placeRepo,
		auditRepo:  auditRepo,
		userRepo:   userRepo,
		enricher:   enricher,
		translator: translator,
		config:     config,
		logger:     logger,
	}
}

// GetOrFetch returns the cached record for (name, address, language),
// enriching and persisting on miss. Concurrent misses for the same key
// race on the unique constraint; the loser re-reads the winner's row.
func (s *PlaceService) GetOrFetch(ctx context.Context, input GetPlaceInput) (*place.PlaceInfo, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Place name is required")
	}
	lang, err := normalizeLanguage(input.Language)
	if err != nil {
		return nil, err
	}
	address := strings.TrimSpace(input.Address)

	cached, err := s.placeRepo.FindByKey(ctx, name, address, lang)
	if err == nil {
		s.appendPlaceLog(ctx, name, address, lang, true)
		return cached, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Place cache lookup failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to look up place")
	}

	result, err := s.enrich(ctx, name, address, lang)
	if err != nil {
		return nil, err
	}

	info, err := s.persist(ctx, name, address, lang, *result)
	if err != nil {
		return nil, err
	}

	s.appendPlaceLog(ctx, name, address, lang, false)
	return info, nil
}

// GetOrFetchTranslated is the cross-language variant: the enrichment
// result is translated field-by-field into the display language before
// persistence, and the cache is keyed on the display language.
func (s *PlaceService) GetOrFetchTranslated(ctx context.Context, input GetTranslatedPlaceInput) (*place.PlaceInfo, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Place name is required")
	}
	sourceLang, err := normalizeLanguage(input.Language)
	if err != nil {
		return nil, err
	}
	displayLang, err := normalizeLanguage(input.DisplayLanguage)
	if err != nil {
		return nil, err
	}
	address := strings.TrimSpace(input.Address)

	cached, err := s.placeRepo.FindByKey(ctx, name, address, displayLang)
	if err == nil {
		s.appendPlaceLog(ctx, name, address, displayLang, true)
		return cached, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Place cache lookup failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to look up place")
	}

	result, err := s.enrich(ctx, name, address, sourceLang)
	if err != nil {
		return nil, err
	}

	if sourceLang != displayLang {
		if err := s.translateResult(ctx, result, sourceLang, displayLang); err != nil {
			return nil, err
		}
	}

	info, err := s.persist(ctx, name, address, displayLang, *result)
	if err != nil {
		return nil, err
	}

	s.appendPlaceLog(ctx, name, address, displayLang, false)
	return info, nil
}

// UpdatePlace is the administrative overwrite. It bypasses enrichment
// and requires the place-administration capability.
func (s *PlaceService) UpdatePlace(ctx context.Context, input UpdatePlaceInput) (*place.PlaceInfo, error) {
	actor, err := s.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !actor.Can(identity.CapManagePlaces) {
		s.logger.Warn("Place update without capability",
			zap.String("actor_id", input.ActorID.String()))
		return nil, shared.ErrForbidden
	}

	info, err := s.placeRepo.FindByID(ctx, input.PlaceID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	info.Overwrite(input.Title, input.Category, input.Menu, input.Reviews)

	if err := s.placeRepo.Update(ctx, info); err != nil {
		s.logger.Error("Failed to persist place overwrite", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update place")
	}

	s.logger.Info("Place overwritten",
		zap.String("place_id", info.ID.String()),
		zap.String("actor_id", input.ActorID.String()))

	return info, nil
}

// enrich runs the prompt + decode loop. Only HTML-looking responses are
// retried; each retry doubles the delay.
func (s *PlaceService) enrich(ctx context.Context, name, address, lang string) (*place.EnrichmentResult, error) {
	prompt := buildPrompt(name, address, lang)
	delay := s.config.RetryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= s.config.MaxRetries; attempt++ {
		raw, err := s.enricher.Fetch(ctx, prompt)
		if err != nil {
			s.logger.Warn("Enrichment call failed",
				zap.String("name", name),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return nil, shared.ErrUpstream
		}

		outcome := DecodeEnrichment(raw)
		switch outcome.Status {
		case DecodeOk:
			return &outcome.Result, nil
		case DecodeFatal:
			s.logger.Warn("Enrichment response rejected",
				zap.String("name", name),
				zap.Error(outcome.Err))
			return nil, shared.ErrUpstream
		case DecodeRetryable:
			lastErr = outcome.Err
			s.logger.Warn("Enrichment response retryable",
				zap.String("name", name),
				zap.Int("attempt", attempt),
				zap.Error(outcome.Err))
			if attempt < s.config.MaxRetries {
				if err := sleepContext(ctx, delay); err != nil {
					return nil, shared.ErrUpstream
				}
				delay *= 2
			}
		}
	}

	s.logger.Warn("Enrichment retries exhausted",
		zap.String("name", name),
		zap.Error(lastErr))
	return nil, shared.ErrUpstream
}

// persist inserts the cache row, resolving a concurrent-miss race by
// returning whichever row exists after the conflict.
func (s *PlaceService) persist(ctx context.Context, name, address, lang string, result place.EnrichmentResult) (*place.PlaceInfo, error) {
	info, err := place.NewPlaceInfo(name, address, lang, result)
	if err != nil {
		return nil, err
	}

	if err := s.placeRepo.Create(ctx, info); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Info("Concurrent enrichment lost the insert race",
				zap.String("name", name),
				zap.String("language", lang))
			return s.placeRepo.FindByKey(ctx, name, address, lang)
		}
		s.logger.Error("Failed to persist place", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to store place")
	}

	return info, nil
}

// translateResult renders title, category, menu names and reviews into
// the display language. A translation failure fails the whole call so
// a half-translated record is never cached.
func (s *PlaceService) translateResult(ctx context.Context, result *place.EnrichmentResult, sourceLang, targetLang string) error {
	translate := func(text string) (string, error) {
		if strings.TrimSpace(text) == "" {
			return text, nil
		}
		out, err := s.translator.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			s.logger.Warn("Field translation failed",
				zap.String("source_lang", sourceLang),
				zap.String("target_lang", targetLang),
				zap.Error(err))
			return "", shared.ErrUpstream
		}
		return out, nil
	}

	var err error
	if result.Title, err = translate(result.Title); err != nil {
		return err
	}
	if result.Category, err = translate(result.Category); err != nil {
		return err
	}
	for i := range result.Menu {
		if result.Menu[i].Name, err = translate(result.Menu[i].Name); err != nil {
			return err
		}
	}
	for i := range result.Reviews {
		if result.Reviews[i], err = translate(result.Reviews[i]); err != nil {
			return err
		}
	}
	return nil
}

// appendPlaceLog records the lookup; logging failures never fail the call
func (s *PlaceService) appendPlaceLog(ctx context.Context, name, address, lang string, hit bool) {
	if err := s.auditRepo.AppendPlaceLookup(ctx, place.NewPlaceLookupLog(name, address, lang, hit)); err != nil {
		s.logger.Warn("Failed to append place lookup log", zap.Error(err))
	}
}

// normalizeLanguage canonicalizes a caller-supplied language code to
// its lowercase base tag ("en-US" and "EN" both become "en").
func normalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", shared.NewDomainError("INVALID_INPUT", "Language is required")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", shared.NewDomainError("INVALID_LANGUAGE", "Unknown language code")
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// buildPrompt renders the fixed JSON-only instruction for a place
func buildPrompt(name, address, lang string) string {
	location := ""
	if address != "" {
		location = fmt.Sprintf(" located at %q", address)
	}
	return fmt.Sprintf(
		"Find real, current information about the place named %q%s in South Korea. "+
			"Answer in the language with code %q. "+
			"Respond with JSON only, no prose and no code fences, exactly in this shape: "+
			`{"title": string, "category": string, "menu": [{"name": string, "price": string}], `+
			`"reviews": [string], "reference_urls": [string]}. `+
			"Use empty arrays for fields you cannot fill. Do not invent places.",
		name, location, lang)
}

// sleepContext waits for the delay unless the context ends first
func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
