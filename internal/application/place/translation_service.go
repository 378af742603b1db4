package place

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/koreat/backend/internal/domain/identity"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
)

// TranslationService serves the short-term translation memo tables:
// category terms (Korean to English) and region names (English to
// Korean). Entries never expire; every call is logged, hit or miss.
type TranslationService struct {
	translationRepo place.TranslationRepository
	auditRepo       place.AuditRepository
	userRepo        identity.UserRepository
	translator      Translator
	logger          *zap.Logger
}

// NewTranslationService creates a new translation memo service
func NewTranslationService(
	translationRepo place.TranslationRepository,
	auditRepo place.AuditRepository,
	userRepo identity.UserRepository,
	translator Translator,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		translationRepo: translationRepo,
		auditRepo:       auditRepo,
		userRepo:        userRepo,
		translator:      translator,
		logger:          logger,
	}
}

// TranslateCategory returns the English rendering of a Korean category
// term, consulting the memo table before the translation service.
func (s *TranslationService) TranslateCategory(ctx context.Context, input TranslateCategoryInput) (*TranslationResult, error) {
	korean := strings.TrimSpace(input.Korean)
	if korean == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category term is required")
	}

	if memo, err := s.translationRepo.FindCategory(ctx, korean); err == nil {
		s.appendCategoryLog(ctx, korean, true)
		return &TranslationResult{Source: korean, Translated: memo.English, CacheHit: true}, nil
	}

	english, err := s.translator.Translate(ctx, korean, "ko", "en")
	if err != nil {
		s.logger.Warn("Category translation failed",
			zap.String("korean", korean),
			zap.Error(err))
		return nil, shared.ErrUpstream
	}

	memo, err := place.NewCategoryTranslation(korean, english)
	if err != nil {
		return nil, err
	}
	// First writer wins; a duplicate save is absorbed by the repository
	if err := s.translationRepo.SaveCategory(ctx, memo); err != nil {
		s.logger.Warn("Failed to memoize category translation",
			zap.String("korean", korean),
			zap.Error(err))
	}

	s.appendCategoryLog(ctx, korean, false)
	return &TranslationResult{Source: korean, Translated: english, CacheHit: false}, nil
}

// TranslateRegion returns the Korean rendering of an English region name
func (s *TranslationService) TranslateRegion(ctx context.Context, input TranslateRegionInput) (*TranslationResult, error) {
	english := strings.TrimSpace(input.English)
	if english == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Region name is required")
	}

	if memo, err := s.translationRepo.FindRegion(ctx, english); err == nil {
		s.appendRegionLog(ctx, english, true)
		return &TranslationResult{Source: english, Translated: memo.Korean, CacheHit: true}, nil
	}

	korean, err := s.translator.Translate(ctx, english, "en", "ko")
	if err != nil {
		s.logger.Warn("Region translation failed",
			zap.String("english", english),
			zap.Error(err))
		return nil, shared.ErrUpstream
	}

	memo, err := place.NewRegionTranslation(english, korean)
	if err != nil {
		return nil, err
	}
	if err := s.translationRepo.SaveRegion(ctx, memo); err != nil {
		s.logger.Warn("Failed to memoize region translation",
			zap.String("english", english),
			zap.Error(err))
	}

	s.appendRegionLog(ctx, english, false)
	return &TranslationResult{Source: english, Translated: korean, CacheHit: false}, nil
}

// SeedCategories installs the fixed category vocabulary. Existing memo
// entries are left untouched; the operation is idempotent.
func (s *TranslationService) SeedCategories(ctx context.Context, input SeedCategoriesInput) (*SeedCategoriesResult, error) {
	actor, err := s.userRepo.FindByID(ctx, input.ActorID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !actor.Can(identity.CapManagePlaces) {
		s.logger.Warn("Category seed without capability",
			zap.String("actor_id", input.ActorID.String()))
		return nil, shared.ErrForbidden
	}

	installed := 0
	for korean, english := range place.SeedCategoryPairs {
		memo, err := place.NewCategoryTranslation(korean, english)
		if err != nil {
			return nil, err
		}
		if err := s.translationRepo.SaveCategory(ctx, memo); err != nil {
			s.logger.Error("Failed to seed category pair",
				zap.String("korean", korean),
				zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to seed categories")
		}
		installed++
	}

	s.logger.Info("Category vocabulary seeded",
		zap.Int("pairs", installed),
		zap.String("actor_id", input.ActorID.String()))

	return &SeedCategoriesResult{Installed: installed}, nil
}

func (s *TranslationService) appendCategoryLog(ctx context.Context, korean string, hit bool) {
	if err := s.auditRepo.AppendCategoryLookup(ctx, place.NewCategoryLookupLog(korean, hit)); err != nil {
		s.logger.Warn("Failed to append category lookup log", zap.Error(err))
	}
}

func (s *TranslationService) appendRegionLog(ctx context.Context, english string, hit bool) {
	if err := s.auditRepo.AppendRegionLookup(ctx, place.NewRegionLookupLog(english, hit)); err != nil {
		s.logger.Warn("Failed to append region lookup log", zap.Error(err))
	}
}
