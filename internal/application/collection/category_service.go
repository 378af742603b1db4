package collection

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/collection"
	"github.com/koreat/backend/internal/domain/shared"
)

// CategoryService handles user folder CRUD, always scoped by the owner
type CategoryService struct {
	categoryRepo collection.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo collection.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a folder; duplicate names per owner conflict
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*collection.UserCategory, error) {
	category, err := collection.NewUserCategory(input.OwnerID, input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create category")
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("owner_id", input.OwnerID.String()))

	return category, nil
}

// RenameCategory renames an owned folder; the new name must be free
func (s *CategoryService) RenameCategory(ctx context.Context, input RenameCategoryInput) (*collection.UserCategory, error) {
	category, err := s.findOwned(ctx, input.CategoryID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	taken, err := s.categoryRepo.ExistsByOwnerAndName(ctx, input.OwnerID, input.Name)
	if err != nil {
		s.logger.Error("Failed to check category name", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to rename category")
	}
	if taken {
		return nil, shared.ErrAlreadyExists
	}

	if err := category.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("Failed to persist category rename", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to rename category")
	}

	return category, nil
}

// DeleteCategory removes an owned folder and its bookmarks
func (s *CategoryService) DeleteCategory(ctx context.Context, input DeleteCategoryInput) error {
	category, err := s.findOwned(ctx, input.CategoryID, input.OwnerID)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		s.logger.Error("Failed to delete category", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete category")
	}

	s.logger.Info("Category deleted",
		zap.String("category_id", category.ID.String()),
		zap.String("owner_id", input.OwnerID.String()))

	return nil
}

// ListCategories returns the owner's folders
func (s *CategoryService) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]*collection.UserCategory, error) {
	categories, err := s.categoryRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list categories")
	}
	return categories, nil
}

// findOwned loads a folder and enforces ownership
func (s *CategoryService) findOwned(ctx context.Context, categoryID, ownerID uuid.UUID) (*collection.UserCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !category.OwnedBy(ownerID) {
		s.logger.Warn("Category access by non-owner",
			zap.String("category_id", categoryID.String()),
			zap.String("user_id", ownerID.String()))
		return nil, shared.ErrForbidden
	}
	return category, nil
}
