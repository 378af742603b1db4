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
	"github.com/koreat/backend/internal/domain/shared"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates a folder", func(t *testing.T) {
		categories := new(MockCategoryRepository)
		categories.On("Create", ctx, mock.AnythingOfType("*collection.UserCategory")).Return(nil)

		svc := NewCategoryService(categories, zap.NewNop())
		got, err := svc.CreateCategory(ctx, CreateCategoryInput{OwnerID: ownerID, Name: "맛집"})

		require.NoError(t, err)
		assert.Equal(t, "맛집", got.Name)
		assert.Equal(t, ownerID, got.OwnerID)
	})

	t.Run("duplicate name per owner conflicts", func(t *testing.T) {
		categories := new(MockCategoryRepository)
		categories.On("Create", ctx, mock.Anything).Return(shared.ErrAlreadyExists)

		svc := NewCategoryService(categories, zap.NewNop())
		_, err := svc.CreateCategory(ctx, CreateCategoryInput{OwnerID: ownerID, Name: "맛집"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		svc := NewCategoryService(new(MockCategoryRepository), zap.NewNop())

		_, err := svc.CreateCategory(ctx, CreateCategoryInput{OwnerID: ownerID, Name: "  "})

		assert.Error(t, err)
	})
}

func TestCategoryService_RenameCategory(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	newCategory := func(t *testing.T, owner uuid.UUID) *collection.UserCategory {
		t.Helper()
		c, err := collection.NewUserCategory(owner, "맛집")
		require.NoError(t, err)
		return c
	}

	t.Run("renames an owned folder", func(t *testing.T) {
		category := newCategory(t, ownerID)
		categories := new(MockCategoryRepository)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		categories.On("ExistsByOwnerAndName", ctx, ownerID, "카페").Return(false, nil)
		categories.On("Update", ctx, category).Return(nil)

		svc := NewCategoryService(categories, zap.NewNop())
		got, err := svc.RenameCategory(ctx, RenameCategoryInput{OwnerID: ownerID, CategoryID: category.ID, Name: "카페"})

		require.NoError(t, err)
		assert.Equal(t, "카페", got.Name)
	})

	t.Run("taken name conflicts", func(t *testing.T) {
		category := newCategory(t, ownerID)
		categories := new(MockCategoryRepository)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		categories.On("ExistsByOwnerAndName", ctx, ownerID, "카페").Return(true, nil)

		svc := NewCategoryService(categories, zap.NewNop())
		_, err := svc.RenameCategory(ctx, RenameCategoryInput{OwnerID: ownerID, CategoryID: category.ID, Name: "카페"})

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("another user's folder is forbidden", func(t *testing.T) {
		category := newCategory(t, uuid.New())
		categories := new(MockCategoryRepository)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)

		svc := NewCategoryService(categories, zap.NewNop())
		_, err := svc.RenameCategory(ctx, RenameCategoryInput{OwnerID: ownerID, CategoryID: category.ID, Name: "카페"})

		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("deletes an owned folder", func(t *testing.T) {
		category, err := collection.NewUserCategory(ownerID, "맛집")
		require.NoError(t, err)

		categories := new(MockCategoryRepository)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		categories.On("Delete", ctx, category.ID).Return(nil)

		svc := NewCategoryService(categories, zap.NewNop())
		require.NoError(t, svc.DeleteCategory(ctx, DeleteCategoryInput{OwnerID: ownerID, CategoryID: category.ID}))
		categories.AssertExpectations(t)
	})

	t.Run("missing folder is not found", func(t *testing.T) {
		categories := new(MockCategoryRepository)
		id := uuid.New()
		categories.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		svc := NewCategoryService(categories, zap.NewNop())
		err := svc.DeleteCategory(ctx, DeleteCategoryInput{OwnerID: ownerID, CategoryID: id})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
