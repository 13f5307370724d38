package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/category"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

// validateParent accepts either a section root UUID (which has no category
// row) or an existing category id.
func (uc *categoryUseCase) validateParent(ctx context.Context, parentID string) error {
	if _, ok := menu.SectionForUUID(parentID); ok {
		return nil
	}
	parent, err := uc.repo.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return errors.New("parent category not found")
	}
	return nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.ParentCategoryID != nil && *input.ParentCategoryID != "" {
		if err := uc.validateParent(ctx, *input.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	id := uuid.New().String()
	now := time.Now()

	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		ParentCategoryID: input.ParentCategoryID,
		Name:             input.Name,
		Description:      &input.Description,
		DisplayOrder:     input.DisplayOrder,
		Active:           true,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.New("category not found")
	}

	if input.ParentCategoryID != nil && *input.ParentCategoryID != "" {
		if *input.ParentCategoryID == cat.ID {
			return nil, errors.New("category cannot be its own parent")
		}
		if err := uc.validateParent(ctx, *input.ParentCategoryID); err != nil {
			return nil, err
		}
	}

	cat.Name = input.Name
	cat.Description = &input.Description
	cat.DisplayOrder = input.DisplayOrder
	cat.Active = input.Active
	cat.ParentCategoryID = input.ParentCategoryID
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
