package usecase

import (
	"context"
	"strings"

	"qr-menu/internal/catalog"
	repo "qr-menu/internal/catalog/repository"
)

func (uc *implUseCase) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (catalog.CategoryOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return catalog.CategoryOutput{}, catalog.ErrInvalidPayload
	}

	c, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		ID:          uc.newID(),
		Name:        input.Name,
		Description: input.Description,
		Order:       input.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory CreateCategory: %v", err)
		return catalog.CategoryOutput{}, err
	}
	return catalog.CategoryOutput{Category: c}, nil
}

func (uc *implUseCase) ListCategories(ctx context.Context) (catalog.ListCategoriesOutput, error) {
	cs, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories ListCategories: %v", err)
		return catalog.ListCategoriesOutput{}, err
	}
	return catalog.ListCategoriesOutput{Categories: cs}, nil
}

func (uc *implUseCase) UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (catalog.CategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory GetOneCategory: %v", err)
		return catalog.CategoryOutput{}, err
	}
	if existing.ID == "" {
		return catalog.CategoryOutput{}, catalog.ErrCategoryNotFound
	}

	c, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:          input.ID,
		Name:        uc.coalesce(strings.TrimSpace(input.Name), existing.Name),
		Description: coalescePtr(input.Description, existing.Description),
		Order:       coalescePtr(input.Order, existing.Order),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory UpdateCategory: %v", err)
		return catalog.CategoryOutput{}, err
	}
	if c.ID == "" {
		return catalog.CategoryOutput{}, catalog.ErrCategoryNotFound
	}
	return catalog.CategoryOutput{Category: c}, nil
}

// DeleteCategory refuses to drop a category that items still point at.
func (uc *implUseCase) DeleteCategory(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneCategory(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory GetOneCategory: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrCategoryNotFound
	}

	n, err := uc.repo.CountItemsInCategory(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory CountItemsInCategory: %v", err)
		return err
	}
	if n > 0 {
		return catalog.ErrCategoryInUse
	}

	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory DeleteCategory: %v", err)
		return err
	}
	return nil
}
