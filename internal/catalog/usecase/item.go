package usecase

import (
	"context"
	"strings"

	"qr-menu/internal/catalog"
	repo "qr-menu/internal/catalog/repository"
)

// CreateItem adds a dish after checking that its category and tags exist.
func (uc *implUseCase) CreateItem(ctx context.Context, input catalog.CreateItemInput) (catalog.ItemOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Price < 0 {
		return catalog.ItemOutput{}, catalog.ErrInvalidPayload
	}

	tagIDs := uniqueIDs(input.TagIDs)
	if err := uc.checkItemRefs(ctx, "uc.CreateItem", input.Category, tagIDs); err != nil {
		return catalog.ItemOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          uc.newID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		TagIDs:      tagIDs,
		IsVisible:   input.IsVisible,
		Image:       input.Image,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateItem CreateItem: %v", err)
		return catalog.ItemOutput{}, err
	}
	return catalog.ItemOutput{Item: item}, nil
}

// ListItems returns a page of items.
func (uc *implUseCase) ListItems(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Category:    input.Category,
		VisibleOnly: input.VisibleOnly,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListItems ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}
	return catalog.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// DetailItem retrieves a single item by ID.
func (uc *implUseCase) DetailItem(ctx context.Context, id string) (catalog.ItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailItem GetOneItem: %v", err)
		return catalog.ItemOutput{}, err
	}
	if item.ID == "" {
		return catalog.ItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.ItemOutput{Item: item}, nil
}

// UpdateItem applies a partial update to an existing item.
func (uc *implUseCase) UpdateItem(ctx context.Context, input catalog.UpdateItemInput) (catalog.ItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem GetOneItem: %v", err)
		return catalog.ItemOutput{}, err
	}
	if existing.ID == "" {
		return catalog.ItemOutput{}, catalog.ErrItemNotFound
	}

	price := coalescePtr(input.Price, existing.Price)
	if price < 0 {
		return catalog.ItemOutput{}, catalog.ErrInvalidPayload
	}
	category := uc.coalesce(input.Category, existing.Category)
	tagIDs := existing.TagIDs
	if input.TagIDs != nil {
		tagIDs = uniqueIDs(*input.TagIDs)
	}
	if input.Category != "" || input.TagIDs != nil {
		if err := uc.checkItemRefs(ctx, "uc.UpdateItem", category, tagIDs); err != nil {
			return catalog.ItemOutput{}, err
		}
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        uc.coalesce(strings.TrimSpace(input.Name), existing.Name),
		Description: uc.coalesce(input.Description, existing.Description),
		Price:       price,
		Category:    category,
		TagIDs:      tagIDs,
		IsVisible:   coalescePtr(input.IsVisible, existing.IsVisible),
		Image:       coalescePtr(input.Image, existing.Image),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem UpdateItem: %v", err)
		return catalog.ItemOutput{}, err
	}
	if item.ID == "" {
		return catalog.ItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.ItemOutput{Item: item}, nil
}

// DeleteItem removes an item by ID.
func (uc *implUseCase) DeleteItem(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) checkItemRefs(ctx context.Context, method, categoryID string, tagIDs []string) error {
	if categoryID == "" {
		return catalog.ErrUnknownCategory
	}
	cat, err := uc.repo.GetOneCategory(ctx, categoryID)
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneCategory: %v", method, err)
		return err
	}
	if cat.ID == "" {
		return catalog.ErrUnknownCategory
	}

	for _, id := range tagIDs {
		tag, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{ID: id})
		if err != nil {
			uc.l.Errorf(ctx, "%s GetOneTag: %v", method, err)
			return err
		}
		if tag.ID == "" {
			return catalog.ErrUnknownTag
		}
	}
	return nil
}
