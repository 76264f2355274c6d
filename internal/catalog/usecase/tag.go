package usecase

import (
	"context"
	"strings"

	"qr-menu/internal/catalog"
	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

// CreateTag adds a tag. Keys are lowercase slugs and unique.
func (uc *implUseCase) CreateTag(ctx context.Context, input catalog.CreateTagInput) (catalog.TagOutput, error) {
	input.Label = strings.TrimSpace(input.Label)
	if input.Label == "" {
		return catalog.TagOutput{}, catalog.ErrInvalidPayload
	}
	if !isSlug(input.Key) {
		return catalog.TagOutput{}, catalog.ErrInvalidTagKey
	}
	if input.Category == "" {
		input.Category = model.TagCategoryCustom
	}
	if !input.Category.Valid() {
		return catalog.TagOutput{}, catalog.ErrInvalidTagType
	}
	if err := uc.ensureTagKeyFree(ctx, "uc.CreateTag", input.Key, ""); err != nil {
		return catalog.TagOutput{}, err
	}

	t, err := uc.repo.CreateTag(ctx, repo.CreateTagOptions{
		ID:       uc.newID(),
		Key:      input.Key,
		Label:    input.Label,
		Color:    input.Color,
		Category: input.Category,
		IsActive: input.IsActive,
		Order:    input.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTag CreateTag: %v", err)
		return catalog.TagOutput{}, err
	}
	return catalog.TagOutput{Tag: t}, nil
}

func (uc *implUseCase) ListTags(ctx context.Context, input catalog.ListTagsInput) (catalog.ListTagsOutput, error) {
	ts, err := uc.repo.ListTags(ctx, repo.ListTagsOptions{ActiveOnly: input.ActiveOnly})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTags ListTags: %v", err)
		return catalog.ListTagsOutput{}, err
	}
	return catalog.ListTagsOutput{Tags: ts}, nil
}

func (uc *implUseCase) UpdateTag(ctx context.Context, input catalog.UpdateTagInput) (catalog.TagOutput, error) {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTag GetOneTag: %v", err)
		return catalog.TagOutput{}, err
	}
	if existing.ID == "" {
		return catalog.TagOutput{}, catalog.ErrTagNotFound
	}

	if input.Key != "" && input.Key != existing.Key {
		if !isSlug(input.Key) {
			return catalog.TagOutput{}, catalog.ErrInvalidTagKey
		}
		if err := uc.ensureTagKeyFree(ctx, "uc.UpdateTag", input.Key, existing.ID); err != nil {
			return catalog.TagOutput{}, err
		}
	}
	category := model.TagCategory(uc.coalesce(string(input.Category), string(existing.Category)))
	if !category.Valid() {
		return catalog.TagOutput{}, catalog.ErrInvalidTagType
	}

	t, err := uc.repo.UpdateTag(ctx, repo.UpdateTagOptions{
		ID:       input.ID,
		Key:      uc.coalesce(input.Key, existing.Key),
		Label:    uc.coalesce(strings.TrimSpace(input.Label), existing.Label),
		Color:    coalescePtr(input.Color, existing.Color),
		Category: category,
		IsActive: coalescePtr(input.IsActive, existing.IsActive),
		Order:    coalescePtr(input.Order, existing.Order),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTag UpdateTag: %v", err)
		return catalog.TagOutput{}, err
	}
	if t.ID == "" {
		return catalog.TagOutput{}, catalog.ErrTagNotFound
	}
	return catalog.TagOutput{Tag: t}, nil
}

// DeleteTag removes the tag and strips its ID from every item.
func (uc *implUseCase) DeleteTag(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTag GetOneTag: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrTagNotFound
	}

	if err := uc.repo.RemoveTagFromItems(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTag RemoveTagFromItems: %v", err)
		return err
	}
	if err := uc.repo.DeleteTag(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTag DeleteTag: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) ensureTagKeyFree(ctx context.Context, method, key, selfID string) error {
	dup, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{Key: key})
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneTag: %v", method, err)
		return err
	}
	if dup.ID != "" && dup.ID != selfID {
		return catalog.ErrDuplicateTagKey
	}
	return nil
}
