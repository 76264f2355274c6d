package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"qr-menu/internal/catalog"
	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

// CreateFilter stores a customer-selectable filter. The predicate must be well
// formed; tag references that do not resolve are returned as warnings.
func (uc *implUseCase) CreateFilter(ctx context.Context, input catalog.CreateFilterInput) (catalog.FilterOutput, error) {
	input.Label = strings.TrimSpace(input.Label)
	if input.Label == "" {
		return catalog.FilterOutput{}, catalog.ErrInvalidPayload
	}
	if err := uc.checkFilterKey(ctx, "uc.CreateFilter", input.Key, ""); err != nil {
		return catalog.FilterOutput{}, err
	}
	if !input.Type.Valid() {
		return catalog.FilterOutput{}, catalog.ErrInvalidFilterType
	}
	if err := filterengine.CheckPredicate(input.Predicate); err != nil {
		return catalog.FilterOutput{}, fmt.Errorf("%w: %v", catalog.ErrInvalidPredicate, err)
	}
	warnings, err := uc.tagWarnings(ctx, "uc.CreateFilter", input.Predicate)
	if err != nil {
		return catalog.FilterOutput{}, err
	}

	f, err := uc.repo.CreateFilter(ctx, repo.CreateFilterOptions{
		ID:          uc.newID(),
		Key:         input.Key,
		Label:       input.Label,
		Description: input.Description,
		Icon:        input.Icon,
		Type:        input.Type,
		Predicate:   input.Predicate,
		IsActive:    input.IsActive,
		Order:       input.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFilter CreateFilter: %v", err)
		return catalog.FilterOutput{}, err
	}
	return catalog.FilterOutput{Filter: f, Warnings: warnings}, nil
}

func (uc *implUseCase) ListFilters(ctx context.Context, input catalog.ListFiltersInput) (catalog.ListFiltersOutput, error) {
	fs, err := uc.repo.ListFilters(ctx, repo.ListFiltersOptions{ActiveOnly: input.ActiveOnly})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListFilters ListFilters: %v", err)
		return catalog.ListFiltersOutput{}, err
	}
	return catalog.ListFiltersOutput{Filters: fs}, nil
}

func (uc *implUseCase) UpdateFilter(ctx context.Context, input catalog.UpdateFilterInput) (catalog.FilterOutput, error) {
	existing, err := uc.repo.GetOneFilter(ctx, repo.GetOneFilterOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateFilter GetOneFilter: %v", err)
		return catalog.FilterOutput{}, err
	}
	if existing.ID == "" {
		return catalog.FilterOutput{}, catalog.ErrFilterNotFound
	}

	if input.Key != "" && input.Key != existing.Key {
		if err := uc.checkFilterKey(ctx, "uc.UpdateFilter", input.Key, existing.ID); err != nil {
			return catalog.FilterOutput{}, err
		}
	}
	typ := model.FilterType(uc.coalesce(string(input.Type), string(existing.Type)))
	if !typ.Valid() {
		return catalog.FilterOutput{}, catalog.ErrInvalidFilterType
	}
	predicate := coalescePtr(input.Predicate, existing.Predicate)
	if input.Predicate != nil {
		if err := filterengine.CheckPredicate(predicate); err != nil {
			return catalog.FilterOutput{}, fmt.Errorf("%w: %v", catalog.ErrInvalidPredicate, err)
		}
	}
	warnings, err := uc.tagWarnings(ctx, "uc.UpdateFilter", predicate)
	if err != nil {
		return catalog.FilterOutput{}, err
	}

	f, err := uc.repo.UpdateFilter(ctx, repo.UpdateFilterOptions{
		ID:          input.ID,
		Key:         uc.coalesce(input.Key, existing.Key),
		Label:       uc.coalesce(strings.TrimSpace(input.Label), existing.Label),
		Description: coalescePtr(input.Description, existing.Description),
		Icon:        coalescePtr(input.Icon, existing.Icon),
		Type:        typ,
		Predicate:   predicate,
		IsActive:    coalescePtr(input.IsActive, existing.IsActive),
		Order:       coalescePtr(input.Order, existing.Order),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateFilter UpdateFilter: %v", err)
		return catalog.FilterOutput{}, err
	}
	if f.ID == "" {
		return catalog.FilterOutput{}, catalog.ErrFilterNotFound
	}
	return catalog.FilterOutput{Filter: f, Warnings: warnings}, nil
}

func (uc *implUseCase) DeleteFilter(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneFilter(ctx, repo.GetOneFilterOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFilter GetOneFilter: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrFilterNotFound
	}
	if err := uc.repo.DeleteFilter(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFilter DeleteFilter: %v", err)
		return err
	}
	return nil
}

// ReorderFilters rewrites display order. The input must be a permutation of the
// stored filter IDs.
func (uc *implUseCase) ReorderFilters(ctx context.Context, input catalog.ReorderFiltersInput) (catalog.ListFiltersOutput, error) {
	current, err := uc.repo.ListFilters(ctx, repo.ListFiltersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ReorderFilters ListFilters: %v", err)
		return catalog.ListFiltersOutput{}, err
	}

	ids := uniqueIDs(input.IDs)
	if len(ids) != len(input.IDs) || len(ids) != len(current) {
		return catalog.ListFiltersOutput{}, catalog.ErrInvalidOrder
	}
	for _, f := range current {
		if !slices.Contains(ids, f.ID) {
			return catalog.ListFiltersOutput{}, catalog.ErrInvalidOrder
		}
	}

	if err := uc.repo.ReorderFilters(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.ReorderFilters ReorderFilters: %v", err)
		return catalog.ListFiltersOutput{}, err
	}

	fs, err := uc.repo.ListFilters(ctx, repo.ListFiltersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ReorderFilters ListFilters: %v", err)
		return catalog.ListFiltersOutput{}, err
	}
	return catalog.ListFiltersOutput{Filters: fs}, nil
}

func (uc *implUseCase) checkFilterKey(ctx context.Context, method, key, selfID string) error {
	if key == model.FilterKeyAll {
		return catalog.ErrReservedFilterKey
	}
	if !isSlug(key) {
		return catalog.ErrInvalidFilterKey
	}
	dup, err := uc.repo.GetOneFilter(ctx, repo.GetOneFilterOptions{Key: key})
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneFilter: %v", method, err)
		return err
	}
	if dup.ID != "" && dup.ID != selfID {
		return catalog.ErrDuplicateFilter
	}
	return nil
}

func (uc *implUseCase) tagWarnings(ctx context.Context, method string, p model.FilterPredicate) ([]string, error) {
	tags, err := uc.repo.ListTags(ctx, repo.ListTagsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "%s ListTags: %v", method, err)
		return nil, err
	}

	err = filterengine.CheckTagRefs(p, filterengine.NewTagIndex(tags))
	if err == nil {
		return nil, nil
	}
	uc.l.Warnf(ctx, "%s CheckTagRefs: %v", method, err)
	return strings.Split(err.Error(), "\n"), nil
}
