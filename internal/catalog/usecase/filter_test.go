package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qr-menu/internal/catalog"
	"qr-menu/internal/catalog/usecase"
	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

func tagPredicate(ref string) model.FilterPredicate {
	return model.FilterPredicate{
		Conditions: []model.FilterCondition{{
			Field: model.FieldTagIDs, Operator: model.OperatorContains, Value: model.StringValue(ref),
		}},
		Logic: model.LogicAnd,
	}
}

func TestCreateFilter(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	t.Run("Success", func(t *testing.T) {
		out, err := fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{
			Key: "vegetariano", Label: "Vegetariano", Type: model.FilterTypeTag,
			Predicate: tagPredicate("vegetariano"), IsActive: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filter.ID == "" || len(out.Warnings) != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Unresolved Tag Is A Warning", func(t *testing.T) {
		out, err := fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{
			Key: "vegano", Label: "Vegano", Type: model.FilterTypeTag, Predicate: tagPredicate("vegano"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Warnings) != 1 {
			t.Errorf("expected one warning, got %v", out.Warnings)
		}
	})

	badPredicate := model.FilterPredicate{
		Conditions: []model.FilterCondition{{Field: model.FieldPrice, Operator: model.OperatorRange, Value: model.NumberValue(10)}},
		Logic:      model.LogicAnd,
	}
	tests := []struct {
		name  string
		input catalog.CreateFilterInput
		want  error
	}{
		{"Reserved Key", catalog.CreateFilterInput{Key: model.FilterKeyAll, Label: "Todos", Type: model.FilterTypeCustom}, catalog.ErrReservedFilterKey},
		{"Duplicate Key", catalog.CreateFilterInput{Key: "vegetariano", Label: "Otra", Type: model.FilterTypeTag}, catalog.ErrDuplicateFilter},
		{"Bad Key", catalog.CreateFilterInput{Key: "Sin Gluten", Label: "Sin gluten", Type: model.FilterTypeTag}, catalog.ErrInvalidFilterKey},
		{"Unknown Type", catalog.CreateFilterInput{Key: "raro", Label: "Raro", Type: "weird"}, catalog.ErrInvalidFilterType},
		{"Bad Predicate", catalog.CreateFilterInput{Key: "barato", Label: "Barato", Type: model.FilterTypePriceRange, Predicate: badPredicate}, catalog.ErrInvalidPredicate},
		{"Missing Label", catalog.CreateFilterInput{Key: "barato", Type: model.FilterTypePriceRange}, catalog.ErrInvalidPayload},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := fx.uc.CreateFilter(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("Predicate Error Keeps Detail", func(t *testing.T) {
		_, err := fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{
			Key: "barato", Label: "Barato", Type: model.FilterTypePriceRange, Predicate: badPredicate,
		})
		if err == nil || !errors.Is(err, catalog.ErrInvalidPredicate) {
			t.Fatalf("expected ErrInvalidPredicate, got %v", err)
		}
		if want := filterengine.ErrValueShape.Error(); !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	})

	t.Run("Tag Lookup Error", func(t *testing.T) {
		uc := usecase.New(&failingRepo{
			Repository:   fx.repo,
			listTagsFunc: func() ([]model.Tag, error) { return nil, errStore },
		}, &mockLogger{})
		_, err := uc.CreateFilter(ctx, catalog.CreateFilterInput{
			Key: "picante", Label: "Picante", Type: model.FilterTypeTag, Predicate: tagPredicate("picante"),
		})
		if !errors.Is(err, errStore) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestUpdateFilter(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	created, _ := fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{
		Key: "vegetariano", Label: "Vegetariano", Type: model.FilterTypeTag,
		Predicate: tagPredicate("vegetariano"), IsActive: true,
	})
	_, _ = fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{
		Key: "picante", Label: "Picante", Type: model.FilterTypeTag, Predicate: tagPredicate("picante"),
	})

	out, err := fx.uc.UpdateFilter(ctx, catalog.UpdateFilterInput{ID: created.Filter.ID, IsActive: ptr(false), Label: "Veggie"})
	if err != nil {
		t.Fatalf("UpdateFilter: %v", err)
	}
	if out.Filter.IsActive || out.Filter.Label != "Veggie" || out.Filter.Key != "vegetariano" {
		t.Errorf("unexpected filter: %+v", out.Filter)
	}

	if _, err := fx.uc.UpdateFilter(ctx, catalog.UpdateFilterInput{ID: created.Filter.ID, Key: "picante"}); !errors.Is(err, catalog.ErrDuplicateFilter) {
		t.Errorf("expected ErrDuplicateFilter, got %v", err)
	}
	if _, err := fx.uc.UpdateFilter(ctx, catalog.UpdateFilterInput{ID: created.Filter.ID, Predicate: &model.FilterPredicate{
		Conditions: []model.FilterCondition{{Field: "calories", Operator: model.OperatorEquals}}, Logic: model.LogicAnd,
	}}); !errors.Is(err, catalog.ErrInvalidPredicate) {
		t.Errorf("expected ErrInvalidPredicate, got %v", err)
	}
	if _, err := fx.uc.UpdateFilter(ctx, catalog.UpdateFilterInput{ID: "missing"}); !errors.Is(err, catalog.ErrFilterNotFound) {
		t.Errorf("expected ErrFilterNotFound, got %v", err)
	}
}

func TestReorderFilters(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	var ids []string
	for i, key := range []string{"uno", "dos", "tres"} {
		out, err := fx.uc.CreateFilter(ctx, catalog.CreateFilterInput{Key: key, Label: key, Type: model.FilterTypeCustom, Order: i})
		if err != nil {
			t.Fatalf("CreateFilter: %v", err)
		}
		ids = append(ids, out.Filter.ID)
	}

	out, err := fx.uc.ReorderFilters(ctx, catalog.ReorderFiltersInput{IDs: []string{ids[2], ids[0], ids[1]}})
	if err != nil {
		t.Fatalf("ReorderFilters: %v", err)
	}
	if out.Filters[0].Key != "tres" || out.Filters[1].Key != "uno" || out.Filters[2].Key != "dos" {
		t.Errorf("unexpected order: %s %s %s", out.Filters[0].Key, out.Filters[1].Key, out.Filters[2].Key)
	}

	for name, bad := range map[string][]string{
		"Missing ID":   {ids[0], ids[1]},
		"Duplicate ID": {ids[0], ids[0], ids[1]},
		"Unknown ID":   {ids[0], ids[1], "ghost"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := fx.uc.ReorderFilters(ctx, catalog.ReorderFiltersInput{IDs: bad}); !errors.Is(err, catalog.ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}
