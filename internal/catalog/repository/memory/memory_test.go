package memory_test

import (
	"context"
	"testing"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/catalog/repository/memory"
)

func TestRevisionBumpsOnWrite(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	rev0, _ := r.Revision(ctx)
	if _, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{ID: "c1", Name: "Bebidas"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	rev1, _ := r.Revision(ctx)
	if rev1 <= rev0 {
		t.Fatalf("expected revision to grow, got %d then %d", rev0, rev1)
	}

	if _, err := r.ListCategories(ctx); err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	rev2, _ := r.Revision(ctx)
	if rev2 != rev1 {
		t.Errorf("reads must not change revision, got %d then %d", rev1, rev2)
	}
}

func TestItemsListAndPaginate(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	for _, it := range []repo.CreateItemOptions{
		{ID: "a", Name: "Agua", Category: "bebidas", IsVisible: true},
		{ID: "b", Name: "Soda", Category: "bebidas", IsVisible: false},
		{ID: "c", Name: "Flan", Category: "postres", IsVisible: true},
	} {
		if _, err := r.CreateItem(ctx, it); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	t.Run("filter by category", func(t *testing.T) {
		items, total, _ := r.ListItems(ctx, repo.ListItemsOptions{Category: "bebidas"})
		if total != 2 || len(items) != 2 {
			t.Fatalf("expected 2 bebidas, got total=%d len=%d", total, len(items))
		}
	})

	t.Run("visible only", func(t *testing.T) {
		items, _, _ := r.ListItems(ctx, repo.ListItemsOptions{VisibleOnly: true})
		if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
			t.Fatalf("unexpected visible items: %+v", items)
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		items, total, _ := r.ListItems(ctx, repo.ListItemsOptions{Offset: 10})
		if total != 3 || len(items) != 0 {
			t.Fatalf("expected empty page with total 3, got total=%d len=%d", total, len(items))
		}
	})

	t.Run("limit", func(t *testing.T) {
		items, total, _ := r.ListItems(ctx, repo.ListItemsOptions{Limit: 1, Offset: 1})
		if total != 3 || len(items) != 1 || items[0].ID != "b" {
			t.Fatalf("unexpected page: total=%d items=%+v", total, items)
		}
	})
}

func TestItemCopiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	tags := []string{"t1"}
	created, _ := r.CreateItem(ctx, repo.CreateItemOptions{ID: "a", Name: "Agua", TagIDs: tags})

	tags[0] = "mutated"
	created.TagIDs[0] = "mutated"

	got, _ := r.GetOneItem(ctx, "a")
	if got.TagIDs[0] != "t1" {
		t.Errorf("stored item was mutated through a caller slice: %v", got.TagIDs)
	}
}

func TestGetOneMissingReturnsZero(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	if it, err := r.GetOneItem(ctx, "nope"); err != nil || it.ID != "" {
		t.Errorf("expected zero item, got %+v %v", it, err)
	}
	if tg, err := r.GetOneTag(ctx, repo.GetOneTagOptions{}); err != nil || tg.ID != "" {
		t.Errorf("empty options must not match, got %+v %v", tg, err)
	}
	if u, err := r.UpdateFilter(ctx, repo.UpdateFilterOptions{ID: "nope"}); err != nil || u.ID != "" {
		t.Errorf("expected zero filter on missing update, got %+v %v", u, err)
	}
}

func TestRemoveTagFromItems(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	_, _ = r.CreateItem(ctx, repo.CreateItemOptions{ID: "a", TagIDs: []string{"t1", "t2"}})
	_, _ = r.CreateItem(ctx, repo.CreateItemOptions{ID: "b", TagIDs: []string{"t1"}})

	if err := r.RemoveTagFromItems(ctx, "t1"); err != nil {
		t.Fatalf("RemoveTagFromItems: %v", err)
	}
	a, _ := r.GetOneItem(ctx, "a")
	b, _ := r.GetOneItem(ctx, "b")
	if len(a.TagIDs) != 1 || a.TagIDs[0] != "t2" || len(b.TagIDs) != 0 {
		t.Errorf("tag not removed: a=%v b=%v", a.TagIDs, b.TagIDs)
	}
}

func TestFiltersOrderAndReorder(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	_, _ = r.CreateFilter(ctx, repo.CreateFilterOptions{ID: "f1", Key: "vegetariano", IsActive: true, Order: 0})
	_, _ = r.CreateFilter(ctx, repo.CreateFilterOptions{ID: "f2", Key: "economico", IsActive: false, Order: 1})
	_, _ = r.CreateFilter(ctx, repo.CreateFilterOptions{ID: "f3", Key: "sin-tacc", IsActive: true, Order: 2})

	active, _ := r.ListFilters(ctx, repo.ListFiltersOptions{ActiveOnly: true})
	if len(active) != 2 {
		t.Fatalf("expected 2 active filters, got %d", len(active))
	}

	if err := r.ReorderFilters(ctx, []string{"f3", "f1", "f2"}); err != nil {
		t.Fatalf("ReorderFilters: %v", err)
	}
	all, _ := r.ListFilters(ctx, repo.ListFiltersOptions{})
	want := []string{"f3", "f1", "f2"}
	for i, f := range all {
		if f.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], f.ID)
		}
	}

	byKey, _ := r.GetOneFilter(ctx, repo.GetOneFilterOptions{Key: "economico"})
	if byKey.ID != "f2" {
		t.Errorf("unexpected lookup by key: %+v", byKey)
	}
}
