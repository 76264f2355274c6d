package filterengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

var testCategories = []model.Category{
	{ID: "entradas", Name: "Entradas", Order: 2},
	{ID: "bebidas", Name: "Bebidas", Order: 1},
	{ID: "postres", Name: "Postres", Order: 3},
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestGroupByCategoryKeepsCategoryOrder(t *testing.T) {
	items := []model.Item{
		{ID: "soda", Category: "bebidas"},
		{ID: "empanada", Category: "entradas"},
		{ID: "agua", Category: "bebidas"},
		{ID: "orphan", Category: "gone"},
	}

	groups := filterengine.GroupByCategory(testCategories, items, nil)

	require.Len(t, groups, 3)
	assert.Equal(t, "entradas", groups[0].Category.ID)
	assert.Equal(t, []string{"empanada"}, ids(groups[0].Items))
	assert.Equal(t, "bebidas", groups[1].Category.ID)
	assert.Equal(t, []string{"soda", "agua"}, ids(groups[1].Items))
	assert.Equal(t, "postres", groups[2].Category.ID)
	assert.NotNil(t, groups[2].Items)
	assert.Empty(t, groups[2].Items)
}

func TestGroupByCategoryEmptyCatalog(t *testing.T) {
	groups := filterengine.GroupByCategory(testCategories, nil, nil)
	require.Len(t, groups, len(testCategories))
	for _, g := range groups {
		assert.Empty(t, g.Items)
	}
}

func TestGroupByCategoryDraftsAfterPersisted(t *testing.T) {
	items := []model.Item{{ID: "flan", Name: "Flan", Category: "postres"}}
	drafts := []model.Item{
		{Name: "Tiramisu", Category: "postres"},
		{Name: "Limonada", Category: "bebidas"},
		{Name: "Lost", Category: "gone"},
	}

	groups := filterengine.GroupByCategory(testCategories, items, drafts)

	require.Len(t, groups[2].Items, 2)
	assert.Equal(t, "flan", groups[2].Items[0].ID)
	assert.Equal(t, "Tiramisu", groups[2].Items[1].Name)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "Limonada", groups[1].Items[0].Name)
}

func TestGroupByCategoryDraftReplacesSavedItem(t *testing.T) {
	items := []model.Item{
		{ID: "flan", Name: "Flan", Price: 1200, Category: "postres"},
		{ID: "helado", Name: "Helado", Category: "postres"},
	}
	drafts := []model.Item{
		{ID: "flan", Name: "Flan casero", Price: 1500, Category: "postres"},
		{ID: "soda", Name: "Soda", Category: "bebidas"},
	}

	groups := filterengine.GroupByCategory(testCategories, items, drafts)

	require.Equal(t, []string{"flan", "helado"}, ids(groups[2].Items))
	assert.Equal(t, "Flan casero", groups[2].Items[0].Name)
	assert.Equal(t, 1500.0, groups[2].Items[0].Price)
	assert.Equal(t, []string{"soda"}, ids(groups[1].Items), "an ID not in the group is appended")
	assert.Equal(t, "Flan", items[0].Name, "input items are not modified")
}

func TestApplyFilterSelection(t *testing.T) {
	idx := filterengine.NewTagIndex(testTags)
	items := []model.Item{
		{ID: "a", Price: 500, TagIDs: []string{"tag_1"}},
		{ID: "b", Price: 5000},
		{ID: "c", Price: 1500, TagIDs: []string{"tag_2"}},
	}
	filters := []model.Filter{
		{
			Key: "vegetariano", IsActive: true, Type: model.FilterTypeTag,
			Predicate: model.FilterPredicate{
				Conditions: []model.FilterCondition{cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("vegetariano"))},
				Logic:      model.LogicAnd,
			},
		},
		{
			Key: "economico", IsActive: false, Type: model.FilterTypePriceRange,
			Predicate: model.FilterPredicate{
				Conditions: []model.FilterCondition{cond(model.FieldPrice, model.OperatorRange, model.RangeValue(0, 1000))},
				Logic:      model.LogicAnd,
			},
		},
	}

	t.Run("selected filter narrows", func(t *testing.T) {
		got := filterengine.ApplyFilter(items, filters, "vegetariano", idx)
		assert.Equal(t, []string{"a"}, ids(got))
	})

	for _, key := range []string{"", model.FilterKeyAll, "nonexistent", "economico"} {
		t.Run("fail open "+key, func(t *testing.T) {
			got := filterengine.ApplyFilter(items, filters, key, idx)
			assert.Equal(t, items, got)
		})
	}
}

func TestSelectFilter(t *testing.T) {
	filters := []model.Filter{{Key: "x", IsActive: true}}

	f, ok := filterengine.SelectFilter(filters, "x")
	assert.True(t, ok)
	assert.Equal(t, "x", f.Key)

	_, ok = filterengine.SelectFilter(filters, model.FilterKeyAll)
	assert.False(t, ok)
}
