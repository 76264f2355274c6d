package filterengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

var testTags = []model.Tag{
	{ID: "tag_1", Key: "vegetariano", Label: "Vegetariano", Category: model.TagCategoryDiet, IsActive: true},
	{ID: "tag_2", Key: "sin-tacc", Label: "Sin TACC", Category: model.TagCategoryDiet, IsActive: true},
	{ID: "tag_3", Key: "picante", Label: "Picante", Category: model.TagCategoryFeature, IsActive: true},
}

func cond(field model.ConditionField, op model.ConditionOperator, v model.Value) model.FilterCondition {
	return model.FilterCondition{Field: field, Operator: op, Value: v}
}

func TestEvaluateConditionTags(t *testing.T) {
	idx := filterengine.NewTagIndex(testTags)
	tagged := model.Item{TagIDs: []string{"tag_1", "tag_3"}}
	bare := model.Item{}

	tests := []struct {
		name string
		item model.Item
		c    model.FilterCondition
		want bool
	}{
		{"contains by key", tagged, cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("vegetariano")), true},
		{"contains by id", tagged, cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("tag_1")), true},
		{"contains missing tag", tagged, cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("sin-tacc")), false},
		{"contains unknown key", tagged, cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("vegano")), false},
		{"contains literal id outside dictionary", model.Item{TagIDs: []string{"legacy"}}, cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("legacy")), true},
		{"contains non-string", tagged, cond(model.FieldTagIDs, model.OperatorContains, model.NumberValue(1)), false},
		{"in list any", tagged, cond(model.FieldTagIDs, model.OperatorIn, model.ListValue("sin-tacc", "picante")), true},
		{"in list none", tagged, cond(model.FieldTagIDs, model.OperatorIn, model.ListValue("sin-tacc", "nope")), false},
		{"in scalar wrapped", tagged, cond(model.FieldTagIDs, model.OperatorIn, model.StringValue("tag_3")), true},
		{"exists with tags", tagged, cond(model.FieldTagIDs, model.OperatorExists, model.Value{}), true},
		{"exists without tags", bare, cond(model.FieldTagIDs, model.OperatorExists, model.Value{}), false},
		{"unsupported operator", tagged, cond(model.FieldTagIDs, model.OperatorEquals, model.StringValue("tag_1")), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filterengine.EvaluateCondition(tc.item, tc.c, idx))
		})
	}
}

func TestEvaluateConditionPrice(t *testing.T) {
	min, max := 1000.0, 3000.0
	tests := []struct {
		name  string
		price float64
		c     model.FilterCondition
		want  bool
	}{
		{"inside range", 2000, cond(model.FieldPrice, model.OperatorRange, model.RangeValue(1000, 3000)), true},
		{"at min", 1000, cond(model.FieldPrice, model.OperatorRange, model.RangeValue(1000, 3000)), true},
		{"at max", 3000, cond(model.FieldPrice, model.OperatorRange, model.RangeValue(1000, 3000)), true},
		{"above max", 3001, cond(model.FieldPrice, model.OperatorRange, model.RangeValue(1000, 3000)), false},
		{"below min", 999, cond(model.FieldPrice, model.OperatorRange, model.RangeValue(1000, 3000)), false},
		{"missing max defaults to infinity", 1e9, cond(model.FieldPrice, model.OperatorRange, model.RangeOf(model.Range{Min: &min})), true},
		{"missing min defaults to zero", 0, cond(model.FieldPrice, model.OperatorRange, model.RangeOf(model.Range{Max: &max})), true},
		{"non-range degrades to open range", 500, cond(model.FieldPrice, model.OperatorRange, model.StringValue("cheap")), true},
		{"equals", 2500, cond(model.FieldPrice, model.OperatorEquals, model.NumberValue(2500)), true},
		{"equals mismatch", 2500.5, cond(model.FieldPrice, model.OperatorEquals, model.NumberValue(2500)), false},
		{"equals string does not coerce", 2500, cond(model.FieldPrice, model.OperatorEquals, model.StringValue("2500")), false},
		{"unsupported operator", 2500, cond(model.FieldPrice, model.OperatorContains, model.NumberValue(2500)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := model.Item{Price: tc.price}
			assert.Equal(t, tc.want, filterengine.EvaluateCondition(item, tc.c, filterengine.TagIndex{}))
		})
	}
}

func TestEvaluateConditionCategoryVisibilityText(t *testing.T) {
	item := model.Item{
		Name:        "Milanesa Napolitana",
		Description: "Con papas fritas",
		Category:    "principales",
		IsVisible:   true,
	}

	tests := []struct {
		name string
		c    model.FilterCondition
		want bool
	}{
		{"category equals", cond(model.FieldCategory, model.OperatorEquals, model.StringValue("principales")), true},
		{"category equals mismatch", cond(model.FieldCategory, model.OperatorEquals, model.StringValue("bebidas")), false},
		{"category in", cond(model.FieldCategory, model.OperatorIn, model.ListValue("bebidas", "principales")), true},
		{"category in scalar", cond(model.FieldCategory, model.OperatorIn, model.StringValue("principales")), true},
		{"category unsupported", cond(model.FieldCategory, model.OperatorContains, model.StringValue("princ")), false},
		{"visible equals true", cond(model.FieldIsVisible, model.OperatorEquals, model.BoolValue(true)), true},
		{"visible equals false", cond(model.FieldIsVisible, model.OperatorEquals, model.BoolValue(false)), false},
		{"visible non-bool", cond(model.FieldIsVisible, model.OperatorEquals, model.StringValue("true")), false},
		{"visible unsupported", cond(model.FieldIsVisible, model.OperatorIn, model.BoolValue(true)), false},
		{"name contains case-insensitive", cond(model.FieldName, model.OperatorContains, model.StringValue("NAPOLI")), true},
		{"name equals case-insensitive", cond(model.FieldName, model.OperatorEquals, model.StringValue("milanesa napolitana")), true},
		{"name equals partial", cond(model.FieldName, model.OperatorEquals, model.StringValue("milanesa")), false},
		{"description contains", cond(model.FieldDescription, model.OperatorContains, model.StringValue("papas")), true},
		{"description unsupported", cond(model.FieldDescription, model.OperatorRange, model.StringValue("papas")), false},
		{"text non-string", cond(model.FieldName, model.OperatorContains, model.NumberValue(1)), false},
		{"unknown field", cond(model.ConditionField("image"), model.OperatorEquals, model.StringValue("")), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filterengine.EvaluateCondition(item, tc.c, filterengine.TagIndex{}))
		})
	}
}

func TestTagResolutionIsIdempotent(t *testing.T) {
	idx := filterengine.NewTagIndex(testTags)
	items := []model.Item{
		{TagIDs: []string{"tag_1"}},
		{TagIDs: []string{"tag_2", "tag_3"}},
		{},
	}

	for _, tag := range testTags {
		for _, op := range []model.ConditionOperator{model.OperatorContains, model.OperatorIn} {
			byID := cond(model.FieldTagIDs, op, model.StringValue(tag.ID))
			byKey := cond(model.FieldTagIDs, op, model.StringValue(tag.Key))
			for i, it := range items {
				assert.Equal(t,
					filterengine.EvaluateCondition(it, byID, idx),
					filterengine.EvaluateCondition(it, byKey, idx),
					"tag %s op %s item %d", tag.Key, op, i,
				)
			}
		}
	}
}

func TestTagIndexResolve(t *testing.T) {
	idx := filterengine.NewTagIndex(append(testTags, model.Tag{ID: "tag_9", Key: "vegetariano"}))

	id, ok := idx.Resolve("vegetariano")
	assert.True(t, ok)
	assert.Equal(t, "tag_1", id, "first tag with a key wins")

	id, ok = idx.Resolve("tag_9")
	assert.True(t, ok)
	assert.Equal(t, "tag_9", id)

	_, ok = idx.Resolve("missing")
	assert.False(t, ok)
}
