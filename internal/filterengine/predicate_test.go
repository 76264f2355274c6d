package filterengine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

// randomCondition draws from a pool that mixes matching, non-matching and broken
// conditions.
func randomCondition(r *rand.Rand) model.FilterCondition {
	pool := []model.FilterCondition{
		cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("vegetariano")),
		cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("tag_2")),
		cond(model.FieldTagIDs, model.OperatorIn, model.ListValue("picante", "nope")),
		cond(model.FieldTagIDs, model.OperatorExists, model.Value{}),
		cond(model.FieldPrice, model.OperatorRange, model.RangeValue(0, float64(r.IntN(5000)))),
		cond(model.FieldPrice, model.OperatorEquals, model.NumberValue(float64(r.IntN(3)*1000))),
		cond(model.FieldCategory, model.OperatorEquals, model.StringValue("bebidas")),
		cond(model.FieldCategory, model.OperatorIn, model.ListValue("entradas", "postres")),
		cond(model.FieldIsVisible, model.OperatorEquals, model.BoolValue(r.IntN(2) == 0)),
		cond(model.FieldName, model.OperatorContains, model.StringValue("a")),
		cond(model.FieldDescription, model.OperatorEquals, model.StringValue("fresco")),
		cond(model.ConditionField("bogus"), model.OperatorEquals, model.StringValue("x")),
		cond(model.FieldPrice, model.OperatorExists, model.Value{}),
	}
	return pool[r.IntN(len(pool))]
}

func randomItem(r *rand.Rand) model.Item {
	cats := []string{"entradas", "bebidas", "postres"}
	names := []string{"Agua", "Flan", "Empanada", "Soda"}
	tagPool := []string{"tag_1", "tag_2", "tag_3"}

	var tags []string
	for _, t := range tagPool {
		if r.IntN(2) == 0 {
			tags = append(tags, t)
		}
	}
	return model.Item{
		Name:        names[r.IntN(len(names))],
		Description: []string{"fresco", "casero", ""}[r.IntN(3)],
		Price:       float64(r.IntN(5) * 1000),
		Category:    cats[r.IntN(len(cats))],
		TagIDs:      tags,
		IsVisible:   r.IntN(2) == 0,
	}
}

func TestEvaluatePredicateMatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 42))
	idx := filterengine.NewTagIndex(testTags)

	for n := 0; n < 500; n++ {
		item := randomItem(r)
		conds := make([]model.FilterCondition, 1+r.IntN(5))
		for i := range conds {
			conds[i] = randomCondition(r)
		}

		and, or := true, false
		for _, c := range conds {
			res := filterengine.EvaluateCondition(item, c, idx)
			and = and && res
			or = or || res
		}

		assert.Equal(t, and, filterengine.EvaluatePredicate(item, model.FilterPredicate{Conditions: conds, Logic: model.LogicAnd}, idx), "AND run %d", n)
		assert.Equal(t, or, filterengine.EvaluatePredicate(item, model.FilterPredicate{Conditions: conds, Logic: model.LogicOr}, idx), "OR run %d", n)
	}
}

func TestEvaluatePredicateEmptyMatchesAll(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 100; n++ {
		item := randomItem(r)
		for _, logic := range []model.PredicateLogic{model.LogicAnd, model.LogicOr, "", "XOR"} {
			assert.True(t, filterengine.EvaluatePredicate(item, model.FilterPredicate{Logic: logic}, filterengine.TagIndex{}))
		}
	}
}

func TestEvaluatePredicateUnknownLogic(t *testing.T) {
	item := model.Item{Price: 100}
	p := model.FilterPredicate{
		Conditions: []model.FilterCondition{cond(model.FieldPrice, model.OperatorEquals, model.NumberValue(100))},
		Logic:      "and",
	}
	assert.False(t, filterengine.EvaluatePredicate(item, p, filterengine.TagIndex{}))
}

func TestEvaluatePredicateMixedLogic(t *testing.T) {
	item := model.Item{Price: 2000, Category: "bebidas"}
	conds := []model.FilterCondition{
		cond(model.FieldCategory, model.OperatorEquals, model.StringValue("bebidas")),
		cond(model.FieldCategory, model.OperatorEquals, model.StringValue("postres")),
	}

	assert.True(t, filterengine.EvaluatePredicate(item, model.FilterPredicate{Conditions: conds, Logic: model.LogicOr}, filterengine.TagIndex{}))
	assert.False(t, filterengine.EvaluatePredicate(item, model.FilterPredicate{Conditions: conds, Logic: model.LogicAnd}, filterengine.TagIndex{}))
}

func TestFilterItemsPriceScenario(t *testing.T) {
	items := []model.Item{{ID: "a", Price: 2000}, {ID: "b", Price: 3000}, {ID: "c", Price: 3001}}
	p := model.FilterPredicate{
		Conditions: []model.FilterCondition{cond(model.FieldPrice, model.OperatorRange, model.RangeValue(0, 3000))},
		Logic:      model.LogicAnd,
	}

	got := filterengine.FilterItems(items, p, filterengine.TagIndex{})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestFilterItemsTagScenario(t *testing.T) {
	idx := filterengine.NewTagIndex([]model.Tag{{ID: "tag_1", Key: "vegetariano"}})
	items := []model.Item{{ID: "a", TagIDs: []string{"tag_1"}}, {ID: "b", TagIDs: []string{}}}
	p := model.FilterPredicate{
		Conditions: []model.FilterCondition{cond(model.FieldTagIDs, model.OperatorContains, model.StringValue("vegetariano"))},
		Logic:      model.LogicAnd,
	}

	got := filterengine.FilterItems(items, p, idx)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterItemsPreservesOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	idx := filterengine.NewTagIndex(testTags)

	items := make([]model.Item, 50)
	for i := range items {
		items[i] = randomItem(r)
		items[i].ID = string(rune('A' + i))
	}
	p := model.FilterPredicate{Conditions: []model.FilterCondition{randomCondition(r), randomCondition(r)}, Logic: model.LogicOr}

	got := filterengine.FilterItems(items, p, idx)
	last := -1
	for _, it := range got {
		pos := -1
		for i := range items {
			if items[i].ID == it.ID {
				pos = i
				break
			}
		}
		require.Greater(t, pos, last, "item %s out of order", it.ID)
		last = pos
	}
}
