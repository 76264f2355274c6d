// Package filterengine evaluates admin-defined menu filters against catalog items.
//
// Evaluation is pure and never fails: a condition it cannot make sense of evaluates to
// false, so a broken filter record hides items instead of surfacing the wrong ones.
// Selecting a filter that does not exist shows the whole catalog.
package filterengine

import (
	"math"
	"strings"

	"qr-menu/internal/model"
)

// EvaluateCondition reports whether item satisfies cond.
func EvaluateCondition(item model.Item, cond model.FilterCondition, tags TagIndex) bool {
	switch cond.Field {
	case model.FieldTagIDs:
		return evalTags(item, cond, tags)
	case model.FieldPrice:
		return evalPrice(item.Price, cond)
	case model.FieldCategory:
		return evalCategory(item.Category, cond)
	case model.FieldIsVisible:
		return evalVisibility(item.IsVisible, cond)
	case model.FieldName:
		return evalText(item.Name, cond)
	case model.FieldDescription:
		return evalText(item.Description, cond)
	default:
		return false
	}
}

func evalTags(item model.Item, cond model.FilterCondition, tags TagIndex) bool {
	switch cond.Operator {
	case model.OperatorContains:
		ref, ok := cond.Value.AsString()
		if !ok {
			return false
		}
		return tags.itemHasTag(item, ref)
	case model.OperatorIn:
		for _, ref := range cond.Value.Strings() {
			if tags.itemHasTag(item, ref) {
				return true
			}
		}
		return false
	case model.OperatorExists:
		return len(item.TagIDs) > 0
	default:
		return false
	}
}

func evalPrice(price float64, cond model.FilterCondition) bool {
	switch cond.Operator {
	case model.OperatorRange:
		lo, hi := PriceBounds(cond.Value)
		return lo <= price && price <= hi
	case model.OperatorEquals:
		n, ok := cond.Value.AsNumber()
		return ok && price == n
	default:
		return false
	}
}

// PriceBounds returns the inclusive bounds of a range value. A missing min is 0, a
// missing max is +Inf, and a value that is not a range at all is [0, +Inf).
func PriceBounds(v model.Value) (lo, hi float64) {
	lo, hi = 0, math.Inf(1)
	r, ok := v.AsRange()
	if !ok {
		return lo, hi
	}
	if r.Min != nil {
		lo = *r.Min
	}
	if r.Max != nil {
		hi = *r.Max
	}
	return lo, hi
}

func evalCategory(category string, cond model.FilterCondition) bool {
	switch cond.Operator {
	case model.OperatorEquals:
		s, ok := cond.Value.AsString()
		return ok && category == s
	case model.OperatorIn:
		for _, s := range cond.Value.Strings() {
			if category == s {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func evalVisibility(visible bool, cond model.FilterCondition) bool {
	if cond.Operator != model.OperatorEquals {
		return false
	}
	b, ok := cond.Value.AsBool()
	return ok && visible == b
}

func evalText(text string, cond model.FilterCondition) bool {
	s, ok := cond.Value.AsString()
	if !ok {
		return false
	}
	switch cond.Operator {
	case model.OperatorContains:
		return strings.Contains(strings.ToLower(text), strings.ToLower(s))
	case model.OperatorEquals:
		return strings.EqualFold(text, s)
	default:
		return false
	}
}
