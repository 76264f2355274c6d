package filterengine

import "qr-menu/internal/model"

// EvaluatePredicate combines the conditions of p with its logic. A predicate without
// conditions matches every item; an unknown logic matches none.
func EvaluatePredicate(item model.Item, p model.FilterPredicate, tags TagIndex) bool {
	if len(p.Conditions) == 0 {
		return true
	}

	switch p.Logic {
	case model.LogicAnd:
		for _, c := range p.Conditions {
			if !EvaluateCondition(item, c, tags) {
				return false
			}
		}
		return true
	case model.LogicOr:
		for _, c := range p.Conditions {
			if EvaluateCondition(item, c, tags) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FilterItems returns the items matching p, in input order.
func FilterItems(items []model.Item, p model.FilterPredicate, tags TagIndex) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if EvaluatePredicate(it, p, tags) {
			out = append(out, it)
		}
	}
	return out
}
