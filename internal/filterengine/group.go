package filterengine

import "qr-menu/internal/model"

// CategoryGroup is one menu section ready for rendering.
type CategoryGroup struct {
	Category model.Category
	Items    []model.Item
}

// GroupByCategory partitions items by category in the order of categories. Every
// category gets a group, possibly empty. Drafts are appended after the persisted items
// of their category whether or not they match the active filter. A draft whose ID is
// already in the group replaces that entry in place. Items pointing at a category that
// is not listed are left out.
func GroupByCategory(categories []model.Category, items []model.Item, drafts []model.Item) []CategoryGroup {
	groups := make([]CategoryGroup, len(categories))
	pos := make(map[string]int, len(categories))
	for i, c := range categories {
		groups[i] = CategoryGroup{Category: c, Items: []model.Item{}}
		if _, dup := pos[c.ID]; !dup {
			pos[c.ID] = i
		}
	}

	for _, it := range items {
		if i, ok := pos[it.Category]; ok {
			groups[i].Items = append(groups[i].Items, it)
		}
	}
	for _, it := range drafts {
		i, ok := pos[it.Category]
		if !ok {
			continue
		}
		if j := indexOfID(groups[i].Items, it.ID); j >= 0 {
			groups[i].Items[j] = it
			continue
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

func indexOfID(items []model.Item, id string) int {
	if id == "" {
		return -1
	}
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
