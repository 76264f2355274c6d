package menu

import (
	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

// GetMenuInput selects the filter to apply. An empty key behaves like "all".
type GetMenuInput struct {
	FilterKey string
}

// PreviewInput renders the menu as the admin would see it after saving Drafts.
type PreviewInput struct {
	FilterKey string
	Drafts    []model.Item
}

// MenuOutput is the grouped menu. ActiveFilter is the key of the filter that was
// actually applied, or "all" when selection fell back to the full catalog.
type MenuOutput struct {
	ActiveFilter string
	Groups       []filterengine.CategoryGroup
	Revision     int64
}

// FilterOption is one entry of the customer filter bar.
type FilterOption struct {
	Key   string
	Label string
	Icon  string
	Type  model.FilterType
}

type ListFiltersOutput struct {
	Filters  []FilterOption
	Revision int64
}
