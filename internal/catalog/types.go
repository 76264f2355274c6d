package catalog

import "qr-menu/internal/model"

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	TagIDs      []string
	IsVisible   bool
	Image       string
}

type ListItemsInput struct {
	Category    string
	VisibleOnly bool
	Limit       int
	Offset      int
}

// UpdateItemInput is a partial update: empty strings and nil pointers keep the
// stored value.
type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Price       *float64
	Category    string
	TagIDs      *[]string
	IsVisible   *bool
	Image       *string
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Order       int
}

type UpdateCategoryInput struct {
	ID          string
	Name        string
	Description *string
	Order       *int
}

type CreateTagInput struct {
	Key      string
	Label    string
	Color    string
	Category model.TagCategory
	IsActive bool
	Order    int
}

type ListTagsInput struct {
	ActiveOnly bool
}

type UpdateTagInput struct {
	ID       string
	Key      string
	Label    string
	Color    *string
	Category model.TagCategory
	IsActive *bool
	Order    *int
}

type CreateFilterInput struct {
	Key         string
	Label       string
	Description string
	Icon        string
	Type        model.FilterType
	Predicate   model.FilterPredicate
	IsActive    bool
	Order       int
}

type ListFiltersInput struct {
	ActiveOnly bool
}

type UpdateFilterInput struct {
	ID          string
	Key         string
	Label       string
	Description *string
	Icon        *string
	Type        model.FilterType
	Predicate   *model.FilterPredicate
	IsActive    *bool
	Order       *int
}

// ReorderFiltersInput lists filter IDs in their new display order. It must name
// every stored filter exactly once.
type ReorderFiltersInput struct {
	IDs []string
}

// --- UseCase Outputs ---

type ItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items  []model.Item
	Total  int
	Limit  int
	Offset int
}

type CategoryOutput struct {
	Category model.Category
}

type ListCategoriesOutput struct {
	Categories []model.Category
}

type TagOutput struct {
	Tag model.Tag
}

type ListTagsOutput struct {
	Tags []model.Tag
}

// FilterOutput carries the stored filter plus non-blocking warnings, such as tag
// references that do not resolve yet.
type FilterOutput struct {
	Filter   model.Filter
	Warnings []string
}

type ListFiltersOutput struct {
	Filters []model.Filter
}
