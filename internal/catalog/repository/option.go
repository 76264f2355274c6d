package repository

import "qr-menu/internal/model"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	TagIDs      []string
	IsVisible   bool
	Image       string
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// Zero Limit returns every matching item.
type ListItemsOptions struct {
	Category    string
	VisibleOnly bool
	Limit       int
	Offset      int
}

// UpdateItemOptions holds the full new state of an existing Item.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	TagIDs      []string
	IsVisible   bool
	Image       string
}

type CreateCategoryOptions struct {
	ID          string
	Name        string
	Description string
	Order       int
}

type UpdateCategoryOptions struct {
	ID          string
	Name        string
	Description string
	Order       int
}

type CreateTagOptions struct {
	ID       string
	Key      string
	Label    string
	Color    string
	Category model.TagCategory
	IsActive bool
	Order    int
}

// GetOneTagOptions holds filter parameters for fetching a single Tag.
// All non-empty fields are applied as AND conditions.
type GetOneTagOptions struct {
	ID  string
	Key string
}

type ListTagsOptions struct {
	ActiveOnly bool
}

type UpdateTagOptions struct {
	ID       string
	Key      string
	Label    string
	Color    string
	Category model.TagCategory
	IsActive bool
	Order    int
}

type CreateFilterOptions struct {
	ID          string
	Key         string
	Label       string
	Description string
	Icon        string
	Type        model.FilterType
	Predicate   model.FilterPredicate
	IsActive    bool
	Order       int
}

// GetOneFilterOptions holds filter parameters for fetching a single Filter.
// All non-empty fields are applied as AND conditions.
type GetOneFilterOptions struct {
	ID  string
	Key string
}

type ListFiltersOptions struct {
	ActiveOnly bool
}

type UpdateFilterOptions struct {
	ID          string
	Key         string
	Label       string
	Description string
	Icon        string
	Type        model.FilterType
	Predicate   model.FilterPredicate
	IsActive    bool
	Order       int
}
