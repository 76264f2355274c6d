package repository

import (
	"context"

	"qr-menu/internal/model"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
	CategoryRepository
	TagRepository
	FilterRepository

	// Revision increases on every successful write. Readers use it to key caches.
	Revision(ctx context.Context) (int64, error)
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	CountItemsInCategory(ctx context.Context, categoryID string) (int, error)
	RemoveTagFromItems(ctx context.Context, tagID string) error
}

// CategoryRepository defines all data access methods for the Category entity.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	GetOneCategory(ctx context.Context, id string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// TagRepository defines all data access methods for the Tag entity.
type TagRepository interface {
	CreateTag(ctx context.Context, opt CreateTagOptions) (model.Tag, error)
	GetOneTag(ctx context.Context, opt GetOneTagOptions) (model.Tag, error)
	ListTags(ctx context.Context, opt ListTagsOptions) ([]model.Tag, error)
	UpdateTag(ctx context.Context, opt UpdateTagOptions) (model.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

// FilterRepository defines all data access methods for the Filter entity.
type FilterRepository interface {
	CreateFilter(ctx context.Context, opt CreateFilterOptions) (model.Filter, error)
	GetOneFilter(ctx context.Context, opt GetOneFilterOptions) (model.Filter, error)
	ListFilters(ctx context.Context, opt ListFiltersOptions) ([]model.Filter, error)
	UpdateFilter(ctx context.Context, opt UpdateFilterOptions) (model.Filter, error)
	DeleteFilter(ctx context.Context, id string) error
	ReorderFilters(ctx context.Context, orderedIDs []string) error
}
