package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	CreateItem(ctx context.Context, input CreateItemInput) (ItemOutput, error)
	ListItems(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	DetailItem(ctx context.Context, id string) (ItemOutput, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (ItemOutput, error)
	DeleteItem(ctx context.Context, id string) error

	// Category CRUD
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)
	ListCategories(ctx context.Context) (ListCategoriesOutput, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (CategoryOutput, error)
	DeleteCategory(ctx context.Context, id string) error

	// Tag CRUD
	CreateTag(ctx context.Context, input CreateTagInput) (TagOutput, error)
	ListTags(ctx context.Context, input ListTagsInput) (ListTagsOutput, error)
	UpdateTag(ctx context.Context, input UpdateTagInput) (TagOutput, error)
	DeleteTag(ctx context.Context, id string) error

	// Filter CRUD
	CreateFilter(ctx context.Context, input CreateFilterInput) (FilterOutput, error)
	ListFilters(ctx context.Context, input ListFiltersInput) (ListFiltersOutput, error)
	UpdateFilter(ctx context.Context, input UpdateFilterInput) (FilterOutput, error)
	DeleteFilter(ctx context.Context, id string) error
	ReorderFilters(ctx context.Context, input ReorderFiltersInput) (ListFiltersOutput, error)
}
