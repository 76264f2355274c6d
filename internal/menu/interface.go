package menu

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetMenu(ctx context.Context, input GetMenuInput) (MenuOutput, error)
	ListFilters(ctx context.Context) (ListFiltersOutput, error)
	Preview(ctx context.Context, input PreviewInput) (MenuOutput, error)
}
