package usecase_test

import (
	"context"
	"errors"
	"testing"

	"qr-menu/internal/catalog"
	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/catalog/repository/memory"
	"qr-menu/internal/catalog/usecase"
	"qr-menu/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var errStore = errors.New("store down")

// failingRepo wraps a working repository and fails the hooked calls.
type failingRepo struct {
	repo.Repository
	getOneCategoryFunc func(id string) (model.Category, error)
	listTagsFunc       func() ([]model.Tag, error)
}

func (f *failingRepo) GetOneCategory(ctx context.Context, id string) (model.Category, error) {
	if f.getOneCategoryFunc != nil {
		return f.getOneCategoryFunc(id)
	}
	return f.Repository.GetOneCategory(ctx, id)
}

func (f *failingRepo) ListTags(ctx context.Context, opt repo.ListTagsOptions) ([]model.Tag, error) {
	if f.listTagsFunc != nil {
		return f.listTagsFunc()
	}
	return f.Repository.ListTags(ctx, opt)
}

type fixture struct {
	uc       catalog.UseCase
	repo     repo.Repository
	category model.Category
	veggie   model.Tag
	spicy    model.Tag
}

// newFixture seeds one category and two tags.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	r := memory.New()
	uc := usecase.New(r, &mockLogger{})

	cat, err := uc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "Principales", Order: 1})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	veggie, err := uc.CreateTag(ctx, catalog.CreateTagInput{Key: "vegetariano", Label: "Vegetariano", Category: model.TagCategoryDiet, IsActive: true})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	spicy, err := uc.CreateTag(ctx, catalog.CreateTagInput{Key: "picante", Label: "Picante", IsActive: true})
	if err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	return fixture{uc: uc, repo: r, category: cat.Category, veggie: veggie.Tag, spicy: spicy.Tag}
}

func ptr[T any](v T) *T { return &v }
