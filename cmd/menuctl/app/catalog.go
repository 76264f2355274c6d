package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/catalog/repository/memory"
	"qr-menu/internal/model"
)

// catalogFile is the exported shape of a whole catalog.
type catalogFile struct {
	Categories []model.Category `json:"categories"`
	Tags       []fileTag        `json:"tags"`
	Items      []fileItem       `json:"items"`
	Filters    []fileFilter     `json:"filters"`
}

// The file rows take the same defaults as the admin API: an omitted visibility or
// active flag means true.
type fileItem struct {
	model.Item
	Visible *bool `json:"isVisible"`
}

type fileTag struct {
	model.Tag
	Active *bool `json:"isActive"`
}

type fileFilter struct {
	model.Filter
	Active *bool `json:"isActive"`
}

func orTrue(b *bool) bool { return b == nil || *b }

func readCatalog(path string) (catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalogFile{}, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return catalogFile{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for i := range f.Items {
		f.Items[i].IsVisible = orTrue(f.Items[i].Visible)
	}
	for i := range f.Tags {
		f.Tags[i].IsActive = orTrue(f.Tags[i].Active)
	}
	for i := range f.Filters {
		f.Filters[i].IsActive = orTrue(f.Filters[i].Active)
	}
	return f, nil
}

// tagKeys maps tag IDs to keys for display.
func (f catalogFile) tagKeys() map[string]string {
	out := make(map[string]string, len(f.Tags))
	for _, t := range f.Tags {
		out[t.ID] = t.Key
	}
	return out
}

func (f catalogFile) modelTags() []model.Tag {
	out := make([]model.Tag, len(f.Tags))
	for i, t := range f.Tags {
		out[i] = t.Tag
	}
	return out
}

// load copies the file into an in-memory repository. Rows without an ID get a
// positional one.
func (f catalogFile) load(ctx context.Context) (repo.Repository, error) {
	r := memory.New()

	for i, c := range f.Categories {
		if _, err := r.CreateCategory(ctx, repo.CreateCategoryOptions{
			ID: idOr(c.ID, "category", i), Name: c.Name, Description: c.Description, Order: c.Order,
		}); err != nil {
			return nil, err
		}
	}
	for i, t := range f.Tags {
		if _, err := r.CreateTag(ctx, repo.CreateTagOptions{
			ID: idOr(t.ID, "tag", i), Key: t.Key, Label: t.Label, Color: t.Color,
			Category: t.Category, IsActive: t.IsActive, Order: t.Order,
		}); err != nil {
			return nil, err
		}
	}
	for i, it := range f.Items {
		if _, err := r.CreateItem(ctx, repo.CreateItemOptions{
			ID: idOr(it.ID, "item", i), Name: it.Name, Description: it.Description, Price: it.Price,
			Category: it.Category, TagIDs: it.TagIDs, IsVisible: it.IsVisible, Image: it.Image,
		}); err != nil {
			return nil, err
		}
	}
	for i, fl := range f.Filters {
		if _, err := r.CreateFilter(ctx, repo.CreateFilterOptions{
			ID: idOr(fl.ID, "filter", i), Key: fl.Key, Label: fl.Label, Description: fl.Description,
			Icon: fl.Icon, Type: fl.Type, Predicate: fl.Predicate, IsActive: fl.IsActive, Order: fl.Order,
		}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func idOr(id, prefix string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", prefix, i+1)
}
