package http

import (
	"qr-menu/internal/catalog"
	"qr-menu/internal/model"
)

// --- Request DTOs ---

type createItemReq struct {
	Name        string   `json:"name"        binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Price       float64  `json:"price"       binding:"gte=0"`
	Category    string   `json:"category"    binding:"required"`
	TagIDs      []string `json:"tagIds"`
	IsVisible   *bool    `json:"isVisible"`
	Image       string   `json:"image"`
}

func (r createItemReq) validate() error { return nil }

func (r createItemReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		TagIDs:      r.TagIDs,
		IsVisible:   r.IsVisible == nil || *r.IsVisible,
		Image:       r.Image,
	}
}

type listItemsReq struct {
	Category    string `form:"category"`
	VisibleOnly bool   `form:"visible"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (r listItemsReq) validate() error { return nil }

func (r listItemsReq) toInput() catalog.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return catalog.ListItemsInput{
		Category:    r.Category,
		VisibleOnly: r.VisibleOnly,
		Limit:       limit,
		Offset:      r.Offset,
	}
}

type updateItemReq struct {
	ID          string    `json:"-"` // populated from URI param
	Name        string    `json:"name"        binding:"omitempty,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Price       *float64  `json:"price"       binding:"omitempty,gte=0"`
	Category    string    `json:"category"`
	TagIDs      *[]string `json:"tagIds"`
	IsVisible   *bool     `json:"isVisible"`
	Image       *string   `json:"image"`
}

func (r updateItemReq) validate() error { return nil }

func (r updateItemReq) toInput() catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		TagIDs:      r.TagIDs,
		IsVisible:   r.IsVisible,
		Image:       r.Image,
	}
}

type createCategoryReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Order       int    `json:"sortOrder"`
}

func (r createCategoryReq) toInput() catalog.CreateCategoryInput {
	return catalog.CreateCategoryInput{Name: r.Name, Description: r.Description, Order: r.Order}
}

type updateCategoryReq struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"        binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Order       *int    `json:"sortOrder"`
}

func (r updateCategoryReq) toInput() catalog.UpdateCategoryInput {
	return catalog.UpdateCategoryInput{ID: r.ID, Name: r.Name, Description: r.Description, Order: r.Order}
}

type createTagReq struct {
	Key      string `json:"key"      binding:"required,max=64"`
	Label    string `json:"label"    binding:"required,max=255"`
	Color    string `json:"color"`
	Category string `json:"category"`
	IsActive *bool  `json:"isActive"`
	Order    int    `json:"sortOrder"`
}

func (r createTagReq) toInput() catalog.CreateTagInput {
	return catalog.CreateTagInput{
		Key:      r.Key,
		Label:    r.Label,
		Color:    r.Color,
		Category: model.TagCategory(r.Category),
		IsActive: r.IsActive == nil || *r.IsActive,
		Order:    r.Order,
	}
}

type updateTagReq struct {
	ID       string  `json:"-"`
	Key      string  `json:"key"   binding:"omitempty,max=64"`
	Label    string  `json:"label" binding:"omitempty,max=255"`
	Color    *string `json:"color"`
	Category string  `json:"category"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"sortOrder"`
}

func (r updateTagReq) toInput() catalog.UpdateTagInput {
	return catalog.UpdateTagInput{
		ID:       r.ID,
		Key:      r.Key,
		Label:    r.Label,
		Color:    r.Color,
		Category: model.TagCategory(r.Category),
		IsActive: r.IsActive,
		Order:    r.Order,
	}
}

type createFilterReq struct {
	Key         string                `json:"key"   binding:"required,max=64"`
	Label       string                `json:"label" binding:"required,max=255"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
	Type        string                `json:"type"  binding:"required"`
	Predicate   model.FilterPredicate `json:"predicate"`
	IsActive    *bool                 `json:"isActive"`
	Order       int                   `json:"sortOrder"`
}

func (r createFilterReq) toInput() catalog.CreateFilterInput {
	return catalog.CreateFilterInput{
		Key:         r.Key,
		Label:       r.Label,
		Description: r.Description,
		Icon:        r.Icon,
		Type:        model.FilterType(r.Type),
		Predicate:   r.Predicate,
		IsActive:    r.IsActive == nil || *r.IsActive,
		Order:       r.Order,
	}
}

type updateFilterReq struct {
	ID          string                 `json:"-"`
	Key         string                 `json:"key"   binding:"omitempty,max=64"`
	Label       string                 `json:"label" binding:"omitempty,max=255"`
	Description *string                `json:"description"`
	Icon        *string                `json:"icon"`
	Type        string                 `json:"type"`
	Predicate   *model.FilterPredicate `json:"predicate"`
	IsActive    *bool                  `json:"isActive"`
	Order       *int                   `json:"sortOrder"`
}

func (r updateFilterReq) toInput() catalog.UpdateFilterInput {
	return catalog.UpdateFilterInput{
		ID:          r.ID,
		Key:         r.Key,
		Label:       r.Label,
		Description: r.Description,
		Icon:        r.Icon,
		Type:        model.FilterType(r.Type),
		Predicate:   r.Predicate,
		IsActive:    r.IsActive,
		Order:       r.Order,
	}
}

type reorderFiltersReq struct {
	IDs []string `json:"ids" binding:"required"`
}

func (r reorderFiltersReq) toInput() catalog.ReorderFiltersInput {
	return catalog.ReorderFiltersInput{IDs: r.IDs}
}

// --- Response DTOs ---

type itemResp struct {
	Item model.Item `json:"item"`
}

func (h *handler) newItemResp(out catalog.ItemOutput) itemResp {
	return itemResp{Item: out.Item}
}

type listItemsResp struct {
	Items  []model.Item `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

func (h *handler) newListItemsResp(out catalog.ListItemsOutput) listItemsResp {
	items := out.Items
	if items == nil {
		items = []model.Item{}
	}
	return listItemsResp{Items: items, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}

type categoryResp struct {
	Category model.Category `json:"category"`
}

type listCategoriesResp struct {
	Categories []model.Category `json:"categories"`
}

type tagResp struct {
	Tag model.Tag `json:"tag"`
}

type listTagsResp struct {
	Tags []model.Tag `json:"tags"`
}

type filterResp struct {
	Filter   model.Filter `json:"filter"`
	Warnings []string     `json:"warnings,omitempty"`
}

func (h *handler) newFilterResp(out catalog.FilterOutput) filterResp {
	return filterResp{Filter: out.Filter, Warnings: out.Warnings}
}

type listFiltersResp struct {
	Filters []model.Filter `json:"filters"`
}
