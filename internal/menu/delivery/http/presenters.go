package http

import (
	"qr-menu/internal/menu"
	"qr-menu/internal/model"
)

type getMenuReq struct {
	Filter string `form:"filter"`
}

type draftItemReq struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"        binding:"required,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Price       float64  `json:"price"       binding:"gte=0"`
	Category    string   `json:"category"    binding:"required"`
	TagIDs      []string `json:"tagIds"`
	Image       string   `json:"image"`
}

type previewReq struct {
	Filter string         `json:"filter"`
	Drafts []draftItemReq `json:"drafts" binding:"dive"`
}

func (r previewReq) toInput() menu.PreviewInput {
	drafts := make([]model.Item, len(r.Drafts))
	for i, d := range r.Drafts {
		tagIDs := d.TagIDs
		if tagIDs == nil {
			tagIDs = []string{}
		}
		drafts[i] = model.Item{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Category:    d.Category,
			TagIDs:      tagIDs,
			IsVisible:   true,
			Image:       d.Image,
		}
	}
	return menu.PreviewInput{FilterKey: r.Filter, Drafts: drafts}
}

type groupResp struct {
	Category model.Category `json:"category"`
	Items    []model.Item   `json:"items"`
}

type menuResp struct {
	ActiveFilter string      `json:"activeFilter"`
	Revision     int64       `json:"revision"`
	Categories   []groupResp `json:"categories"`
}

func (h *handler) newMenuResp(out menu.MenuOutput) menuResp {
	groups := make([]groupResp, len(out.Groups))
	for i, g := range out.Groups {
		groups[i] = groupResp{Category: g.Category, Items: g.Items}
	}
	return menuResp{ActiveFilter: out.ActiveFilter, Revision: out.Revision, Categories: groups}
}

type filterOptionResp struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type,omitempty"`
}

type listFiltersResp struct {
	Filters  []filterOptionResp `json:"filters"`
	Revision int64              `json:"revision"`
}

func (h *handler) newListFiltersResp(out menu.ListFiltersOutput) listFiltersResp {
	opts := make([]filterOptionResp, len(out.Filters))
	for i, f := range out.Filters {
		opts[i] = filterOptionResp{Key: f.Key, Label: f.Label, Icon: f.Icon, Type: string(f.Type)}
	}
	return listFiltersResp{Filters: opts, Revision: out.Revision}
}
