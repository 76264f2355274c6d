package model

import "time"

// TagCategory classifies a tag.
type TagCategory string

const (
	TagCategoryDiet    TagCategory = "diet"
	TagCategoryFeature TagCategory = "feature"
	TagCategoryCustom  TagCategory = "custom"
)

// Valid reports whether c is a known tag category.
func (c TagCategory) Valid() bool {
	switch c {
	case TagCategoryDiet, TagCategoryFeature, TagCategoryCustom:
		return true
	}
	return false
}

// Tag is a labeled attribute an item may carry. Filters reference tags by Key,
// items store the ID.
type Tag struct {
	ID        string      `json:"id"`
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	Color     string      `json:"color,omitempty"`
	Category  TagCategory `json:"category"`
	IsActive  bool        `json:"isActive"`
	Order     int         `json:"sortOrder"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
