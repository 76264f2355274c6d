package model

import "time"

// Item is one catalog entry (dish or drink).
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"` // Category.ID
	TagIDs      []string  `json:"tagIds"`
	IsVisible   bool      `json:"isVisible"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasTag reports whether the item carries the tag identifier id.
func (i Item) HasTag(id string) bool {
	for _, t := range i.TagIDs {
		if t == id {
			return true
		}
	}
	return false
}
