package store

import (
	"context"
	"strings"

	"samko/internal/model"
)

// Categories is the fixed, read-only set of blog categories.
type Categories struct {
	list []model.BlogCategory
}

func NewCategories() *Categories {
	return &Categories{list: append([]model.BlogCategory{}, model.DefaultCategories...)}
}

// List returns every category in definition order.
func (c *Categories) List(ctx context.Context) []model.BlogCategory {
	return append([]model.BlogCategory{}, c.list...)
}

// Find resolves a category by slug or by name, ignoring case.
func (c *Categories) Find(key string) (model.BlogCategory, bool) {
	for _, cat := range c.list {
		if cat.Slug == key || strings.EqualFold(cat.Name, key) {
			return cat, true
		}
	}
	return model.BlogCategory{}, false
}
