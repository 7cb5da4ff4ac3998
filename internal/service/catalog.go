// Package service contains the business logic for the storefront service.
package service

import (
	"context"
	"strings"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// Catalog supplies the immutable item list for the session and filtered
// views over it.
type Catalog interface {
	List() []model.Item
	Get(id string) (model.Item, bool)
	// Search returns items whose name or category contains the query,
	// case-insensitive. An empty query returns the full list.
	Search(query string) []model.Item
}

// CatalogLoader obtains the item list at startup. The catalog does not
// care whether the loader is a static seed or a remote API.
type CatalogLoader func(ctx context.Context) ([]model.Item, error)

// StaticCatalog is an in-memory Catalog loaded once at construction.
type StaticCatalog struct {
	items []model.Item
	byID  map[string]model.Item
}

// NewStaticCatalog loads items through the given loader. A nil loader
// uses the built-in seed set.
func NewStaticCatalog(ctx context.Context, loader CatalogLoader) (*StaticCatalog, error) {
	if loader == nil {
		loader = SeedLoader
	}
	items, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &StaticCatalog{items: items, byID: byID}, nil
}

// List returns a copy of the full item list.
func (c *StaticCatalog) List() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given ID.
func (c *StaticCatalog) Get(id string) (model.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Search filters items by a case-insensitive substring match over name
// and category.
func (c *StaticCatalog) Search(query string) []model.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.List()
	}

	var out []model.Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Category), query) {
			out = append(out, item)
		}
	}
	return out
}
