package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/mailtriage/internal/client/client"
	"github.com/dmitrijs2005/mailtriage/internal/client/models"
	"github.com/dmitrijs2005/mailtriage/internal/client/state"
)

// NeutralColor is shown for categories missing from the cache.
const NeutralColor = "#6B7280"

// Catalog owns the process-wide category cache.
type Catalog struct {
	client client.Client
	state  *state.AppState
}

func NewCatalog(c client.Client, st *state.AppState) *Catalog {
	return &Catalog{client: c, state: st}
}

// Ensure loads the cache if it has never been loaded.
func (c *Catalog) Ensure(ctx context.Context) ([]models.Category, error) {
	if cats, loaded := c.state.Categories(); loaded {
		return cats, nil
	}
	return c.Reload(ctx)
}

// Reload refetches the categories. On failure the previous cache is kept.
func (c *Catalog) Reload(ctx context.Context) ([]models.Category, error) {
	cats, err := c.client.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.state.SetCategories(cats)
	return cats, nil
}

func (c *Catalog) Lookup(id int64) (models.Category, bool) {
	cats, _ := c.state.Categories()
	for _, cat := range cats {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// ColorFor resolves a category's display color, falling back to NeutralColor.
func (c *Catalog) ColorFor(id int64) string {
	cat, ok := c.Lookup(id)
	if !ok || strings.TrimSpace(cat.Color) == "" {
		return NeutralColor
	}
	return cat.Color
}
