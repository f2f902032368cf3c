package catalog

import (
	"context"
	"log/slog"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repository"
)

// builtin is the fixed fallback category set served when the backing
// store is unreachable. It is also the seed data for a fresh store.
var builtin = []models.Category{
	{ID: "1", Name: "cleaning supplies"},
	{ID: "2", Name: "cheeses"},
	{ID: "3", Name: "fruits & vegetables"},
	{ID: "4", Name: "meat & fish"},
	{ID: "5", Name: "baked goods"},
}

// Builtin returns a copy of the built-in category set
func Builtin() []models.Category {
	out := make([]models.Category, len(builtin))
	copy(out, builtin)
	return out
}

// Catalog is the authoritative in-process list of valid categories,
// loaded once and immutable afterwards.
type Catalog struct {
	categories []models.Category
	byID       map[string]models.Category
	degraded   bool
}

// Load reads the category list from the repository. If the read
// fails, the catalog serves the built-in set instead and reports
// itself degraded; the session keeps working.
func Load(ctx context.Context, repo repository.CategoryRepository, log *slog.Logger) *Catalog {
	categories, err := repo.GetAll(ctx)
	if err != nil {
		log.Warn("category store unreachable, serving built-in categories in degraded mode", "error", err)
		return newCatalog(Builtin(), true)
	}
	if len(categories) == 0 {
		log.Warn("category store returned no categories, serving built-in categories in degraded mode")
		return newCatalog(Builtin(), true)
	}

	log.Info("categories loaded", "count", len(categories))
	return newCatalog(categories, false)
}

func newCatalog(categories []models.Category, degraded bool) *Catalog {
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Catalog{
		categories: categories,
		byID:       byID,
		degraded:   degraded,
	}
}

// Categories returns all categories in stored order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// GetByID resolves a category ID against the loaded set
func (c *Catalog) GetByID(id string) (models.Category, bool) {
	category, ok := c.byID[id]
	return category, ok
}

// Degraded reports whether the catalog is serving the built-in
// fallback set instead of stored categories
func (c *Catalog) Degraded() bool {
	return c.degraded
}
