package handlers

import (
	"log/slog"
	"net/http"

	"shoppinglist/internal/catalog"
)

// CategoryHandler serves the category catalog
type CategoryHandler struct {
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(cat *catalog.Catalog, log *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalog: cat,
		log:     log,
	}
}

// ListCategories handles GET /categories.
// When the catalog is running on the built-in fallback set, the
// response carries an X-Catalog-Degraded header so clients can
// surface a degraded-mode notice.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Degraded() {
		w.Header().Set("X-Catalog-Degraded", "true")
	}
	WriteJSON(w, http.StatusOK, h.catalog.Categories(), h.log)
}
