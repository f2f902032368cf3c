package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// ProductValidator decides whether a product name belongs to a
// category. A negative verdict is a business outcome, not an error.
type ProductValidator interface {
	Validate(ctx context.Context, productName, categoryID string) bool
}

// CheckHandler handles category-match validation requests
type CheckHandler struct {
	validator ProductValidator
	log       *slog.Logger
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(validator ProductValidator, log *slog.Logger) *CheckHandler {
	return &CheckHandler{
		validator: validator,
		log:       log,
	}
}

// CheckResponse is the verdict payload
type CheckResponse struct {
	IsMatch bool `json:"isMatch"`
}

// Check handles GET /check?productName=...&selectedCategoryId=...
// Missing parameters are a client error, distinct from a classifier
// "no" which is a 200 with isMatch false.
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	productName := r.URL.Query().Get("productName")
	categoryID := r.URL.Query().Get("selectedCategoryId")

	if strings.TrimSpace(productName) == "" || strings.TrimSpace(categoryID) == "" {
		h.log.Warn("check called with missing parameters",
			"product_name", productName,
			"category_id", categoryID,
		)
		WriteError(w, http.StatusBadRequest, "productName and selectedCategoryId are required", h.log)
		return
	}

	isMatch := h.validator.Validate(r.Context(), productName, categoryID)
	WriteJSON(w, http.StatusOK, CheckResponse{IsMatch: isMatch}, h.log)
}
