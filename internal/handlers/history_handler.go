package handlers

import (
	"log/slog"
	"net/http"

	"shoppinglist/internal/service"
)

// HistoryHandler serves reconstructed order history
type HistoryHandler struct {
	historyService *service.HistoryService
	log            *slog.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		log:            log,
	}
}

// OrderHistory handles GET /order-history. With grouped=true each
// order's items come back partitioned by category in display order.
func (h *HistoryHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("grouped") == "true" {
		orders, err := h.historyService.GroupedOrderHistory(ctx)
		if err != nil {
			h.log.Error("failed to fetch grouped order history", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to fetch order history", h.log)
			return
		}
		WriteJSON(w, http.StatusOK, orders, h.log)
		return
	}

	orders, err := h.historyService.OrderHistory(ctx)
	if err != nil {
		h.log.Error("failed to fetch order history", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch order history", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}
