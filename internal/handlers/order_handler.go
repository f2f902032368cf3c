package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shoppinglist/internal/models"
	"shoppinglist/internal/service"
)

// OrderHandler handles order submission
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrderResponse is the successful commit payload
type CreateOrderResponse struct {
	Message         string `json:"message"`
	OrderID         string `json:"orderId"`
	SavedItemsCount int    `json:"savedItemsCount"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "No items in cart to save.", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case errors.Is(err, service.ErrNoValidItems):
			WriteError(w, http.StatusBadRequest, "No valid items to save after category check.", h.log)
		default:
			h.log.Error("failed to save order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to save order", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, CreateOrderResponse{
		Message:         "Order saved successfully!",
		OrderID:         result.OrderID,
		SavedItemsCount: result.SavedItemsCount,
	}, h.log)
}
