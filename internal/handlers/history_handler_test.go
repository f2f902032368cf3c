package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repository"
	"shoppinglist/internal/service"
	"shoppinglist/pkg/logger"
)

func newHistoryFixture() (*OrderHandler, *HistoryHandler) {
	categoryRepo := repository.NewInMemoryCategoryRepository([]models.Category{
		{ID: "2", Name: "cheeses"},
		{ID: "3", Name: "fruits & vegetables"},
	})
	itemRepo := repository.NewInMemoryItemRepository()
	log := logger.New("error")
	orderService := service.NewOrderService(categoryRepo, itemRepo, log)
	historyService := service.NewHistoryService(itemRepo, log)
	return NewOrderHandler(orderService, log), NewHistoryHandler(historyService, log)
}

func submitOrder(t *testing.T, handler *OrderHandler, items []models.OrderItemInput) string {
	t.Helper()

	body, err := json.Marshal(models.OrderRequest{Items: items})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("CreateOrder status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp CreateOrderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.OrderID
}

func TestHistoryHandler_OrderHistory(t *testing.T) {
	orderHandler, historyHandler := newHistoryFixture()

	firstID := submitOrder(t, orderHandler, []models.OrderItemInput{
		{Name: "apple", CategoryID: "3", Quantity: 2},
	})
	secondID := submitOrder(t, orderHandler, []models.OrderItemInput{
		{Name: "brie", CategoryID: "2", Quantity: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/order-history", nil)
	w := httptest.NewRecorder()
	historyHandler.OrderHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var orders []models.Order
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("order count = %d, want 2", len(orders))
	}
	// Most recent order first
	if orders[0].OrderID != secondID || orders[1].OrderID != firstID {
		t.Errorf("order sequence = [%s, %s], want [%s, %s]",
			orders[0].OrderID, orders[1].OrderID, secondID, firstID)
	}

	item := orders[1].Items[0]
	if item.Name != "apple" || item.Quantity != 2 || item.Category.ID != "3" {
		t.Errorf("item = %+v, want apple x2 under category 3", item)
	}
	if item.Category.Name != "fruits & vegetables" {
		t.Errorf("category name = %q, want %q", item.Category.Name, "fruits & vegetables")
	}
}

func TestHistoryHandler_OrderHistoryEmpty(t *testing.T) {
	_, historyHandler := newHistoryFixture()

	req := httptest.NewRequest(http.MethodGet, "/order-history", nil)
	w := httptest.NewRecorder()
	historyHandler.OrderHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var orders []models.Order
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("order count = %d, want 0", len(orders))
	}
}

func TestHistoryHandler_GroupedView(t *testing.T) {
	orderHandler, historyHandler := newHistoryFixture()

	submitOrder(t, orderHandler, []models.OrderItemInput{
		{Name: "apple", CategoryID: "3", Quantity: 1},
		{Name: "brie", CategoryID: "2", Quantity: 1},
		{Name: "banana", CategoryID: "3", Quantity: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/order-history?grouped=true", nil)
	w := httptest.NewRecorder()
	historyHandler.OrderHistory(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var orders []models.GroupedOrder
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(orders) != 1 {
		t.Fatalf("order count = %d, want 1", len(orders))
	}
	if len(orders[0].Categories) != 2 {
		t.Errorf("category group count = %d, want 2", len(orders[0].Categories))
	}
}
