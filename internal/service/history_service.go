package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"shoppinglist/internal/models"
)

// HistoryService rebuilds orders from the flat row store. An order is
// never stored as its own entity; it is always a projection computed
// at read time, so there is no second source of truth to drift.
type HistoryService struct {
	items ItemStore
	log   *slog.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(items ItemStore, log *slog.Logger) *HistoryService {
	return &HistoryService{
		items: items,
		log:   log,
	}
}

// OrderHistory returns all committed orders, most recent first
func (s *HistoryService) OrderHistory(ctx context.Context) ([]models.Order, error) {
	rows, err := s.items.ListAllSorted(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading order history: %w", err)
	}

	orders := ReconstructOrders(rows)
	s.log.Debug("order history reconstructed", "rows", len(rows), "orders", len(orders))
	return orders, nil
}

// GroupedOrderHistory returns the history with each order's items
// partitioned by category for display
func (s *HistoryService) GroupedOrderHistory(ctx context.Context) ([]models.GroupedOrder, error) {
	orders, err := s.OrderHistory(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make([]models.GroupedOrder, 0, len(orders))
	for _, order := range orders {
		grouped = append(grouped, models.GroupedOrder{
			OrderID:    order.OrderID,
			CreatedAt:  order.CreatedAt,
			Categories: GroupItemsByCategory(order.Items),
		})
	}
	return grouped, nil
}

// ReconstructOrders groups flat rows by order ID into one order per
// distinct ID, sorted by createdAt descending with ties broken by
// orderId descending so the output is deterministic for a fixed row
// set. An order's createdAt is the first-seen row's value in read
// order: all rows of a batch share one commit timestamp, so any row's
// value is the commit time. If rows ever carry heterogeneous
// timestamps the first-seen value still wins; this is a deliberate
// policy, not something to reconcile here.
func ReconstructOrders(rows []models.ShoppingItem) []models.Order {
	grouped := make(map[string]*models.Order)
	seen := make([]string, 0)

	for _, row := range rows {
		order, ok := grouped[row.OrderID]
		if !ok {
			order = &models.Order{
				OrderID:   row.OrderID,
				CreatedAt: row.CreatedAt,
			}
			grouped[row.OrderID] = order
			seen = append(seen, row.OrderID)
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:     row.Name,
			Quantity: row.Quantity,
			Category: models.Category{ID: row.CategoryID, Name: row.Category.Name},
		})
	}

	orders := make([]models.Order, 0, len(seen))
	for _, orderID := range seen {
		orders = append(orders, *grouped[orderID])
	}

	// The store is asked for sorted rows, but the grouping step must
	// not depend on it honoring that.
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].OrderID > orders[j].OrderID
	})

	return orders
}

// GroupItemsByCategory partitions an order's items by category name.
// Buckets appear in first-encounter order of category names within
// the order, not alphabetical and not catalog order, and items keep
// their relative order inside each bucket. Display code depends on
// this exact sequence.
func GroupItemsByCategory(items []models.OrderItem) []models.CategoryGroup {
	index := make(map[string]int)
	groups := make([]models.CategoryGroup, 0)

	for _, item := range items {
		name := item.Category.Name
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, models.CategoryGroup{CategoryName: name})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
