package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repository"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrNoValidItems    = errors.New("no valid items to save after category check")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CategoryStore is the category access the order service needs
type CategoryStore interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
}

// ItemStore is the persisted-row access the services need
type ItemStore interface {
	SaveBatch(ctx context.Context, items []models.ShoppingItem) error
	ListAllSorted(ctx context.Context) ([]models.ShoppingItem, error)
}

// OrderService converts a validated cart into durable order rows.
// Orders are append-only: this service only inserts, never updates.
type OrderService struct {
	categories CategoryStore
	items      ItemStore
	log        *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(categories CategoryStore, items ItemStore, log *slog.Logger) *OrderService {
	return &OrderService{
		categories: categories,
		items:      items,
		log:        log,
	}
}

// CreateOrder persists the submitted items under a freshly minted
// order ID and a single commit timestamp. Items whose category does
// not exist are skipped rather than failing the batch; the caller has
// already validated the category *match* via the classifier, so only
// category existence is checked here.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	orderID := generateOrderID()
	createdAt := time.Now().UTC()

	rows := make([]models.ShoppingItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		category, err := s.categories.GetByID(ctx, item.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				s.log.Warn("category not found, skipping item",
					"category_id", item.CategoryID,
					"item_name", item.Name,
				)
				continue
			}
			return nil, fmt.Errorf("resolving category %s: %w", item.CategoryID, err)
		}

		rows = append(rows, models.ShoppingItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			CategoryID: category.ID,
			Category:   *category,
			CreatedAt:  createdAt,
			OrderID:    orderID,
		})
	}

	if len(rows) == 0 {
		return nil, ErrNoValidItems
	}

	if err := s.items.SaveBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("saving order %s: %w", orderID, err)
	}

	s.log.Info("order saved", "order_id", orderID, "items_count", len(rows))

	return &models.OrderResult{
		OrderID:         orderID,
		SavedItemsCount: len(rows),
	}, nil
}

// generateOrderID mints an order identifier unique across concurrent
// callers. History grouping keys on this value, so a collision would
// silently merge two orders; the timestamp keeps IDs roughly ordered
// by recency and the uuid fragment rules collisions out.
func generateOrderID() string {
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
