package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repository"
	"shoppinglist/pkg/logger"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "cleaning supplies"},
		{ID: "2", Name: "cheeses"},
		{ID: "3", Name: "fruits & vegetables"},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		req       models.OrderRequest
		wantErr   error
		wantSaved int
	}{
		{
			name: "single valid item",
			req: models.OrderRequest{
				Items: []models.OrderItemInput{
					{Name: "apple", CategoryID: "3", Quantity: 2},
				},
			},
			wantSaved: 1,
		},
		{
			name: "multiple valid items",
			req: models.OrderRequest{
				Items: []models.OrderItemInput{
					{Name: "apple", CategoryID: "3", Quantity: 1},
					{Name: "brie", CategoryID: "2", Quantity: 3},
				},
			},
			wantSaved: 2,
		},
		{
			name:    "empty order",
			req:     models.OrderRequest{Items: []models.OrderItemInput{}},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			req: models.OrderRequest{
				Items: []models.OrderItemInput{
					{Name: "apple", CategoryID: "3", Quantity: 0},
				},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "all categories unresolvable",
			req: models.OrderRequest{
				Items: []models.OrderItemInput{
					{Name: "apple", CategoryID: "98", Quantity: 1},
					{Name: "brie", CategoryID: "99", Quantity: 1},
				},
			},
			wantErr: ErrNoValidItems,
		},
		{
			name: "invalid category items are skipped, valid subset saved",
			req: models.OrderRequest{
				Items: []models.OrderItemInput{
					{Name: "apple", CategoryID: "3", Quantity: 1},
					{Name: "mystery", CategoryID: "99", Quantity: 1},
					{Name: "brie", CategoryID: "2", Quantity: 2},
				},
			},
			wantSaved: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := repository.NewInMemoryCategoryRepository(testCategories())
			itemRepo := repository.NewInMemoryItemRepository()
			svc := NewOrderService(categoryRepo, itemRepo, logger.New("error"))

			result, err := svc.CreateOrder(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateOrder() unexpected error = %v", err)
			}
			if result.SavedItemsCount != tt.wantSaved {
				t.Errorf("SavedItemsCount = %d, want %d", result.SavedItemsCount, tt.wantSaved)
			}
			if !strings.HasPrefix(result.OrderID, "order_") {
				t.Errorf("OrderID = %q, want order_ prefix", result.OrderID)
			}

			rows, _ := itemRepo.ListAllSorted(context.Background())
			if len(rows) != tt.wantSaved {
				t.Fatalf("persisted rows = %d, want %d", len(rows), tt.wantSaved)
			}
			for _, row := range rows {
				if row.OrderID != result.OrderID {
					t.Errorf("row %q OrderID = %q, want %q", row.Name, row.OrderID, result.OrderID)
				}
				if !row.CreatedAt.Equal(rows[0].CreatedAt) {
					t.Errorf("row %q CreatedAt differs within one order", row.Name)
				}
			}
		})
	}
}

func TestOrderService_CreateOrderGeneratesDistinctIDs(t *testing.T) {
	categoryRepo := repository.NewInMemoryCategoryRepository(testCategories())
	itemRepo := repository.NewInMemoryItemRepository()
	svc := NewOrderService(categoryRepo, itemRepo, logger.New("error"))

	req := models.OrderRequest{
		Items: []models.OrderItemInput{{Name: "apple", CategoryID: "3", Quantity: 1}},
	}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, err := svc.CreateOrder(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateOrder() unexpected error = %v", err)
		}
		if seen[result.OrderID] {
			t.Fatalf("duplicate order ID %q", result.OrderID)
		}
		seen[result.OrderID] = true
	}
}

// brokenItemStore simulates a write failure at the storage boundary
type brokenItemStore struct{}

func (brokenItemStore) SaveBatch(ctx context.Context, items []models.ShoppingItem) error {
	return errors.New("disk full")
}

func (brokenItemStore) ListAllSorted(ctx context.Context) ([]models.ShoppingItem, error) {
	return nil, errors.New("disk full")
}

func TestOrderService_CreateOrderSurfacesPersistenceFailure(t *testing.T) {
	categoryRepo := repository.NewInMemoryCategoryRepository(testCategories())
	svc := NewOrderService(categoryRepo, brokenItemStore{}, logger.New("error"))

	_, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Items: []models.OrderItemInput{{Name: "apple", CategoryID: "3", Quantity: 1}},
	})

	if err == nil {
		t.Fatal("CreateOrder() expected error, got nil")
	}
	if errors.Is(err, ErrEmptyOrder) || errors.Is(err, ErrNoValidItems) {
		t.Errorf("CreateOrder() error = %v, want a persistence failure", err)
	}
}
