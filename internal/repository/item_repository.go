package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"shoppinglist/internal/models"
)

// ItemRepository defines the interface for persisted order lines.
// Rows are append-only: there is no update or delete path.
type ItemRepository interface {
	// SaveBatch writes all items as a single transactional unit.
	// Either every row lands or none of them do.
	SaveBatch(ctx context.Context, items []models.ShoppingItem) error
	// ListAllSorted returns every row with its category resolved,
	// ordered by createdAt descending, orderId descending, name
	// ascending.
	ListAllSorted(ctx context.Context) ([]models.ShoppingItem, error)
}

// GormItemRepository implements ItemRepository on the relational store
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates an item repository backed by db
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// SaveBatch writes all items inside one transaction so a concurrent
// history scan never observes a half-written order
func (r *GormItemRepository) SaveBatch(ctx context.Context, items []models.ShoppingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Categories are reference data; only the foreign key is
		// written.
		return tx.Omit("Category").Create(&items).Error
	})
}

// ListAllSorted returns every row with its category preloaded
func (r *GormItemRepository) ListAllSorted(ctx context.Context) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Order("order_id DESC").
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// InMemoryItemRepository implements ItemRepository with in-memory
// storage, used by tests
type InMemoryItemRepository struct {
	items  []models.ShoppingItem
	nextID uint
}

// NewInMemoryItemRepository creates an empty in-memory item repository
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{nextID: 1}
}

// SaveBatch appends all items, assigning generated row IDs
func (r *InMemoryItemRepository) SaveBatch(ctx context.Context, items []models.ShoppingItem) error {
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		r.items = append(r.items, item)
	}
	return nil
}

// ListAllSorted returns all rows in the same order the relational
// implementation requests from the store
func (r *InMemoryItemRepository) ListAllSorted(ctx context.Context) ([]models.ShoppingItem, error) {
	out := make([]models.ShoppingItem, len(r.items))
	copy(out, r.items)

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		if out[i].OrderID != out[j].OrderID {
			return out[i].OrderID > out[j].OrderID
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}
