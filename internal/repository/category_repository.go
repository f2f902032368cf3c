package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shoppinglist/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category reference data
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	CreateBatch(ctx context.Context, categories []models.Category) error
	Count(ctx context.Context) (int64, error)
}

// GormCategoryRepository implements CategoryRepository on the
// relational store
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a category repository backed by db
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetAll returns all categories in stored order
func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a category by its ID
func (r *GormCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// CreateBatch inserts the given categories in one statement
func (r *GormCategoryRepository) CreateBatch(ctx context.Context, categories []models.Category) error {
	return r.db.WithContext(ctx).Create(&categories).Error
}

// Count returns the number of stored categories
func (r *GormCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InMemoryCategoryRepository implements CategoryRepository with
// in-memory storage, used by tests
type InMemoryCategoryRepository struct {
	categories []models.Category
	byID       map[string]models.Category
}

// NewInMemoryCategoryRepository creates an in-memory category
// repository holding the given categories
func NewInMemoryCategoryRepository(categories []models.Category) *InMemoryCategoryRepository {
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &InMemoryCategoryRepository{
		categories: categories,
		byID:       byID,
	}
}

// GetAll returns all categories in insertion order
func (r *InMemoryCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID returns a category by its ID
func (r *InMemoryCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, exists := r.byID[id]
	if !exists {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// CreateBatch appends the given categories
func (r *InMemoryCategoryRepository) CreateBatch(ctx context.Context, categories []models.Category) error {
	for _, c := range categories {
		r.categories = append(r.categories, c)
		r.byID[c.ID] = c
	}
	return nil
}

// Count returns the number of stored categories
func (r *InMemoryCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}
