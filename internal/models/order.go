package models

import "time"

// OrderRequest represents an incoming order submission
type OrderRequest struct {
	Items []OrderItemInput `json:"items"`
}

// OrderItemInput is a single cart line submitted for commit
type OrderItemInput struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	Quantity   int    `json:"quantity"`
}

// OrderResult reports a successful commit
type OrderResult struct {
	OrderID         string `json:"orderId"`
	SavedItemsCount int    `json:"savedItemsCount"`
}

// Order is a read-time projection over ShoppingItem rows sharing one
// order ID. It has no storage of its own and is rebuilt on every read.
type Order struct {
	OrderID   string      `json:"orderId"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is one line of a reconstructed order
type OrderItem struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
}

// CategoryGroup holds an order's items for one category, in the order
// the rows were read
type CategoryGroup struct {
	CategoryName string      `json:"categoryName"`
	Items        []OrderItem `json:"items"`
}

// GroupedOrder is the per-category view of an order used for display
type GroupedOrder struct {
	OrderID    string          `json:"orderId"`
	CreatedAt  time.Time       `json:"createdAt"`
	Categories []CategoryGroup `json:"categories"`
}
