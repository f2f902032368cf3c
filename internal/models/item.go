package models

import "time"

// ShoppingItem is one persisted order line. Rows are append-only and
// never updated; an order exists only as the set of rows sharing an
// OrderID.
type ShoppingItem struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CategoryID string    `json:"categoryId" gorm:"index;not null"`
	Category   Category  `json:"category" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"createdAt"`
	OrderID    string    `json:"orderId" gorm:"index"`
}
