package models

// Category is one row of the category reference table. The set is
// small, loaded once per process, and immutable after load.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}
