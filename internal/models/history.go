// internal/models/history.go
package models

import (
	"time"
)

// History is a purchase record linking a user to a product at a point
// in time. Rows are inserted on purchase and never updated or deleted.
type History struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID int64     `json:"product_id" gorm:"index;not null"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (History) TableName() string { return "histories" }
