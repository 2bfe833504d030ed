// internal/models/comment.go
package models

import (
	"time"
)

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID int64     `json:"product_id" gorm:"index;not null"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (Comment) TableName() string { return "comments" }

// CommentWithAuthor is a comment joined with its author, as rendered on
// the product listing.
type CommentWithAuthor struct {
	ProductID int64     `json:"product_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
}
