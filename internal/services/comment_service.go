// internal/services/comment_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hiracchi/minimart/internal/utils"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create records a comment. Content is stored as submitted; this layer
// enforces no validation or length limit.
func (s *CommentService) Create(productID, userID int64, content string) error {
	err := s.db.
		Exec("INSERT INTO comments (product_id, user_id, content, created_at) VALUES (?, ?, ?, ?)",
			productID, userID, content, utils.AdjustedNow()).Error
	if err != nil {
		return fmt.Errorf("failed to record comment: %w", err)
	}
	return nil
}
