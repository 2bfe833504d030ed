// internal/services/admin_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ResetToSeed deletes everything above the seed id thresholds,
// restoring the dataset to its initial state. Destructive; exposed on
// an unauthenticated endpoint for the benchmark harness.
func (s *AdminService) ResetToSeed() error {
	statements := []string{
		"DELETE FROM users WHERE id > 5000",
		"DELETE FROM products WHERE id > 10000",
		"DELETE FROM comments WHERE id > 200000",
		"DELETE FROM histories WHERE id > 500000",
	}

	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset dataset: %w", err)
		}
	}
	return nil
}
