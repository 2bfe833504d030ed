// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hiracchi/minimart/internal/models"
)

const (
	// Listing pages are fixed windows of product ids walking backward
	// from the highest seeded id.
	pageSize           = 50
	maxSeededProductID = 10000
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListPage returns page N of the catalog: products with id in
// (10000-N*50-50, 10000-N*50], newest id first. A page past the seeded
// data yields an empty slice, not an error.
func (s *CatalogService) ListPage(page int) ([]models.Product, error) {
	upper := maxSeededProductID - page*pageSize
	lower := upper - pageSize

	var products []models.Product
	err := s.db.
		Raw("SELECT * FROM products WHERE ? >= id AND id > ? ORDER BY id DESC", upper, lower).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CommentsForProducts fetches every comment on the given products,
// joined with its author, newest first. The id list is bound as an
// array; an empty list short-circuits instead of producing an empty
// IN clause.
func (s *CatalogService) CommentsForProducts(productIDs []int64) ([]models.CommentWithAuthor, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var comments []models.CommentWithAuthor
	err := s.db.
		Raw(`SELECT c.product_id, c.content, c.created_at, u.name AS user_name
FROM comments AS c
INNER JOIN users AS u ON c.user_id = u.id
WHERE c.product_id IN ?
ORDER BY c.created_at DESC`, productIDs).
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return comments, nil
}

// GetProduct returns the product, or nil when it does not exist; the
// detail page renders a nil product rather than 404ing.
func (s *CatalogService) GetProduct(productID int64) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}
