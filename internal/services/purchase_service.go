// internal/services/purchase_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hiracchi/minimart/internal/utils"
)

const historyPageLimit = 30

type PurchaseService struct {
	db *gorm.DB
}

// PurchasedItem is one row of the history page: the bought product's
// display fields plus the purchase time. Description arrives already
// truncated by the query.
type PurchasedItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Buy records a purchase. No stock check and no idempotence: buying
// twice produces two history rows.
func (s *PurchaseService) Buy(productID, userID int64) error {
	err := s.db.
		Exec("INSERT INTO histories (product_id, user_id, created_at) VALUES (?, ?, ?)",
			productID, userID, utils.AdjustedNow()).Error
	if err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}
	return nil
}

// AlreadyBought reports whether the user has at least one purchase of
// the product. Callers pass userID 0 for anonymous visitors and get
// false without touching the database.
func (s *PurchaseService) AlreadyBought(productID, userID int64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	var count int64
	err := s.db.
		Raw("SELECT count(*) AS count FROM histories WHERE product_id = ? AND user_id = ?", productID, userID).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count purchases: %w", err)
	}
	return count > 0, nil
}

// HistoryPage returns the user's 30 most recent purchases joined with
// product display data, newest purchase first.
func (s *PurchaseService) HistoryPage(userID int64) ([]PurchasedItem, error) {
	var items []PurchasedItem
	err := s.db.
		Raw(`SELECT p.id, p.name, SUBSTRING(p.description, 1, 71) AS description, p.image_path, p.price, h.created_at
FROM histories AS h
LEFT OUTER JOIN products AS p ON h.product_id = p.id
WHERE h.user_id = ?
ORDER BY h.id DESC
LIMIT ?`, userID, historyPageLimit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase history: %w", err)
	}
	return items, nil
}

// TotalPay sums the prices of everything the user ever bought, over
// the full history rather than the 30-row page.
func (s *PurchaseService) TotalPay(userID int64) (int64, error) {
	var total int64
	err := s.db.
		Raw(`SELECT IFNULL(SUM(p.price), 0) AS total
FROM histories AS h
INNER JOIN products AS p ON h.product_id = p.id
WHERE h.user_id = ?`, userID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum purchases: %w", err)
	}
	return total, nil
}
