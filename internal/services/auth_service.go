// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hiracchi/minimart/internal/models"
	"github.com/hiracchi/minimart/internal/utils"
)

type AuthService struct {
	db *gorm.DB
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate looks the user up by email and compares the submitted
// password with plain equality. Any mismatch, unknown email, or
// malformed form collapses into ErrAuthentication so the login page
// never reveals which part was wrong.
func (s *AuthService) Authenticate(req *LoginRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrAuthentication
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthentication
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrAuthentication
	}

	return &user, nil
}

// UpdateLastLogin stamps the user's last_login with the adjusted
// clock. The login handler does not call this; it exists for operator
// tooling and matches the dataset's schema.
func (s *AuthService) UpdateLastLogin(userID int64) error {
	if err := s.db.Exec("UPDATE users SET last_login = ? WHERE id = ?", utils.AdjustedNow(), userID).Error; err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// GetUser returns the user's public identity, or nil when no such user
// exists (the history page renders a nil user rather than erroring).
func (s *AuthService) GetUser(userID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Select("id", "name").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}
