// internal/models/user.go
package models

import (
	"time"
)

type User struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"size:255;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string     `json:"-" gorm:"size:255;not null"`
	LastLogin *time.Time `json:"last_login" gorm:"column:last_login"`
}

func (User) TableName() string { return "users" }

// CheckPassword compares the stored password with the submitted one.
// The seeded dataset stores passwords in plaintext, so this is a plain
// equality check. See config.Validate for the startup warning.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
