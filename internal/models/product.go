// internal/models/product.go
package models

type Product struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	ImagePath   string `json:"image_path" gorm:"size:255"`
	Price       int64  `json:"price" gorm:"not null"`
}

func (Product) TableName() string { return "products" }
