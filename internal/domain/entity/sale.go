package entity

import (
	"time"

	"gorm.io/gorm"
)

// Sale is an append-only record of a product sale.
// Revenue is recorded as supplied at sale time and is never derived from
// quantity and price. CategoryID is denormalized and trusted as stored.
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Revenue    float64   `gorm:"not null;default:0" json:"revenue"`
	SaleDate   time.Time `gorm:"not null;index" json:"sale_date"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate stamps the sale with the creation time unless one was supplied
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now().UTC()
	} else {
		s.SaleDate = s.SaleDate.UTC()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
