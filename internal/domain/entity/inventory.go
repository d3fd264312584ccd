package entity

import (
	"time"

	"gorm.io/gorm"
)

// Inventory holds the stock level of one product
type Inventory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null;uniqueIndex" json:"product_id"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	StockQuantity int       `gorm:"not null" json:"stock_quantity"`
	LastUpdated   time.Time `gorm:"not null" json:"last_updated"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate initializes LastUpdated when the row is first written
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.LastUpdated.IsZero() {
		i.LastUpdated = time.Now().UTC()
	}
	return nil
}

// SetStock applies a new stock level and advances LastUpdated.
// LastUpdated never moves backwards, even if the wall clock does.
func (i *Inventory) SetStock(quantity int, now time.Time) {
	i.StockQuantity = quantity
	now = now.UTC()
	if now.Before(i.LastUpdated) {
		now = i.LastUpdated
	}
	i.LastUpdated = now
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventory"
}
