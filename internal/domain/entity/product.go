package entity

// Product represents a sellable item. CategoryID is a plain foreign key;
// the category row is resolved through the category repository when needed.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	CategoryID  uint    `gorm:"not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
