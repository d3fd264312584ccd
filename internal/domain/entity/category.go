package entity

// Category groups products. Names are unique across the store.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
