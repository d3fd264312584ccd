package request

// UpdateInventoryRequest is the body of a stock update. Range checks on the
// quantity are business rules and happen in the inventory service.
type UpdateInventoryRequest struct {
	StockQuantity *int `json:"stock_quantity" binding:"required"`
}

// CreateInventoryRequest represents an inventory creation request
type CreateInventoryRequest struct {
	ProductID     *uint `json:"product_id" binding:"required"`
	CategoryID    *uint `json:"category_id" binding:"required"`
	StockQuantity *int  `json:"stock_quantity" binding:"required"`
}
