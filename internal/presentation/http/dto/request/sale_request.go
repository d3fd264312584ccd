package request

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	ProductID  *uint    `json:"product_id" binding:"required"`
	CategoryID *uint    `json:"category_id" binding:"required"`
	Quantity   *int     `json:"quantity" binding:"required,gt=0"`
	Revenue    *float64 `json:"revenue" binding:"required"`
	SaleDate   string   `json:"sale_date"` // optional, defaults to now
}

// SaleFilterRequest holds the optional filters of the sales listing.
// Dates stay strings so they can be parsed with the shared timestamp layouts.
type SaleFilterRequest struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	ProductID  *uint  `form:"product_id"`
	CategoryID *uint  `form:"category_id"`
}

// RevenueRequest holds the revenue analysis query parameters
type RevenueRequest struct {
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	ProductID  *uint  `form:"product_id"`
	CategoryID *uint  `form:"category_id"`
}
