package request

// CreateProductRequest represents a product creation request.
// Pointer fields distinguish an omitted field from a zero value.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description *string  `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,min=0"`
	CategoryID  *uint    `json:"category_id" binding:"required"`
}

// CategoryRequest is the body of category create and update requests
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
