package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesledger/internal/application/service"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/request"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles creating the inventory row of a product
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, BindingError(err))
		return
	}

	inventory, err := h.inventoryService.CreateInventory(c.Request.Context(), &service.CreateInventoryInput{
		ProductID:     *req.ProductID,
		CategoryID:    *req.CategoryID,
		StockQuantity: *req.StockQuantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, inventory)
}

// Update handles setting the stock level of a product
func (h *InventoryHandler) Update(c *gin.Context) {
	productID, err := ParseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, BindingError(err))
		return
	}

	inventory, err := h.inventoryService.UpdateStock(c.Request.Context(), productID, *req.StockQuantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, inventory)
}

// Get handles getting the inventory of a product
func (h *InventoryHandler) Get(c *gin.Context) {
	productID, err := ParseIDParam(c, "product_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	inventory, err := h.inventoryService.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, inventory)
}

// List handles listing all inventory rows
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, items)
}
