package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesledger/internal/application/service"
	"github.com/sangkips/salesledger/internal/domain/repository"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/request"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/response"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, BindingError(err))
		return
	}

	saleDate, err := ParseOptionalTimestampField("sale_date", req.SaleDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		ProductID:  *req.ProductID,
		CategoryID: *req.CategoryID,
		Quantity:   *req.Quantity,
		Revenue:    *req.Revenue,
		SaleDate:   saleDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, sale)
}

// List handles listing sales matching the optional query filters
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, BindingError(err))
		return
	}

	startDate, err := ParseOptionalTimestampField("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := ParseOptionalTimestampField("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), repository.SaleFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, sales)
}
