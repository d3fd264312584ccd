package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesledger/internal/application/service"
	"github.com/sangkips/salesledger/internal/infrastructure/logger"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/request"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/response"
	"go.uber.org/zap"
)

// RevenueHandler serves the revenue analysis endpoint
type RevenueHandler struct {
	revenueService *service.RevenueService
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(revenueService *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

// Analyze returns the daily, weekly, monthly and annual revenue series
func (h *RevenueHandler) Analyze(c *gin.Context) {
	var req request.RevenueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, BindingError(err))
		return
	}

	startDate, err := ParseTimestampField("start_date", req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := ParseTimestampField("end_date", req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	points, err := h.revenueService.Analyze(c.Request.Context(), &service.RevenueQuery{
		StartDate:  startDate,
		EndDate:    endDate,
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	logger.FromGin(c).Debug("Revenue analyzed",
		zap.Time("start_date", startDate),
		zap.Time("end_date", endDate),
		zap.Int("periods", len(points)),
	)

	response.OK(c, points)
}
