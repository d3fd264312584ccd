package service

import (
	"context"
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
	"github.com/sangkips/salesledger/internal/domain/repository"
)

// SaleService records and lists sales
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	ProductID  uint
	CategoryID uint
	Quantity   int
	Revenue    float64
	SaleDate   *time.Time // nil means now
}

// CreateSale records a sale. Revenue is stored exactly as supplied.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	sale := &entity.Sale{
		ProductID:  input.ProductID,
		CategoryID: input.CategoryID,
		Quantity:   input.Quantity,
		Revenue:    input.Revenue,
	}
	if input.SaleDate != nil {
		sale.SaleDate = input.SaleDate.UTC()
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales returns the sales matching the filter
func (s *SaleService) ListSales(ctx context.Context, filter repository.SaleFilter) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx, filter)
}
