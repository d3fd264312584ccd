package repository

import (
	"context"

	"github.com/sangkips/salesledger/internal/domain/entity"
	domainRepo "github.com/sangkips/salesledger/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return translateReferenceError(r.db.WithContext(ctx).Omit("Product", "Category").Create(sale).Error)
}

func (r *saleRepository) List(ctx context.Context, filter domainRepo.SaleFilter) ([]entity.Sale, error) {
	sales := []entity.Sale{}
	err := r.db.WithContext(ctx).
		Scopes(SaleFilterScope(filter)).
		Order("sale_date ASC, id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) SumRevenue(ctx context.Context, filter domainRepo.SaleFilter) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Scopes(SaleFilterScope(filter)).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, err
	}
	return revenue, nil
}
