package repository

import (
	"context"

	"github.com/sangkips/salesledger/internal/domain/entity"
)

// SaleRepository defines the interface for sale data operations.
// Both List and SumRevenue select rows with the same SaleFilter semantics.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]entity.Sale, error)
	// SumRevenue returns the summed revenue of every matching sale, 0 when none match
	SumRevenue(ctx context.Context, filter SaleFilter) (float64, error)
}
