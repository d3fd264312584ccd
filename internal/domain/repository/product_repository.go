package repository

import (
	"context"

	"github.com/sangkips/salesledger/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations.
// Lookups return (nil, nil) when no row matches.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
}
