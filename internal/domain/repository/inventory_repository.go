package repository

import (
	"context"
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error
	GetByProductID(ctx context.Context, productID uint) (*entity.Inventory, error)
	List(ctx context.Context) ([]entity.Inventory, error)
	// UpdateStock sets the stock level of the product's inventory row and advances
	// its last-updated time in one transaction. Returns (nil, nil) if no row exists.
	UpdateStock(ctx context.Context, productID uint, quantity int, now time.Time) (*entity.Inventory, error)
}
