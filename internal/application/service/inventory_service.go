package service

import (
	"context"
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
	"github.com/sangkips/salesledger/internal/domain/repository"
	"github.com/sangkips/salesledger/pkg/apperror"
)

// InventoryService manages stock levels
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	now           func() time.Time
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

// CreateInventoryInput represents the create inventory input
type CreateInventoryInput struct {
	ProductID     uint
	CategoryID    uint
	StockQuantity int
}

// CreateInventory creates the inventory row of a product
func (s *InventoryService) CreateInventory(ctx context.Context, input *CreateInventoryInput) (*entity.Inventory, error) {
	if input.StockQuantity <= 0 {
		return nil, apperror.NewInvalidInputError("stock_quantity should be a positive integer")
	}

	inventory := &entity.Inventory{
		ProductID:     input.ProductID,
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
		LastUpdated:   s.now().UTC(),
	}
	if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		return nil, err
	}

	return inventory, nil
}

// UpdateStock sets the stock level of a product's inventory row
func (s *InventoryService) UpdateStock(ctx context.Context, productID uint, stockQuantity int) (*entity.Inventory, error) {
	if stockQuantity <= 0 {
		return nil, apperror.NewInvalidInputError("stock_quantity should be a positive integer")
	}

	inventory, err := s.inventoryRepo.UpdateStock(ctx, productID, stockQuantity, s.now())
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, apperror.NewNotFoundError("Inventory")
	}

	return inventory, nil
}

// GetByProduct retrieves the inventory row of a product
func (s *InventoryService) GetByProduct(ctx context.Context, productID uint) (*entity.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, apperror.NewNotFoundError("Inventory for this product")
	}
	return inventory, nil
}

// ListInventory returns every inventory row
func (s *InventoryService) ListInventory(ctx context.Context) ([]entity.Inventory, error) {
	return s.inventoryRepo.List(ctx)
}
