package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/salesledger/internal/domain/entity"
	domainRepo "github.com/sangkips/salesledger/internal/domain/repository"
	"github.com/sangkips/salesledger/pkg/apperror"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	err := r.db.WithContext(ctx).Omit("Product", "Category").Create(inventory).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Inventory already exists for this product")
	}
	return translateReferenceError(err)
}

func (r *inventoryRepository) GetByProductID(ctx context.Context, productID uint) (*entity.Inventory, error) {
	var inventory entity.Inventory
	err := r.db.WithContext(ctx).First(&inventory, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inventory, err
}

func (r *inventoryRepository) List(ctx context.Context) ([]entity.Inventory, error) {
	items := []entity.Inventory{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// UpdateStock reads and writes the row inside one transaction, which is
// committed or rolled back on every return path.
func (r *inventoryRepository) UpdateStock(ctx context.Context, productID uint, quantity int, now time.Time) (*entity.Inventory, error) {
	var updated *entity.Inventory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inventory entity.Inventory
		err := tx.First(&inventory, "product_id = ?", productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		inventory.SetStock(quantity, now)
		if err := tx.Model(&inventory).Updates(map[string]interface{}{
			"stock_quantity": inventory.StockQuantity,
			"last_updated":   inventory.LastUpdated,
		}).Error; err != nil {
			return err
		}

		updated = &inventory
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
