package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	infraRepo "github.com/sangkips/salesledger/internal/infrastructure/repository"
	"github.com/sangkips/salesledger/internal/testutil"
	"github.com/sangkips/salesledger/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryService(t *testing.T) *InventoryService {
	t.Helper()
	return NewInventoryService(infraRepo.NewInventoryRepository(testutil.NewTestDB(t)))
}

func TestInventoryService_UpdateStock(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	created, err := svc.CreateInventory(ctx, &CreateInventoryInput{ProductID: 1, CategoryID: 1, StockQuantity: 10})
	require.NoError(t, err)
	previous := created.LastUpdated

	t.Run("non-positive quantities are invalid input", func(t *testing.T) {
		for _, qty := range []int{0, -5} {
			_, err := svc.UpdateStock(ctx, 1, qty)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, http.StatusBadRequest), "qty=%d", qty)
		}

		// the row is untouched
		inv, err := svc.GetByProduct(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 10, inv.StockQuantity)
	})

	t.Run("positive quantity updates stock and last updated", func(t *testing.T) {
		updated, err := svc.UpdateStock(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.StockQuantity)
		assert.False(t, updated.LastUpdated.Before(previous))
	})

	t.Run("missing product is not found", func(t *testing.T) {
		_, err := svc.UpdateStock(ctx, 77, 3)
		assert.True(t, apperror.HasCode(err, http.StatusNotFound))
	})

	t.Run("invalid quantity is reported before existence", func(t *testing.T) {
		_, err := svc.UpdateStock(ctx, 77, 0)
		assert.True(t, apperror.HasCode(err, http.StatusBadRequest))
	})
}

func TestInventoryService_LastUpdatedNeverMovesBack(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	_, err := svc.CreateInventory(ctx, &CreateInventoryInput{ProductID: 2, CategoryID: 1, StockQuantity: 1})
	require.NoError(t, err)

	clock = clock.Add(-time.Hour)
	updated, err := svc.UpdateStock(ctx, 2, 4)
	require.NoError(t, err)
	assert.True(t, updated.LastUpdated.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestInventoryService_CreateAndRead(t *testing.T) {
	svc := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.CreateInventory(ctx, &CreateInventoryInput{ProductID: 1, CategoryID: 1, StockQuantity: 0})
	assert.True(t, apperror.HasCode(err, http.StatusBadRequest))

	_, err = svc.CreateInventory(ctx, &CreateInventoryInput{ProductID: 1, CategoryID: 1, StockQuantity: 5})
	require.NoError(t, err)

	_, err = svc.CreateInventory(ctx, &CreateInventoryInput{ProductID: 1, CategoryID: 1, StockQuantity: 5})
	assert.True(t, apperror.HasCode(err, http.StatusConflict))

	_, err = svc.GetByProduct(ctx, 9)
	assert.True(t, apperror.HasCode(err, http.StatusNotFound))

	items, err := svc.ListInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
