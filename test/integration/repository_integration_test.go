package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/model"
	"github.com/UzairFarooq1/playstation-cards-ecommerce/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	cartRepo := repository.NewCartRepository(testDB.Pool, logger)

	userID := SeedUser(t, testDB.Pool, "Jane Customer", "jane@example.com", model.RoleUser)
	productID := SeedProduct(t, testDB.Pool, "PSN Card $25", "25.00", 50)

	t.Run("Upsert creates then accumulates", func(t *testing.T) {
		first, err := cartRepo.Upsert(ctx, userID, productID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Quantity)

		second, err := cartRepo.Upsert(ctx, userID, productID, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, second.Quantity)
		assert.Equal(t, first.ID, second.ID, "conflict resolution must reuse the existing row")

		items, err := cartRepo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1, "only one row per (user, product) pair")
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Concurrent upserts lose no increments", func(t *testing.T) {
		concurrentUser := SeedUser(t, testDB.Pool, "Race Tester", "race@example.com", model.RoleUser)

		const workers = 10
		var wg sync.WaitGroup
		errs := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := cartRepo.Upsert(ctx, concurrentUser, productID, 1); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("concurrent upsert failed: %v", err)
		}

		items, err := cartRepo.ListByUser(ctx, concurrentUser)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, workers, items[0].Quantity)
	})

	t.Run("UpdateQuantity replaces and Remove deletes", func(t *testing.T) {
		found, err := cartRepo.UpdateQuantity(ctx, userID, productID, 1)
		require.NoError(t, err)
		assert.True(t, found)

		items, err := cartRepo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)

		found, err = cartRepo.Remove(ctx, userID, productID)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = cartRepo.Remove(ctx, userID, productID)
		require.NoError(t, err)
		assert.False(t, found, "removing a missing row reports not found")
	})

	t.Run("ListDetailsByUser joins live catalogue data", func(t *testing.T) {
		detailUser := SeedUser(t, testDB.Pool, "Detail Tester", "detail@example.com", model.RoleUser)

		_, err := cartRepo.Upsert(ctx, detailUser, productID, 2)
		require.NoError(t, err)

		details, err := cartRepo.ListDetailsByUser(ctx, detailUser)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "PSN Card $25", details[0].Name)
		assert.True(t, details[0].Price.Equal(decimal.RequireFromString("25.00")))
		assert.Equal(t, 2, details[0].Quantity)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	userID := SeedUser(t, testDB.Pool, "Jane Customer", "jane@example.com", model.RoleUser)
	productID := SeedProduct(t, testDB.Pool, "PSN Card $10", "10.00", 50)

	newOrder := func(total string) (*model.Order, []model.OrderItem) {
		now := time.Now()
		order := &model.Order{
			ID:              uuid.New(),
			UserID:          userID,
			Status:          model.OrderStatusPending,
			Total:           decimal.RequireFromString(total),
			ShippingAddress: "12 Moi Avenue, Nairobi",
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		items := []model.OrderItem{
			{ID: uuid.New(), OrderID: order.ID, ProductID: productID, Quantity: 2, Price: decimal.RequireFromString("10.00")},
		}
		return order, items
	}

	t.Run("Commit persists order and items", func(t *testing.T) {
		order, items := newOrder("20.00")

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
		require.NoError(t, orderRepo.CreateOrderItems(ctx, tx, items))
		require.NoError(t, tx.Commit(ctx))

		got, gotItems, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("20.00")))
		require.Len(t, gotItems, 1)
		assert.True(t, gotItems[0].Price.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("Rollback leaves nothing behind", func(t *testing.T) {
		order, items := newOrder("20.00")

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
		require.NoError(t, orderRepo.CreateOrderItems(ctx, tx, items))
		require.NoError(t, tx.Rollback(ctx))

		got, gotItems, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Nil(t, gotItems)
	})

	t.Run("ListByUser returns newest first", func(t *testing.T) {
		summaries, err := orderRepo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.NotEmpty(t, summaries)
		for i := 1; i < len(summaries); i++ {
			assert.False(t, summaries[i-1].CreatedAt.Before(summaries[i].CreatedAt))
		}
	})

	t.Run("ListAll joins owners and counts", func(t *testing.T) {
		orders, total, err := orderRepo.ListAll(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
		require.NotEmpty(t, orders)
		assert.Equal(t, "Jane Customer", orders[0].UserName)
		assert.Equal(t, "jane@example.com", orders[0].UserEmail)
	})
}
