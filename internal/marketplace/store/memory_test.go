package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
)

func TestInMemoryCarts_OneLinePerStoreItem(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	carts := NewInMemoryCarts()

	cart := &models.Cart{ID: id.NewCartID(), TerritoryID: id.NewTerritoryID(), UserID: id.NewUserID(), CreatedAt: now}
	require.NoError(t, carts.CreateCart(ctx, cart))
	dup := *cart
	dup.ID = id.NewCartID()
	assert.True(t, errors.Is(carts.CreateCart(ctx, &dup), sentinel.ErrConflict), "one cart per user and territory")

	storeItem := id.NewStoreItemID()
	second := &models.CartItem{ID: id.NewCartItemID(), CartID: cart.ID, StoreItemID: id.NewStoreItemID(), Quantity: 1, AddedAt: now.Add(time.Minute)}
	first := &models.CartItem{ID: id.NewCartItemID(), CartID: cart.ID, StoreItemID: storeItem, Quantity: 2, AddedAt: now}
	require.NoError(t, carts.AddItem(ctx, second))
	require.NoError(t, carts.AddItem(ctx, first))

	again := &models.CartItem{ID: id.NewCartItemID(), CartID: cart.ID, StoreItemID: storeItem, Quantity: 1, AddedAt: now}
	assert.True(t, errors.Is(carts.AddItem(ctx, again), sentinel.ErrConflict))

	lines, err := carts.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, first.ID, lines[0].ID, "lines come back in the order they were added")

	found, err := carts.FindItemByStoreItem(ctx, cart.ID, storeItem)
	require.NoError(t, err)
	found.Quantity = 99
	reread, err := carts.FindItem(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reread.Quantity, "returned values are copies")

	require.NoError(t, carts.RemoveItems(ctx, first.ID, second.ID))
	lines, err = carts.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, errors.Is(carts.UpdateItem(ctx, first), sentinel.ErrNotFound))
}

func TestInMemoryCheckouts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	checkouts := NewInMemoryCheckouts()
	buyer := id.NewUserID()

	older := &models.Checkout{ID: id.NewCheckoutID(), BuyerUserID: buyer, Status: models.CheckoutAwaitingPayment, CreatedAt: now}
	newer := &models.Checkout{ID: id.NewCheckoutID(), BuyerUserID: buyer, Status: models.CheckoutAwaitingPayment, CreatedAt: now.Add(time.Hour)}
	items := []models.CheckoutItem{{ID: id.NewCheckoutItemID(), CheckoutID: older.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(3)}}
	require.NoError(t, checkouts.Create(ctx, older, items))
	require.NoError(t, checkouts.Create(ctx, newer, nil))
	items[0].Quantity = 5

	stored, err := checkouts.ListItems(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Quantity, "line snapshots are immutable")

	list, err := checkouts.ListByBuyer(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID, "newest first")

	require.NoError(t, older.MarkPaid(now))
	require.NoError(t, checkouts.Update(ctx, older))
	got, err := checkouts.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutPaid, got.Status)

	_, err = checkouts.FindByID(ctx, id.NewCheckoutID())
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInMemoryFeeConfigs_OneActivePerItemType(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	fees := NewInMemoryFeeConfigs()
	territory := id.NewTerritoryID()

	config := func(itemType models.ItemType, at time.Time) *models.PlatformFeeConfig {
		return &models.PlatformFeeConfig{
			ID: id.NewFeeConfigID(), TerritoryID: territory, ItemType: itemType, Mode: models.FeeModePercentage,
			Value: decimal.RequireFromString("0.1"), Currency: "BRL", IsActive: true, CreatedAt: at,
		}
	}
	product := config(models.ItemTypeProduct, now)
	require.NoError(t, fees.Create(ctx, product))
	require.NoError(t, fees.Create(ctx, config(models.ItemTypeService, now)))
	assert.True(t, errors.Is(fees.Create(ctx, config(models.ItemTypeProduct, now)), sentinel.ErrConflict))

	deactivated := now.Add(time.Hour)
	product.IsActive = false
	product.DeactivatedAt = &deactivated
	require.NoError(t, fees.Update(ctx, product))
	replacement := config(models.ItemTypeProduct, deactivated)
	require.NoError(t, fees.Create(ctx, replacement))

	product.IsActive = true
	assert.True(t, errors.Is(fees.Update(ctx, product), sentinel.ErrConflict), "reactivating next to an active row")

	active, err := fees.FindActive(ctx, territory, models.ItemTypeProduct)
	require.NoError(t, err)
	assert.Equal(t, replacement.ID, active.ID)

	all, err := fees.ListActive(ctx, territory)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.ItemTypeProduct, all[0].ItemType)

	history, err := fees.ListHistory(ctx, territory, models.ItemTypeProduct)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].IsActive)
}
