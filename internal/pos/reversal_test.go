package pos_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
)

func TestDeleteOrder_RoundTripRestoresEverything(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	order, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)

	store.DeleteOrder(ctx, order.ID)

	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 10.0, beef.StockQuantity, 1e-9)
	assert.Empty(t, store.Orders())
	assert.Empty(t, store.Revenues())

	for _, mov := range store.StockMovements() {
		assert.NotEqual(t, models.MovementSale, mov.Type)
	}

	cust, ok := findCustomerByPhone(store, "5511999990000")
	require.True(t, ok)
	assert.Equal(t, 0, cust.TotalOrders)
}

func TestDeleteOrder_SecondOrderReversalKeepsFirst(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	first, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)
	second, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)

	cust, _ := findCustomerByPhone(store, "5511999990000")
	require.Equal(t, 2, cust.TotalOrders)

	store.DeleteOrder(ctx, second.ID)

	cust, _ = findCustomerByPhone(store, "5511999990000")
	assert.Equal(t, 1, cust.TotalOrders)

	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	// The first order's revenue row survives.
	fragment := models.IDFragment(first.ID)
	found := false
	for _, rev := range store.Revenues() {
		if strings.Contains(rev.Description, "#"+fragment) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDeleteOrder_MissingOrderIsNoOp(t *testing.T) {
	store, remote, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	_, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)
	before := findIngredient(t, store, beefID).StockQuantity
	deletesBefore := remote.deleteCount(models.CollectionOrders)

	store.DeleteOrder(ctx, "nope")

	assert.InDelta(t, before, findIngredient(t, store, beefID).StockQuantity, 1e-9)
	assert.Len(t, store.Orders(), 1)
	assert.Equal(t, deletesBefore, remote.deleteCount(models.CollectionOrders))
}

func TestDeleteOrder_CounterFloorsAtZero(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	order, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)

	// Force the counter to zero out of band, then reverse.
	cust, _ := findCustomerByPhone(store, "5511999990000")
	cust.TotalOrders = 0
	store.SaveCustomer(ctx, cust)

	store.DeleteOrder(ctx, order.ID)

	cust, _ = findCustomerByPhone(store, "5511999990000")
	assert.Equal(t, 0, cust.TotalOrders)
}

func TestDeleteOrder_RecipeEditedBetweenSaleAndReversal(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	order, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)
	require.InDelta(t, 9.85, findIngredient(t, store, beefID).StockQuantity, 1e-9)

	// Double the recipe after the sale. Reversal re-derives consumption from
	// the current recipe, so it restores 0.30 where only 0.15 was deducted.
	var burger models.Product
	for _, p := range store.Products() {
		if p.ID == burgerID {
			burger = p
		}
	}
	burger.Ingredients = []models.RecipeLine{{IngredientID: beefID, Quantity: 0.300}}
	store.SaveProduct(ctx, burger)

	store.DeleteOrder(ctx, order.ID)

	assert.InDelta(t, 10.15, findIngredient(t, store, beefID).StockQuantity, 1e-9)
}
