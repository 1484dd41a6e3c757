package pos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/pos"
)

func TestAddStockEntry(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, _ := seedBurgerShop(t, store)
	ctx := context.Background()

	err := store.AddStockEntry(ctx, beefID, 5, 28.5, "weekly delivery")
	require.NoError(t, err)

	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 15.0, beef.StockQuantity, 1e-9)
	// The latest purchase price overwrites the unit cost.
	assert.InDelta(t, 28.5, beef.CostPerUnit, 1e-9)

	movements := store.StockMovements()
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementEntry, movements[0].Type)
	assert.InDelta(t, 5.0, movements[0].Quantity, 1e-9)
	assert.Equal(t, "weekly delivery", movements[0].Reason)
	assert.InDelta(t, 28.5, movements[0].Cost, 1e-9)
}

func TestAddStockEntry_ZeroCostKeepsExisting(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, _ := seedBurgerShop(t, store)

	err := store.AddStockEntry(context.Background(), beefID, 2, 0, "")
	require.NoError(t, err)

	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 30.0, beef.CostPerUnit, 1e-9)
}

func TestRegisterLoss_ClampsAtZeroAndSynthesizesExpense(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, _ := seedBurgerShop(t, store)
	ctx := context.Background()

	err := store.RegisterLoss(ctx, beefID, 12, "freezer failure")
	require.NoError(t, err)

	beef := findIngredient(t, store, beefID)
	assert.Zero(t, beef.StockQuantity)

	movements := store.StockMovements()
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementLoss, movements[0].Type)
	assert.InDelta(t, 12.0, movements[0].Quantity, 1e-9)

	expenses := store.Expenses()
	require.Len(t, expenses, 1)
	// Lost value is cost per unit times the full declared quantity.
	assert.InDelta(t, 360.0, expenses[0].Amount, 1e-9)
	assert.Contains(t, expenses[0].Description, "Ground Beef")
	assert.Contains(t, expenses[0].Description, "freezer failure")
	assert.Equal(t, models.ExpenseStatusPaid, expenses[0].Status)
}

func TestStockOps_UnknownIngredient(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.AddStockEntry(ctx, "missing", 1, 0, ""), pos.ErrIngredientNotFound)
	assert.ErrorIs(t, store.RegisterLoss(ctx, "missing", 1, ""), pos.ErrIngredientNotFound)
}

func TestLowStockIngredients(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	low := store.SaveIngredient(ctx, models.Ingredient{Name: "Buns", StockQuantity: 3, MinStock: 5})
	store.SaveIngredient(ctx, models.Ingredient{Name: "Cheese", StockQuantity: 9, MinStock: 2})

	got := store.LowStockIngredients()
	require.Len(t, got, 1)
	assert.Equal(t, low.ID, got[0].ID)
}

func TestProductCost(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)

	// 0.150 kg of beef at 30.0 per kg.
	assert.InDelta(t, 4.5, store.ProductCost(burgerID), 1e-9)
	assert.Zero(t, store.ProductCost("missing"))
}
