package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rei_do_lanche_backend/internal/models"
)

func TestIDFragment(t *testing.T) {
	assert.Equal(t, "a1b2", models.IDFragment("a1b2c3d4e5f6"))
	assert.Equal(t, "abc", models.IDFragment("abc"))
	assert.Equal(t, "abcd", models.IDFragment("abcd"))
	assert.Equal(t, "", models.IDFragment(""))
}

func TestNormalizeSnapshot_BackfillsDefaults(t *testing.T) {
	snap := &models.Snapshot{
		Ingredients: []models.Ingredient{{ID: "i1", Name: "Beef"}},
		Products:    []models.Product{{ID: "p1", Name: "Burger"}},
		Revenues:    []models.Revenue{{ID: "r1", Amount: 10}},
		Expenses:    []models.Expense{{ID: "e1", Amount: 5}},
		StockMovements: []models.StockMovement{
			{ID: "m1", IngredientID: "i1", Quantity: 1},
		},
		Customers: []models.Customer{{ID: "c1", Name: "Ana", TotalOrders: -2}},
		Orders:    []models.Order{{ID: "o1", CustomerName: "Ana"}},
	}

	models.NormalizeSnapshot(snap)

	assert.Equal(t, models.RevenueOther, snap.Ingredients[0].Category)
	assert.Equal(t, models.UnitEach, snap.Ingredients[0].Unit)

	assert.Equal(t, models.RevenueOther, snap.Products[0].Category)
	assert.NotNil(t, snap.Products[0].Ingredients)
	assert.NotNil(t, snap.Products[0].Complements)
	assert.NotNil(t, snap.Products[0].AddOns)

	assert.Equal(t, models.RevenueOther, snap.Revenues[0].Category)
	assert.Equal(t, models.PaymentCash, snap.Revenues[0].PaymentMethod)

	assert.Equal(t, models.ExpenseStatusPaid, snap.Expenses[0].Status)
	assert.Equal(t, models.MovementAdjustment, snap.StockMovements[0].Type)
	assert.Equal(t, 0, snap.Customers[0].TotalOrders)

	assert.Equal(t, models.OrderStatusCompleted, snap.Orders[0].Status)
	assert.Equal(t, models.DeliveryPickup, snap.Orders[0].DeliveryType)
	assert.NotNil(t, snap.Orders[0].Items)
}
