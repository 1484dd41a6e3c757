package pos_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/pos"
)

func TestProcessOrder_DeductsStockFromRecipe(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)

	_, err := store.ProcessOrder(context.Background(), burgerOrder(burgerID, 1))
	require.NoError(t, err)

	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 9.85, beef.StockQuantity, 1e-9)

	var saleMovements []models.StockMovement
	for _, mov := range store.StockMovements() {
		if mov.Type == models.MovementSale {
			saleMovements = append(saleMovements, mov)
		}
	}
	require.Len(t, saleMovements, 1)
	assert.Equal(t, beefID, saleMovements[0].IngredientID)
	assert.InDelta(t, 0.15, saleMovements[0].Quantity, 1e-9)
	assert.Contains(t, saleMovements[0].Reason, "sale order #")
}

func TestProcessOrder_LedgerLinkage(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)

	order, err := store.ProcessOrder(context.Background(), burgerOrder(burgerID, 2))
	require.NoError(t, err)

	fragment := models.IDFragment(order.ID)

	var linked []models.Revenue
	for _, rev := range store.Revenues() {
		if strings.Contains(rev.Description, "#"+fragment) {
			linked = append(linked, rev)
		}
	}
	require.Len(t, linked, 1)
	assert.Equal(t, order.TotalAmount, linked[0].Amount)
	assert.Contains(t, linked[0].Description, "Ana")
	assert.Equal(t, models.PaymentPix, linked[0].PaymentMethod)

	movements := 0
	for _, mov := range store.StockMovements() {
		if strings.Contains(mov.Reason, "sale order #"+fragment) {
			movements++
		}
	}
	// One movement per distinct ingredient touched by the cart.
	assert.Equal(t, 1, movements)
}

func TestProcessOrder_RevenueCategoryFromDeliveryType(t *testing.T) {
	cases := []struct {
		deliveryType string
		category     string
	}{
		{models.DeliveryCourier, models.RevenueDelivery},
		{models.DeliveryTable, models.RevenueCounter},
		{models.DeliveryPickup, models.RevenueOther},
	}

	for _, tc := range cases {
		t.Run(tc.deliveryType, func(t *testing.T) {
			store, _, _ := newTestStore(t)
			_, burgerID := seedBurgerShop(t, store)

			order := burgerOrder(burgerID, 1)
			order.DeliveryType = tc.deliveryType
			processed, err := store.ProcessOrder(context.Background(), order)
			require.NoError(t, err)

			revenues := store.Revenues()
			require.Len(t, revenues, 1)
			assert.Equal(t, tc.category, revenues[0].Category)
			assert.Equal(t, processed.TotalAmount, revenues[0].Amount)
		})
	}
}

func TestProcessOrder_CustomerUpsertByPhone(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	_, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)

	cust, ok := findCustomerByPhone(store, "5511999990000")
	require.True(t, ok)
	assert.Equal(t, 1, cust.TotalOrders)
	assert.Equal(t, "Ana", cust.Name)

	second := burgerOrder(burgerID, 1)
	second.Address = "Rua das Flores 10"
	_, err = store.ProcessOrder(ctx, second)
	require.NoError(t, err)

	cust, ok = findCustomerByPhone(store, "5511999990000")
	require.True(t, ok)
	assert.Equal(t, 2, cust.TotalOrders)
	assert.Equal(t, "Rua das Flores 10", cust.Address)

	// One directory record per phone, not per order.
	assert.Len(t, store.Customers(), 1)
}

func TestProcessOrder_NoPhoneSkipsDirectory(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)

	order := burgerOrder(burgerID, 1)
	order.CustomerPhone = ""
	_, err := store.ProcessOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Empty(t, store.Customers())
}

func TestProcessOrder_SaleDeductionDoesNotClamp(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	flour := store.SaveIngredient(ctx, models.Ingredient{
		Name:          "Flour",
		Unit:          models.UnitKilogram,
		StockQuantity: 0.1,
	})
	cake := store.SaveProduct(ctx, models.Product{
		Name:  "Cake",
		Price: 10,
		Ingredients: []models.RecipeLine{
			{IngredientID: flour.ID, Quantity: 0.5},
		},
	})

	order := burgerOrder(cake.ID, 1)
	_, err := store.ProcessOrder(ctx, order)
	require.NoError(t, err)

	// The sale path writes the raw difference; losses and entries clamp at
	// zero but checkout can oversell into negative stock.
	got := findIngredient(t, store, flour.ID)
	assert.InDelta(t, -0.4, got.StockQuantity, 1e-9)
}

func TestProcessOrder_AddOnsDoNotConsumeStock(t *testing.T) {
	store, _, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)

	order := burgerOrder(burgerID, 1)
	order.Items[0].SelectedAddOns = []models.ProductAddOn{{ID: "a1", Name: "Extra Bacon", Price: 4}}
	order.Items[0].UnitPrice = 29
	order.Items[0].Total = 29
	order.TotalAmount = 29

	_, err := store.ProcessOrder(context.Background(), order)
	require.NoError(t, err)

	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 9.85, beef.StockQuantity, 1e-9)
}

func TestProcessOrder_Validation(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	empty := burgerOrder(burgerID, 1)
	empty.Items = nil
	_, err := store.ProcessOrder(ctx, empty)
	assert.ErrorIs(t, err, pos.ErrEmptyOrder)

	noName := burgerOrder(burgerID, 1)
	noName.CustomerName = "  "
	_, err = store.ProcessOrder(ctx, noName)
	assert.ErrorIs(t, err, pos.ErrMissingCustomerName)

	// Nothing was mutated by the rejected orders.
	assert.Empty(t, store.Orders())
	assert.Empty(t, store.Revenues())
}

func TestProcessOrder_RemoteFailureKeepsLocalState(t *testing.T) {
	store, remote, _ := newTestStore(t)
	beefID, burgerID := seedBurgerShop(t, store)

	remote.mu.Lock()
	remote.failWrites = true
	remote.mu.Unlock()

	_, err := store.ProcessOrder(context.Background(), burgerOrder(burgerID, 1))
	require.NoError(t, err)

	// The optimistic local mutation stands even though every remote write
	// failed.
	beef := findIngredient(t, store, beefID)
	assert.InDelta(t, 9.85, beef.StockQuantity, 1e-9)
	assert.Len(t, store.Orders(), 1)
	assert.Len(t, store.Revenues(), 1)
	assert.Equal(t, 0, remote.upsertCount(models.CollectionOrders))
}
