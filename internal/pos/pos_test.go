package pos_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/pos"
)

const testAccount = "acct1234"

// fakeRemote records every call and can be told to fail.
type fakeRemote struct {
	mu          sync.Mutex
	upserts     map[string]int
	deletes     map[string]int
	migrated    *models.Snapshot
	fetched     *models.Snapshot
	failWrites  bool
	failMigrate bool
	failFetch   bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		upserts: map[string]int{},
		deletes: map[string]int{},
	}
}

func (f *fakeRemote) FetchAll(ctx context.Context, accountID string) (*models.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch || f.fetched == nil {
		return nil, errors.New("remote unavailable")
	}
	return f.fetched, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, accountID, collection string, record interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("remote unavailable")
	}
	f.upserts[collection]++
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, accountID, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("remote unavailable")
	}
	f.deletes[collection]++
	return nil
}

func (f *fakeRemote) Migrate(ctx context.Context, accountID string, snapshot *models.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMigrate {
		return errors.New("remote unavailable")
	}
	f.migrated = snapshot
	return nil
}

func (f *fakeRemote) upsertCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts[collection]
}

func (f *fakeRemote) deleteCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes[collection]
}

func newTestStore(t *testing.T) (*pos.Store, *fakeRemote, *pos.LocalCache) {
	t.Helper()
	cache, err := pos.OpenCache(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	remote := newFakeRemote()
	store := pos.NewStore(testAccount, remote, cache)
	return store, remote, cache
}

// seedBurgerShop sets up the scenario used across the order tests: ground
// beef stock of 10 kg and a burger whose recipe consumes 0.150 kg per unit.
func seedBurgerShop(t *testing.T, store *pos.Store) (beefID, burgerID string) {
	t.Helper()
	ctx := context.Background()

	beef := store.SaveIngredient(ctx, models.Ingredient{
		Name:          "Ground Beef",
		Category:      "Insumos",
		Unit:          models.UnitKilogram,
		CostPerUnit:   30.0,
		StockQuantity: 10,
		MinStock:      2,
	})
	burger := store.SaveProduct(ctx, models.Product{
		Name:     "Classic Bacon Burger",
		Price:    25.0,
		Category: "Lanches",
		Ingredients: []models.RecipeLine{
			{IngredientID: beef.ID, Quantity: 0.150},
		},
	})
	return beef.ID, burger.ID
}

func burgerOrder(burgerID string, quantity int) models.Order {
	return models.Order{
		CustomerName:  "Ana",
		CustomerPhone: "5511999990000",
		DeliveryType:  models.DeliveryPickup,
		PaymentMethod: models.PaymentPix,
		Items: []models.OrderItem{
			{
				ProductID:   burgerID,
				ProductName: "Classic Bacon Burger",
				Quantity:    quantity,
				UnitPrice:   25.0,
				Total:       25.0 * float64(quantity),
			},
		},
		TotalAmount: 25.0 * float64(quantity),
	}
}

func findIngredient(t *testing.T, store *pos.Store, id string) models.Ingredient {
	t.Helper()
	for _, ing := range store.Ingredients() {
		if ing.ID == id {
			return ing
		}
	}
	t.Fatalf("ingredient %s not found", id)
	return models.Ingredient{}
}

func findCustomerByPhone(store *pos.Store, phone string) (models.Customer, bool) {
	for _, cust := range store.Customers() {
		if cust.Phone == phone {
			return cust, true
		}
	}
	return models.Customer{}, false
}

func migratedFlagKey(accountID string) string {
	return fmt.Sprintf("reidolanche:%s:migrated", accountID)
}
