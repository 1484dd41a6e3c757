package pos

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/pkg/utils"
)

// Store holds the terminal's working copy of every collection. Mutations
// update memory first, then push the record to the durable store and mirror
// the whole collection into the local cache. A failed remote write never
// rolls back the in-memory state; it is logged and the stores diverge until
// the next full migration.
type Store struct {
	mu        sync.Mutex
	accountID string
	remote    Remote
	cache     *LocalCache

	ingredients    []models.Ingredient
	products       []models.Product
	revenues       []models.Revenue
	expenses       []models.Expense
	stockMovements []models.StockMovement
	employees      []models.Employee
	customers      []models.Customer
	orders         []models.Order
}

// NewStore creates an empty store bound to one account.
func NewStore(accountID string, remote Remote, cache *LocalCache) *Store {
	return &Store{accountID: accountID, remote: remote, cache: cache}
}

// AccountID returns the account this store is bound to.
func (s *Store) AccountID() string {
	return s.accountID
}

// loadSnapshot replaces the in-memory collections. Caller holds s.mu.
func (s *Store) loadSnapshot(snapshot *models.Snapshot) {
	models.NormalizeSnapshot(snapshot)
	s.ingredients = snapshot.Ingredients
	s.products = snapshot.Products
	s.revenues = snapshot.Revenues
	s.expenses = snapshot.Expenses
	s.stockMovements = snapshot.StockMovements
	s.employees = snapshot.Employees
	s.customers = snapshot.Customers
	s.orders = snapshot.Orders
}

// snapshot assembles the current in-memory state. Caller holds s.mu.
func (s *Store) snapshot() *models.Snapshot {
	return &models.Snapshot{
		AccountID:      s.accountID,
		Ingredients:    s.ingredients,
		Products:       s.products,
		Revenues:       s.revenues,
		Expenses:       s.expenses,
		StockMovements: s.stockMovements,
		Employees:      s.employees,
		Customers:      s.customers,
		Orders:         s.orders,
	}
}

// mirror writes one collection's full contents to the local cache. Caller
// holds s.mu.
func (s *Store) mirror(collection string, records interface{}) {
	encoded, err := json.Marshal(records)
	if err != nil {
		utils.LogWarn(err, "local cache mirror: encoding "+collection)
		return
	}
	if err := s.cache.Set(collectionKey(s.accountID, collection), string(encoded)); err != nil {
		utils.LogWarn(err, "local cache mirror: writing "+collection)
	}
}

// pushUpsert sends one record to the durable store, soft-failing on error.
// Caller holds s.mu.
func (s *Store) pushUpsert(ctx context.Context, collection string, record interface{}) {
	if s.remote == nil {
		return
	}
	if err := s.remote.Upsert(ctx, s.accountID, collection, record); err != nil {
		utils.LogWarn(err, "remote write failed, local state stands: "+collection)
	}
}

// pushDelete removes one record from the durable store, soft-failing on
// error. Caller holds s.mu.
func (s *Store) pushDelete(ctx context.Context, collection, id string) {
	if s.remote == nil {
		return
	}
	if err := s.remote.Delete(ctx, s.accountID, collection, id); err != nil {
		utils.LogWarn(err, "remote delete failed, local state stands: "+collection)
	}
}

// persistUpsert runs the adapter sequence for one record: the in-memory
// collection has already been updated by the caller; push the record out and
// mirror the collection. Caller holds s.mu.
func (s *Store) persistUpsert(ctx context.Context, collection string, record, full interface{}) {
	s.pushUpsert(ctx, collection, record)
	s.mirror(collection, full)
}

// persistDelete is the delete-side counterpart of persistUpsert. Caller
// holds s.mu.
func (s *Store) persistDelete(ctx context.Context, collection, id string, full interface{}) {
	s.pushDelete(ctx, collection, id)
	s.mirror(collection, full)
}

// rehydrate loads one collection from the local cache into dest.
func rehydrate[T any](cache *LocalCache, accountID, collection string) ([]T, error) {
	records := []T{}
	raw, ok, err := cache.Get(collectionKey(accountID, collection))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return records, nil
	}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding cached %s: %w", collection, err)
	}
	return records, nil
}

// cachedSnapshot assembles a full snapshot from the local cache.
func cachedSnapshot(cache *LocalCache, accountID string) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{AccountID: accountID}
	var err error

	if snapshot.Ingredients, err = rehydrate[models.Ingredient](cache, accountID, models.CollectionIngredients); err != nil {
		return nil, err
	}
	if snapshot.Products, err = rehydrate[models.Product](cache, accountID, models.CollectionProducts); err != nil {
		return nil, err
	}
	if snapshot.Revenues, err = rehydrate[models.Revenue](cache, accountID, models.CollectionRevenues); err != nil {
		return nil, err
	}
	if snapshot.Expenses, err = rehydrate[models.Expense](cache, accountID, models.CollectionExpenses); err != nil {
		return nil, err
	}
	if snapshot.StockMovements, err = rehydrate[models.StockMovement](cache, accountID, models.CollectionStockMovements); err != nil {
		return nil, err
	}
	if snapshot.Employees, err = rehydrate[models.Employee](cache, accountID, models.CollectionEmployees); err != nil {
		return nil, err
	}
	if snapshot.Customers, err = rehydrate[models.Customer](cache, accountID, models.CollectionCustomers); err != nil {
		return nil, err
	}
	if snapshot.Orders, err = rehydrate[models.Order](cache, accountID, models.CollectionOrders); err != nil {
		return nil, err
	}
	return snapshot, nil
}
