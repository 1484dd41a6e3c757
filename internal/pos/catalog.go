package pos

import (
	"context"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/pkg/utils"
)

// Ingredients returns a copy of the ingredient collection.
func (s *Store) Ingredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ingredient{}, s.ingredients...)
}

// Products returns a copy of the product collection.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...)
}

// Revenues returns a copy of the revenue ledger.
func (s *Store) Revenues() []models.Revenue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Revenue{}, s.revenues...)
}

// Expenses returns a copy of the expense ledger.
func (s *Store) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense{}, s.expenses...)
}

// StockMovements returns a copy of the movement audit trail.
func (s *Store) StockMovements() []models.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.StockMovement{}, s.stockMovements...)
}

// Employees returns a copy of the employee collection.
func (s *Store) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Employee{}, s.employees...)
}

// Customers returns a copy of the customer directory.
func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer{}, s.customers...)
}

// Orders returns a copy of the full order history.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order{}, s.orders...)
}

// VisibleOrders returns the order history with everything before the last
// history clear hidden. Clearing hides, it never deletes.
func (s *Store) VisibleOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	clearedAt, ok, err := s.cache.Get(historyClearKey(s.accountID))
	if err != nil {
		utils.LogWarn(err, "reading history clear time")
	}
	if !ok || clearedAt == "" {
		return append([]models.Order{}, s.orders...)
	}

	visible := []models.Order{}
	for _, order := range s.orders {
		if order.Date > clearedAt {
			visible = append(visible, order)
		}
	}
	return visible
}

// ClearHistory hides all current orders from the history view without
// deleting them.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Set(historyClearKey(s.accountID), nowISO())
}

// ProductCost computes the ingredient cost of one product unit from its
// recipe and current ingredient costs. Recipe lines referencing missing
// ingredients contribute nothing.
func (s *Store) ProductCost(productID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		for _, line := range s.products[i].Ingredients {
			for j := range s.ingredients {
				if s.ingredients[j].ID == line.IngredientID {
					total += s.ingredients[j].CostPerUnit * line.Quantity
					break
				}
			}
		}
		break
	}
	return total
}

// LowStockIngredients lists ingredients at or below their minimum stock
// threshold.
func (s *Store) LowStockIngredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	low := []models.Ingredient{}
	for _, ing := range s.ingredients {
		if ing.StockQuantity <= ing.MinStock {
			low = append(low, ing)
		}
	}
	return low
}

// SaveIngredient inserts or replaces one ingredient, assigning an id to new
// records.
func (s *Store) SaveIngredient(ctx context.Context, ing models.Ingredient) models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ing.ID == "" {
		ing.ID = utils.GenerateID()
	}
	models.NormalizeIngredient(&ing)
	replaceOrAppend(&s.ingredients, ing, func(existing models.Ingredient) bool { return existing.ID == ing.ID })
	s.persistUpsert(ctx, models.CollectionIngredients, &ing, s.ingredients)
	return ing
}

// DeleteIngredient removes one ingredient from the catalog. Its movement
// history stays.
func (s *Store) DeleteIngredient(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.ingredients, func(ing models.Ingredient) bool { return ing.ID == id })
	s.persistDelete(ctx, models.CollectionIngredients, id, s.ingredients)
}

// SaveProduct inserts or replaces one product.
func (s *Store) SaveProduct(ctx context.Context, p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = utils.GenerateID()
	}
	models.NormalizeProduct(&p)
	replaceOrAppend(&s.products, p, func(existing models.Product) bool { return existing.ID == p.ID })
	s.persistUpsert(ctx, models.CollectionProducts, &p, s.products)
	return p
}

// DeleteProduct removes one product.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.products, func(p models.Product) bool { return p.ID == id })
	s.persistDelete(ctx, models.CollectionProducts, id, s.products)
}

// SaveRevenue inserts or replaces one manual revenue row.
func (s *Store) SaveRevenue(ctx context.Context, rev models.Revenue) models.Revenue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rev.ID == "" {
		rev.ID = utils.GenerateID()
	}
	if rev.Date == "" {
		rev.Date = nowISO()
	}
	models.NormalizeRevenue(&rev)
	replaceOrAppend(&s.revenues, rev, func(existing models.Revenue) bool { return existing.ID == rev.ID })
	s.persistUpsert(ctx, models.CollectionRevenues, &rev, s.revenues)
	return rev
}

// DeleteRevenue removes one revenue row.
func (s *Store) DeleteRevenue(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.revenues, func(rev models.Revenue) bool { return rev.ID == id })
	s.persistDelete(ctx, models.CollectionRevenues, id, s.revenues)
}

// SaveExpense inserts or replaces one expense row.
func (s *Store) SaveExpense(ctx context.Context, exp models.Expense) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp.ID == "" {
		exp.ID = utils.GenerateID()
	}
	if exp.Date == "" {
		exp.Date = nowISO()
	}
	models.NormalizeExpense(&exp)
	replaceOrAppend(&s.expenses, exp, func(existing models.Expense) bool { return existing.ID == exp.ID })
	s.persistUpsert(ctx, models.CollectionExpenses, &exp, s.expenses)
	return exp
}

// DeleteExpense removes one expense row.
func (s *Store) DeleteExpense(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.expenses, func(exp models.Expense) bool { return exp.ID == id })
	s.persistDelete(ctx, models.CollectionExpenses, id, s.expenses)
}

// SaveEmployee inserts or replaces one employee record.
func (s *Store) SaveEmployee(ctx context.Context, emp models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID == "" {
		emp.ID = utils.GenerateID()
	}
	replaceOrAppend(&s.employees, emp, func(existing models.Employee) bool { return existing.ID == emp.ID })
	s.persistUpsert(ctx, models.CollectionEmployees, &emp, s.employees)
	return emp
}

// DeleteEmployee removes one employee record.
func (s *Store) DeleteEmployee(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.employees, func(emp models.Employee) bool { return emp.ID == id })
	s.persistDelete(ctx, models.CollectionEmployees, id, s.employees)
}

// SaveCustomer inserts or replaces one customer record directly, outside the
// order-driven upsert path.
func (s *Store) SaveCustomer(ctx context.Context, cust models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cust.ID == "" {
		cust.ID = utils.GenerateID()
	}
	models.NormalizeCustomer(&cust)
	replaceOrAppend(&s.customers, cust, func(existing models.Customer) bool { return existing.ID == cust.ID })
	s.persistUpsert(ctx, models.CollectionCustomers, &cust, s.customers)
	return cust
}

// DeleteCustomer removes one customer record.
func (s *Store) DeleteCustomer(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeByID(&s.customers, func(cust models.Customer) bool { return cust.ID == id })
	s.persistDelete(ctx, models.CollectionCustomers, id, s.customers)
}

func replaceOrAppend[T any](records *[]T, record T, match func(T) bool) {
	for i := range *records {
		if match((*records)[i]) {
			(*records)[i] = record
			return
		}
	}
	*records = append(*records, record)
}

func removeByID[T any](records *[]T, match func(T) bool) {
	kept := (*records)[:0]
	for _, record := range *records {
		if !match(record) {
			kept = append(kept, record)
		}
	}
	*records = kept
}
