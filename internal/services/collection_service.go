package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/repositories"
)

// Collection exposes one synchronized collection through a uniform CRUD
// surface so the REST layer can serve all eight with one set of handlers.
// Upsert takes the raw JSON body because each collection has its own shape.
type Collection interface {
	Name() string
	List(accountID string) (interface{}, error)
	Upsert(accountID string, body []byte) (interface{}, error)
	Update(accountID, id string, fields map[string]interface{}) error
	Delete(accountID, id string) error
}

// CollectionService routes collection names to their typed adapters.
type CollectionService interface {
	Get(name string) (Collection, bool)
	All() []Collection
}

type collectionService struct {
	byName map[string]Collection
	order  []Collection
}

// NewCollectionService wires every collection adapter over its repository.
func NewCollectionService(db *sql.DB, repos Repositories) CollectionService {
	collections := []Collection{
		&ingredientCollection{db: db, repo: repos.Ingredients},
		&productCollection{db: db, repo: repos.Products},
		&revenueCollection{db: db, repo: repos.Revenues},
		&expenseCollection{db: db, repo: repos.Expenses},
		&stockMovementCollection{db: db, repo: repos.StockMovements},
		&employeeCollection{db: db, repo: repos.Employees},
		&customerCollection{db: db, repo: repos.Customers},
		&orderCollection{db: db, repo: repos.Orders},
	}
	byName := make(map[string]Collection, len(collections))
	for _, col := range collections {
		byName[col.Name()] = col
	}
	return &collectionService{byName: byName, order: collections}
}

// Repositories bundles every typed repository the collection and migration
// services depend on.
type Repositories struct {
	Ingredients    repositories.IngredientRepository
	Products       repositories.ProductRepository
	Revenues       repositories.RevenueRepository
	Expenses       repositories.ExpenseRepository
	StockMovements repositories.StockMovementRepository
	Employees      repositories.EmployeeRepository
	Customers      repositories.CustomerRepository
	Orders         repositories.OrderRepository
}

func (s *collectionService) Get(name string) (Collection, bool) {
	col, ok := s.byName[name]
	return col, ok
}

func (s *collectionService) All() []Collection {
	return s.order
}

func decodeBody(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: decoding payload: %v", ErrValidation, err)
	}
	return nil
}

type ingredientCollection struct {
	db   *sql.DB
	repo repositories.IngredientRepository
}

func (c *ingredientCollection) Name() string { return models.CollectionIngredients }

func (c *ingredientCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *ingredientCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var ing models.Ingredient
	if err := decodeBody(body, &ing); err != nil {
		return nil, err
	}
	models.NormalizeIngredient(&ing)
	if ing.ID == "" {
		return nil, fmt.Errorf("%w: ingredient id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &ing); err != nil {
		return nil, err
	}
	return &ing, nil
}

func (c *ingredientCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *ingredientCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type productCollection struct {
	db   *sql.DB
	repo repositories.ProductRepository
}

func (c *productCollection) Name() string { return models.CollectionProducts }

func (c *productCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *productCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var p models.Product
	if err := decodeBody(body, &p); err != nil {
		return nil, err
	}
	models.NormalizeProduct(&p)
	if p.ID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *productCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *productCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type revenueCollection struct {
	db   *sql.DB
	repo repositories.RevenueRepository
}

func (c *revenueCollection) Name() string { return models.CollectionRevenues }

func (c *revenueCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *revenueCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var rev models.Revenue
	if err := decodeBody(body, &rev); err != nil {
		return nil, err
	}
	models.NormalizeRevenue(&rev)
	if rev.ID == "" {
		return nil, fmt.Errorf("%w: revenue id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (c *revenueCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *revenueCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type expenseCollection struct {
	db   *sql.DB
	repo repositories.ExpenseRepository
}

func (c *expenseCollection) Name() string { return models.CollectionExpenses }

func (c *expenseCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *expenseCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var exp models.Expense
	if err := decodeBody(body, &exp); err != nil {
		return nil, err
	}
	models.NormalizeExpense(&exp)
	if exp.ID == "" {
		return nil, fmt.Errorf("%w: expense id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *expenseCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *expenseCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type stockMovementCollection struct {
	db   *sql.DB
	repo repositories.StockMovementRepository
}

func (c *stockMovementCollection) Name() string { return models.CollectionStockMovements }

func (c *stockMovementCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *stockMovementCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var mov models.StockMovement
	if err := decodeBody(body, &mov); err != nil {
		return nil, err
	}
	models.NormalizeStockMovement(&mov)
	if mov.ID == "" {
		return nil, fmt.Errorf("%w: stock movement id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &mov); err != nil {
		return nil, err
	}
	return &mov, nil
}

func (c *stockMovementCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *stockMovementCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type employeeCollection struct {
	db   *sql.DB
	repo repositories.EmployeeRepository
}

func (c *employeeCollection) Name() string { return models.CollectionEmployees }

func (c *employeeCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *employeeCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var emp models.Employee
	if err := decodeBody(body, &emp); err != nil {
		return nil, err
	}
	if emp.ID == "" {
		return nil, fmt.Errorf("%w: employee id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *employeeCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *employeeCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type customerCollection struct {
	db   *sql.DB
	repo repositories.CustomerRepository
}

func (c *customerCollection) Name() string { return models.CollectionCustomers }

func (c *customerCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *customerCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var cust models.Customer
	if err := decodeBody(body, &cust); err != nil {
		return nil, err
	}
	models.NormalizeCustomer(&cust)
	if cust.ID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

func (c *customerCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *customerCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}

type orderCollection struct {
	db   *sql.DB
	repo repositories.OrderRepository
}

func (c *orderCollection) Name() string { return models.CollectionOrders }

func (c *orderCollection) List(accountID string) (interface{}, error) {
	return c.repo.ListByAccount(accountID)
}

func (c *orderCollection) Upsert(accountID string, body []byte) (interface{}, error) {
	var order models.Order
	if err := decodeBody(body, &order); err != nil {
		return nil, err
	}
	models.NormalizeOrder(&order)
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrValidation)
	}
	if err := c.repo.Upsert(c.db, accountID, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *orderCollection) Update(accountID, id string, fields map[string]interface{}) error {
	return c.repo.UpdateFields(c.db, accountID, id, fields)
}

func (c *orderCollection) Delete(accountID, id string) error {
	return c.repo.Delete(c.db, accountID, id)
}
