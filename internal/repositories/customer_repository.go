package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// CustomerRepository defines the interface for the phone-keyed directory.
type CustomerRepository interface {
	ListByAccount(accountID string) ([]models.Customer, error)
	FindByPhone(accountID, phone string) (*models.Customer, error)
	Upsert(executor SQLExecutor, accountID string, cust *models.Customer) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

var customerColumns = columnMap{
	columns: map[string]string{
		"name":          "name",
		"phone":         "phone",
		"address":       "address",
		"reference":     "reference",
		"lastOrderDate": "last_order_date",
		"totalOrders":   "total_orders",
	},
}

const customerSelect = `SELECT id, name, phone, address, reference, last_order_date, total_orders FROM customers`

func (r *customerRepository) ListByAccount(accountID string) ([]models.Customer, error) {
	customers := []models.Customer{}
	query := customerSelect + ` WHERE account_id = $1 ORDER BY name`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cust models.Customer
		if err := rows.Scan(&cust.ID, &cust.Name, &cust.Phone, &cust.Address,
			&cust.Reference, &cust.LastOrderDate, &cust.TotalOrders); err != nil {
			return nil, fmt.Errorf("%w: scanning customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, cust)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}

func (r *customerRepository) FindByPhone(accountID, phone string) (*models.Customer, error) {
	query := customerSelect + ` WHERE account_id = $1 AND phone = $2`

	var cust models.Customer
	err := r.db.QueryRow(query, accountID, phone).Scan(&cust.ID, &cust.Name, &cust.Phone,
		&cust.Address, &cust.Reference, &cust.LastOrderDate, &cust.TotalOrders)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: querying customer by phone: %v", ErrDatabaseError, err)
	}
	return &cust, nil
}

func (r *customerRepository) Upsert(executor SQLExecutor, accountID string, cust *models.Customer) error {
	query := `INSERT INTO customers
	            (id, account_id, name, phone, address, reference, last_order_date, total_orders)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            name = EXCLUDED.name, phone = EXCLUDED.phone, address = EXCLUDED.address,
	            reference = EXCLUDED.reference, last_order_date = EXCLUDED.last_order_date,
	            total_orders = EXCLUDED.total_orders`

	_, err := executor.Exec(query,
		cust.ID, accountID, cust.Name, cust.Phone, cust.Address, cust.Reference,
		cust.LastOrderDate, cust.TotalOrders,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting customer %s: %v", ErrDatabaseError, cust.ID, err)
	}
	return nil
}

func (r *customerRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, customerColumns, "customers", fields, accountID, id)
}

func (r *customerRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "customers", accountID, id)
}
