package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// OrderRepository defines the interface for completed-order history. Cart
// items live in a JSON text column and are rehydrated on read.
type OrderRepository interface {
	ListByAccount(accountID string) ([]models.Order, error)
	GetByID(accountID, id string) (*models.Order, error)
	Upsert(executor SQLExecutor, accountID string, order *models.Order) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

var orderColumns = columnMap{
	columns: map[string]string{
		"date":          "date",
		"customerName":  "customer_name",
		"customerPhone": "customer_phone",
		"deliveryType":  "delivery_type",
		"address":       "address",
		"reference":     "reference",
		"paymentMethod": "payment_method",
		"changeFor":     "change_for",
		"items":         "items",
		"totalAmount":   "total_amount",
		"status":        "status",
	},
	jsonCols: map[string]bool{
		"items": true,
	},
}

const orderSelect = `SELECT id, date, customer_name, customer_phone, delivery_type, address,
	reference, payment_method, change_for, items, total_amount, status FROM orders`

func scanOrder(scanner interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var order models.Order
	var itemsJSON string
	if err := scanner.Scan(&order.ID, &order.Date, &order.CustomerName, &order.CustomerPhone,
		&order.DeliveryType, &order.Address, &order.Reference, &order.PaymentMethod,
		&order.ChangeFor, &itemsJSON, &order.TotalAmount, &order.Status); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(itemsJSON, &order.Items); err != nil {
		return nil, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

func (r *orderRepository) ListByAccount(accountID string) ([]models.Order, error) {
	orders := []models.Order{}
	query := orderSelect + ` WHERE account_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, *order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) GetByID(accountID, id string) (*models.Order, error) {
	query := orderSelect + ` WHERE account_id = $1 AND id = $2`

	order, err := scanOrder(r.db.QueryRow(query, accountID, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: querying order %s: %v", ErrDatabaseError, id, err)
	}
	return order, nil
}

func (r *orderRepository) Upsert(executor SQLExecutor, accountID string, order *models.Order) error {
	itemsJSON, err := marshalJSONColumn(order.Items)
	if err != nil {
		return err
	}

	query := `INSERT INTO orders
	            (id, account_id, date, customer_name, customer_phone, delivery_type, address,
	             reference, payment_method, change_for, items, total_amount, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            date = EXCLUDED.date, customer_name = EXCLUDED.customer_name,
	            customer_phone = EXCLUDED.customer_phone, delivery_type = EXCLUDED.delivery_type,
	            address = EXCLUDED.address, reference = EXCLUDED.reference,
	            payment_method = EXCLUDED.payment_method, change_for = EXCLUDED.change_for,
	            items = EXCLUDED.items, total_amount = EXCLUDED.total_amount,
	            status = EXCLUDED.status`

	_, err = executor.Exec(query,
		order.ID, accountID, order.Date, order.CustomerName, order.CustomerPhone,
		order.DeliveryType, order.Address, order.Reference, order.PaymentMethod,
		order.ChangeFor, itemsJSON, order.TotalAmount, order.Status,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting order %s: %v", ErrDatabaseError, order.ID, err)
	}
	return nil
}

func (r *orderRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, orderColumns, "orders", fields, accountID, id)
}

func (r *orderRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "orders", accountID, id)
}
