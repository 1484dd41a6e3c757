package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// RevenueRepository defines the interface for revenue ledger rows.
type RevenueRepository interface {
	ListByAccount(accountID string) ([]models.Revenue, error)
	Upsert(executor SQLExecutor, accountID string, rev *models.Revenue) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

// ExpenseRepository defines the interface for expense ledger rows.
type ExpenseRepository interface {
	ListByAccount(accountID string) ([]models.Expense, error)
	Upsert(executor SQLExecutor, accountID string, exp *models.Expense) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type revenueRepository struct {
	db *sql.DB
}

type expenseRepository struct {
	db *sql.DB
}

// NewRevenueRepository creates a new instance of RevenueRepository.
func NewRevenueRepository(db *sql.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

var revenueColumns = columnMap{
	columns: map[string]string{
		"date":          "date",
		"amount":        "amount",
		"description":   "description",
		"category":      "category",
		"paymentMethod": "payment_method",
	},
}

var expenseColumns = columnMap{
	columns: map[string]string{
		"date":          "date",
		"paidDate":      "paid_date",
		"amount":        "amount",
		"category":      "category",
		"description":   "description",
		"isRecurring":   "is_recurring",
		"status":        "status",
		"paymentMethod": "payment_method",
		"employeeId":    "employee_id",
	},
}

func (r *revenueRepository) ListByAccount(accountID string) ([]models.Revenue, error) {
	revenues := []models.Revenue{}
	query := `SELECT id, date, amount, description, category, payment_method
	          FROM revenues WHERE account_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying revenues: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rev models.Revenue
		if err := rows.Scan(&rev.ID, &rev.Date, &rev.Amount, &rev.Description,
			&rev.Category, &rev.PaymentMethod); err != nil {
			return nil, fmt.Errorf("%w: scanning revenue: %v", ErrDatabaseError, err)
		}
		revenues = append(revenues, rev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating revenue rows: %v", ErrDatabaseError, err)
	}
	return revenues, nil
}

func (r *revenueRepository) Upsert(executor SQLExecutor, accountID string, rev *models.Revenue) error {
	query := `INSERT INTO revenues
	            (id, account_id, date, amount, description, category, payment_method)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            date = EXCLUDED.date, amount = EXCLUDED.amount, description = EXCLUDED.description,
	            category = EXCLUDED.category, payment_method = EXCLUDED.payment_method`

	_, err := executor.Exec(query,
		rev.ID, accountID, rev.Date, rev.Amount, rev.Description, rev.Category, rev.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting revenue %s: %v", ErrDatabaseError, rev.ID, err)
	}
	return nil
}

func (r *revenueRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, revenueColumns, "revenues", fields, accountID, id)
}

func (r *revenueRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "revenues", accountID, id)
}

func (r *expenseRepository) ListByAccount(accountID string) ([]models.Expense, error) {
	expenses := []models.Expense{}
	query := `SELECT id, date, paid_date, amount, category, description, is_recurring, status, payment_method, employee_id
	          FROM expenses WHERE account_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var exp models.Expense
		var paidDate, employeeID sql.NullString
		if err := rows.Scan(&exp.ID, &exp.Date, &paidDate, &exp.Amount, &exp.Category,
			&exp.Description, &exp.IsRecurring, &exp.Status, &exp.PaymentMethod, &employeeID); err != nil {
			return nil, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		if paidDate.Valid {
			exp.PaidDate = paidDate.String
		}
		if employeeID.Valid {
			exp.EmployeeID = employeeID.String
		}
		expenses = append(expenses, exp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, nil
}

func (r *expenseRepository) Upsert(executor SQLExecutor, accountID string, exp *models.Expense) error {
	query := `INSERT INTO expenses
	            (id, account_id, date, paid_date, amount, category, description, is_recurring, status, payment_method, employee_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            date = EXCLUDED.date, paid_date = EXCLUDED.paid_date, amount = EXCLUDED.amount,
	            category = EXCLUDED.category, description = EXCLUDED.description,
	            is_recurring = EXCLUDED.is_recurring, status = EXCLUDED.status,
	            payment_method = EXCLUDED.payment_method, employee_id = EXCLUDED.employee_id`

	_, err := executor.Exec(query,
		exp.ID, accountID, exp.Date, nullIfEmpty(exp.PaidDate), exp.Amount, exp.Category,
		exp.Description, exp.IsRecurring, exp.Status, exp.PaymentMethod, nullIfEmpty(exp.EmployeeID),
	)
	if err != nil {
		return fmt.Errorf("%w: upserting expense %s: %v", ErrDatabaseError, exp.ID, err)
	}
	return nil
}

func (r *expenseRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, expenseColumns, "expenses", fields, accountID, id)
}

func (r *expenseRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "expenses", accountID, id)
}

// nullIfEmpty maps empty strings to SQL NULL for optional text columns.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
