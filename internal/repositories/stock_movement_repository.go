package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// StockMovementRepository defines the interface for the stock audit trail.
type StockMovementRepository interface {
	ListByAccount(accountID string) ([]models.StockMovement, error)
	ListByIngredient(accountID, ingredientID string) ([]models.StockMovement, error)
	Upsert(executor SQLExecutor, accountID string, mov *models.StockMovement) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type stockMovementRepository struct {
	db *sql.DB
}

// NewStockMovementRepository creates a new instance of StockMovementRepository.
func NewStockMovementRepository(db *sql.DB) StockMovementRepository {
	return &stockMovementRepository{db: db}
}

var stockMovementColumns = columnMap{
	columns: map[string]string{
		"ingredientId": "ingredient_id",
		"type":         "type",
		"quantity":     "quantity",
		"date":         "date",
		"reason":       "reason",
		"cost":         "cost",
	},
}

func (r *stockMovementRepository) ListByAccount(accountID string) ([]models.StockMovement, error) {
	query := `SELECT id, ingredient_id, type, quantity, date, reason, cost
	          FROM stock_movements WHERE account_id = $1 ORDER BY date DESC`
	return r.queryMovements(query, accountID)
}

func (r *stockMovementRepository) ListByIngredient(accountID, ingredientID string) ([]models.StockMovement, error) {
	query := `SELECT id, ingredient_id, type, quantity, date, reason, cost
	          FROM stock_movements WHERE account_id = $1 AND ingredient_id = $2 ORDER BY date DESC`
	return r.queryMovements(query, accountID, ingredientID)
}

func (r *stockMovementRepository) queryMovements(query string, args ...interface{}) ([]models.StockMovement, error) {
	movements := []models.StockMovement{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying stock movements: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var mov models.StockMovement
		if err := rows.Scan(&mov.ID, &mov.IngredientID, &mov.Type, &mov.Quantity,
			&mov.Date, &mov.Reason, &mov.Cost); err != nil {
			return nil, fmt.Errorf("%w: scanning stock movement: %v", ErrDatabaseError, err)
		}
		movements = append(movements, mov)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating stock movement rows: %v", ErrDatabaseError, err)
	}
	return movements, nil
}

func (r *stockMovementRepository) Upsert(executor SQLExecutor, accountID string, mov *models.StockMovement) error {
	query := `INSERT INTO stock_movements
	            (id, account_id, ingredient_id, type, quantity, date, reason, cost)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            ingredient_id = EXCLUDED.ingredient_id, type = EXCLUDED.type,
	            quantity = EXCLUDED.quantity, date = EXCLUDED.date,
	            reason = EXCLUDED.reason, cost = EXCLUDED.cost`

	_, err := executor.Exec(query,
		mov.ID, accountID, mov.IngredientID, mov.Type, mov.Quantity, mov.Date, mov.Reason, mov.Cost,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting stock movement %s: %v", ErrDatabaseError, mov.ID, err)
	}
	return nil
}

func (r *stockMovementRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, stockMovementColumns, "stock_movements", fields, accountID, id)
}

func (r *stockMovementRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "stock_movements", accountID, id)
}
