package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// IngredientRepository defines the interface for ingredient-related database
// operations on the durable store.
type IngredientRepository interface {
	ListByAccount(accountID string) ([]models.Ingredient, error)
	Upsert(executor SQLExecutor, accountID string, ing *models.Ingredient) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type ingredientRepository struct {
	db *sql.DB
}

// NewIngredientRepository creates a new instance of IngredientRepository.
func NewIngredientRepository(db *sql.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

var ingredientColumns = columnMap{
	columns: map[string]string{
		"name":          "name",
		"category":      "category",
		"unit":          "unit",
		"costPerUnit":   "cost_per_unit",
		"exitPrice":     "exit_price",
		"stockQuantity": "stock_quantity",
		"minStock":      "min_stock",
	},
}

func (r *ingredientRepository) ListByAccount(accountID string) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	query := `SELECT id, name, category, unit, cost_per_unit, exit_price, stock_quantity, min_stock
	          FROM ingredients WHERE account_id = $1 ORDER BY name`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying ingredients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.Name, &ing.Category, &ing.Unit,
			&ing.CostPerUnit, &ing.ExitPrice, &ing.StockQuantity, &ing.MinStock,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning ingredient: %v", ErrDatabaseError, err)
		}
		ingredients = append(ingredients, ing)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating ingredient rows: %v", ErrDatabaseError, err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) Upsert(executor SQLExecutor, accountID string, ing *models.Ingredient) error {
	query := `INSERT INTO ingredients
	            (id, account_id, name, category, unit, cost_per_unit, exit_price, stock_quantity, min_stock)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            name = EXCLUDED.name, category = EXCLUDED.category, unit = EXCLUDED.unit,
	            cost_per_unit = EXCLUDED.cost_per_unit, exit_price = EXCLUDED.exit_price,
	            stock_quantity = EXCLUDED.stock_quantity, min_stock = EXCLUDED.min_stock`

	_, err := executor.Exec(query,
		ing.ID, accountID, ing.Name, ing.Category, ing.Unit,
		ing.CostPerUnit, ing.ExitPrice, ing.StockQuantity, ing.MinStock,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting ingredient %s: %v", ErrDatabaseError, ing.ID, err)
	}
	return nil
}

func (r *ingredientRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, ingredientColumns, "ingredients", fields, accountID, id)
}

func (r *ingredientRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "ingredients", accountID, id)
}
