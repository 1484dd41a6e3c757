package repositories

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// ProductRepository defines the interface for product-related database
// operations. Recipes, complements and add-ons live in JSON text columns and
// are rehydrated on read.
type ProductRepository interface {
	ListByAccount(accountID string) ([]models.Product, error)
	Upsert(executor SQLExecutor, accountID string, p *models.Product) error
	UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error
	Delete(executor SQLExecutor, accountID, id string) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

var productColumns = columnMap{
	columns: map[string]string{
		"name":        "name",
		"description": "description",
		"price":       "price",
		"category":    "category",
		"ingredients": "ingredients",
		"complements": "complements",
		"addOns":      "add_ons",
	},
	jsonCols: map[string]bool{
		"ingredients": true,
		"complements": true,
		"addOns":      true,
	},
}

func (r *productRepository) ListByAccount(accountID string) ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT id, name, description, price, category, ingredients, complements, add_ons
	          FROM products WHERE account_id = $1 ORDER BY name`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		var description sql.NullString
		var recipeJSON string
		var complementsJSON, addOnsJSON sql.NullString

		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price, &p.Category,
			&recipeJSON, &complementsJSON, &addOnsJSON); err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		if description.Valid {
			p.Description = description.String
		}
		if err := unmarshalJSONColumn(recipeJSON, &p.Ingredients); err != nil {
			return nil, err
		}
		if complementsJSON.Valid {
			if err := unmarshalJSONColumn(complementsJSON.String, &p.Complements); err != nil {
				return nil, err
			}
		}
		if addOnsJSON.Valid {
			if err := unmarshalJSONColumn(addOnsJSON.String, &p.AddOns); err != nil {
				return nil, err
			}
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *productRepository) Upsert(executor SQLExecutor, accountID string, p *models.Product) error {
	recipeJSON, err := marshalJSONColumn(p.Ingredients)
	if err != nil {
		return err
	}
	complementsJSON, err := marshalJSONColumn(p.Complements)
	if err != nil {
		return err
	}
	addOnsJSON, err := marshalJSONColumn(p.AddOns)
	if err != nil {
		return err
	}

	query := `INSERT INTO products
	            (id, account_id, name, description, price, category, ingredients, complements, add_ons)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (account_id, id) DO UPDATE SET
	            name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price,
	            category = EXCLUDED.category, ingredients = EXCLUDED.ingredients,
	            complements = EXCLUDED.complements, add_ons = EXCLUDED.add_ons`

	_, err = executor.Exec(query,
		p.ID, accountID, p.Name, p.Description, p.Price, p.Category,
		recipeJSON, complementsJSON, addOnsJSON,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting product %s: %v", ErrDatabaseError, p.ID, err)
	}
	return nil
}

func (r *productRepository) UpdateFields(executor SQLExecutor, accountID, id string, fields map[string]interface{}) error {
	return updateRow(executor, productColumns, "products", fields, accountID, id)
}

func (r *productRepository) Delete(executor SQLExecutor, accountID, id string) error {
	return deleteRow(executor, "products", accountID, id)
}
