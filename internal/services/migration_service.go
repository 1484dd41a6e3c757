package services

import (
	"database/sql"
	"fmt"

	"rei_do_lanche_backend/internal/models"
)

// MigrationResult summarizes one bulk import.
type MigrationResult struct {
	AccountID string         `json:"accountId"`
	Imported  map[string]int `json:"imported"`
}

// MigrationService defines the interface for the one-shot bulk import a
// terminal performs when it first connects to the durable store.
type MigrationService interface {
	ImportSnapshot(accountID string, snapshot *models.Snapshot) (*MigrationResult, error)
}

type migrationService struct {
	db    *sql.DB
	repos Repositories
}

// NewMigrationService creates a new instance of MigrationService.
func NewMigrationService(db *sql.DB, repos Repositories) MigrationService {
	return &migrationService{db: db, repos: repos}
}

// ImportSnapshot upserts the whole snapshot inside one transaction so a
// retried migration never leaves half an account behind. Rows are upserted
// by (account, id), which makes the endpoint safely re-runnable.
func (s *migrationService) ImportSnapshot(accountID string, snapshot *models.Snapshot) (*MigrationResult, error) {
	models.NormalizeSnapshot(snapshot)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting migration transaction: %w", err)
	}
	defer tx.Rollback()

	imported := map[string]int{}

	for i := range snapshot.Ingredients {
		if err := s.repos.Ingredients.Upsert(tx, accountID, &snapshot.Ingredients[i]); err != nil {
			return nil, fmt.Errorf("importing ingredients: %w", err)
		}
	}
	imported[models.CollectionIngredients] = len(snapshot.Ingredients)

	for i := range snapshot.Products {
		if err := s.repos.Products.Upsert(tx, accountID, &snapshot.Products[i]); err != nil {
			return nil, fmt.Errorf("importing products: %w", err)
		}
	}
	imported[models.CollectionProducts] = len(snapshot.Products)

	for i := range snapshot.Revenues {
		if err := s.repos.Revenues.Upsert(tx, accountID, &snapshot.Revenues[i]); err != nil {
			return nil, fmt.Errorf("importing revenues: %w", err)
		}
	}
	imported[models.CollectionRevenues] = len(snapshot.Revenues)

	for i := range snapshot.Expenses {
		if err := s.repos.Expenses.Upsert(tx, accountID, &snapshot.Expenses[i]); err != nil {
			return nil, fmt.Errorf("importing expenses: %w", err)
		}
	}
	imported[models.CollectionExpenses] = len(snapshot.Expenses)

	for i := range snapshot.StockMovements {
		if err := s.repos.StockMovements.Upsert(tx, accountID, &snapshot.StockMovements[i]); err != nil {
			return nil, fmt.Errorf("importing stock movements: %w", err)
		}
	}
	imported[models.CollectionStockMovements] = len(snapshot.StockMovements)

	for i := range snapshot.Employees {
		if err := s.repos.Employees.Upsert(tx, accountID, &snapshot.Employees[i]); err != nil {
			return nil, fmt.Errorf("importing employees: %w", err)
		}
	}
	imported[models.CollectionEmployees] = len(snapshot.Employees)

	for i := range snapshot.Customers {
		if err := s.repos.Customers.Upsert(tx, accountID, &snapshot.Customers[i]); err != nil {
			return nil, fmt.Errorf("importing customers: %w", err)
		}
	}
	imported[models.CollectionCustomers] = len(snapshot.Customers)

	for i := range snapshot.Orders {
		if err := s.repos.Orders.Upsert(tx, accountID, &snapshot.Orders[i]); err != nil {
			return nil, fmt.Errorf("importing orders: %w", err)
		}
	}
	imported[models.CollectionOrders] = len(snapshot.Orders)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing migration transaction: %w", err)
	}
	return &MigrationResult{AccountID: accountID, Imported: imported}, nil
}
