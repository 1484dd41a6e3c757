package pos

import (
	"context"
	"errors"
	"fmt"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/pkg/utils"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

// AddStockEntry increments an ingredient's quantity and appends an entry
// movement. A positive unitCost also overwrites the ingredient's cost per
// unit, so the latest purchase price wins.
func (s *Store) AddStockEntry(ctx context.Context, ingredientID string, quantity, unitCost float64, reason string) error {
	if quantity <= 0 {
		return fmt.Errorf("stock entry quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := s.findIngredient(ingredientID)
	if ing == nil {
		return ErrIngredientNotFound
	}

	ing.StockQuantity += quantity
	if unitCost > 0 {
		ing.CostPerUnit = unitCost
	}
	s.persistUpsert(ctx, models.CollectionIngredients, ing, s.ingredients)

	movement := models.StockMovement{
		ID:           utils.GenerateID(),
		IngredientID: ingredientID,
		Type:         models.MovementEntry,
		Quantity:     quantity,
		Date:         nowISO(),
		Reason:       reason,
		Cost:         unitCost,
	}
	s.stockMovements = append(s.stockMovements, movement)
	s.persistUpsert(ctx, models.CollectionStockMovements, &movement, s.stockMovements)
	return nil
}

// RegisterLoss decrements an ingredient's quantity, clamped at zero, appends
// a loss movement, and synthesizes an expense row for the lost value so the
// cash-flow report reflects it.
func (s *Store) RegisterLoss(ctx context.Context, ingredientID string, quantity float64, reason string) error {
	if quantity <= 0 {
		return fmt.Errorf("loss quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := s.findIngredient(ingredientID)
	if ing == nil {
		return ErrIngredientNotFound
	}

	ing.StockQuantity -= quantity
	if ing.StockQuantity < 0 {
		ing.StockQuantity = 0
	}
	s.persistUpsert(ctx, models.CollectionIngredients, ing, s.ingredients)

	movement := models.StockMovement{
		ID:           utils.GenerateID(),
		IngredientID: ingredientID,
		Type:         models.MovementLoss,
		Quantity:     quantity,
		Date:         nowISO(),
		Reason:       reason,
	}
	s.stockMovements = append(s.stockMovements, movement)
	s.persistUpsert(ctx, models.CollectionStockMovements, &movement, s.stockMovements)

	expense := models.Expense{
		ID:            utils.GenerateID(),
		Date:          nowISO(),
		Amount:        ing.CostPerUnit * quantity,
		Category:      "Outros",
		Description:   fmt.Sprintf("Perda de Estoque: %s (%s)", ing.Name, reason),
		IsRecurring:   false,
		Status:        models.ExpenseStatusPaid,
		PaymentMethod: models.PaymentCash,
	}
	s.expenses = append(s.expenses, expense)
	s.persistUpsert(ctx, models.CollectionExpenses, &expense, s.expenses)
	return nil
}

// findIngredient returns a pointer into the live slice. Caller holds s.mu.
func (s *Store) findIngredient(id string) *models.Ingredient {
	for i := range s.ingredients {
		if s.ingredients[i].ID == id {
			return &s.ingredients[i]
		}
	}
	return nil
}
