package pos

import (
	"context"
	"strings"

	"rei_do_lanche_backend/internal/models"
)

// DeleteOrder reverses every effect of processing the order: stock is
// restored from the consumption recomputed against the current recipes, the
// correlated revenue and sale movements are deleted, the customer counter is
// decremented, and the order itself is removed. A missing order is a no-op.
//
// Two known hazards are carried intentionally: consumption is re-derived
// from the recipes as they are now, so a recipe edited between sale and
// reversal restores a different quantity than was deducted; and revenue and
// movement rows are matched by the short id fragment embedded in free text,
// so colliding fragments can delete another order's rows.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderIdx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			orderIdx = i
			break
		}
	}
	if orderIdx < 0 {
		return
	}
	order := s.orders[orderIdx]
	fragment := models.IDFragment(order.ID)

	consumption := s.consumptionFor(order.Items)
	for ingredientID, qty := range consumption {
		for i := range s.ingredients {
			if s.ingredients[i].ID != ingredientID {
				continue
			}
			s.ingredients[i].StockQuantity += qty
			s.persistUpsert(ctx, models.CollectionIngredients, &s.ingredients[i], s.ingredients)
			break
		}
	}

	revenueTag := "#" + fragment
	kept := s.revenues[:0]
	for _, rev := range s.revenues {
		if strings.Contains(rev.Description, revenueTag) {
			s.pushDelete(ctx, models.CollectionRevenues, rev.ID)
			continue
		}
		kept = append(kept, rev)
	}
	s.revenues = kept
	s.mirror(models.CollectionRevenues, s.revenues)

	movementTag := "sale order #" + fragment
	keptMovements := s.stockMovements[:0]
	for _, mov := range s.stockMovements {
		if strings.Contains(mov.Reason, movementTag) {
			s.pushDelete(ctx, models.CollectionStockMovements, mov.ID)
			continue
		}
		keptMovements = append(keptMovements, mov)
	}
	s.stockMovements = keptMovements
	s.mirror(models.CollectionStockMovements, s.stockMovements)

	if order.CustomerPhone != "" {
		for i := range s.customers {
			if s.customers[i].Phone != order.CustomerPhone {
				continue
			}
			if s.customers[i].TotalOrders > 0 {
				s.customers[i].TotalOrders--
			}
			s.persistUpsert(ctx, models.CollectionCustomers, &s.customers[i], s.customers)
			break
		}
	}

	s.orders = append(s.orders[:orderIdx], s.orders[orderIdx+1:]...)
	s.persistDelete(ctx, models.CollectionOrders, order.ID, s.orders)
}
