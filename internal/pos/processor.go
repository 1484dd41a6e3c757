package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/pkg/utils"
)

var (
	ErrEmptyOrder          = errors.New("order has no items")
	ErrMissingCustomerName = errors.New("customer name is required")
)

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// revenueCategory maps the fulfillment type onto the revenue ledger
// category.
func revenueCategory(deliveryType string) string {
	switch deliveryType {
	case models.DeliveryCourier:
		return models.RevenueDelivery
	case models.DeliveryTable:
		return models.RevenueCounter
	default:
		return models.RevenueOther
	}
}

// consumptionFor accumulates per-ingredient consumption for the cart against
// the current product recipes. Add-ons and complements never consume stock.
// Items whose product no longer exists contribute nothing. Caller holds s.mu.
func (s *Store) consumptionFor(items []models.OrderItem) map[string]float64 {
	consumption := map[string]float64{}
	for _, item := range items {
		for i := range s.products {
			if s.products[i].ID != item.ProductID {
				continue
			}
			for _, line := range s.products[i].Ingredients {
				consumption[line.IngredientID] += line.Quantity * float64(item.Quantity)
			}
			break
		}
	}
	return consumption
}

// ProcessOrder commits a completed cart: it records the order, upserts the
// customer, appends one revenue row, and deducts ingredient stock with one
// sale movement per ingredient touched. There is no cross-collection
// transaction; each persistence call is independent, and a failure partway
// through leaves a partially applied order behind.
func (s *Store) ProcessOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if utils.IsEmpty(order.CustomerName) {
		return nil, ErrMissingCustomerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = utils.GenerateID()
	}
	if order.Date == "" {
		order.Date = nowISO()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}
	models.NormalizeOrder(&order)

	fragment := models.IDFragment(order.ID)

	s.orders = append(s.orders, order)
	s.persistUpsert(ctx, models.CollectionOrders, &order, s.orders)

	s.upsertCustomerForOrder(ctx, &order)

	revenue := models.Revenue{
		ID:            utils.GenerateID(),
		Date:          order.Date,
		Amount:        order.TotalAmount,
		Description:   fmt.Sprintf("Pedido #%s - %s", fragment, order.CustomerName),
		Category:      revenueCategory(order.DeliveryType),
		PaymentMethod: order.PaymentMethod,
	}
	s.revenues = append(s.revenues, revenue)
	s.persistUpsert(ctx, models.CollectionRevenues, &revenue, s.revenues)

	consumption := s.consumptionFor(order.Items)
	for ingredientID, qty := range consumption {
		for i := range s.ingredients {
			if s.ingredients[i].ID != ingredientID {
				continue
			}
			// The sale path writes the raw difference. Unlike losses and
			// entries it does not clamp at zero, so overselling drives the
			// quantity negative.
			s.ingredients[i].StockQuantity -= qty
			s.persistUpsert(ctx, models.CollectionIngredients, &s.ingredients[i], s.ingredients)
			break
		}

		movement := models.StockMovement{
			ID:           utils.GenerateID(),
			IngredientID: ingredientID,
			Type:         models.MovementSale,
			Quantity:     qty,
			Date:         order.Date,
			Reason:       "sale order #" + fragment,
		}
		s.stockMovements = append(s.stockMovements, movement)
		s.persistUpsert(ctx, models.CollectionStockMovements, &movement, s.stockMovements)
	}

	return &order, nil
}

// upsertCustomerForOrder merges the order's contact data into the directory.
// The phone is the natural key; orders without one never touch the
// directory. Caller holds s.mu.
func (s *Store) upsertCustomerForOrder(ctx context.Context, order *models.Order) {
	if strings.TrimSpace(order.CustomerPhone) == "" {
		return
	}

	for i := range s.customers {
		if s.customers[i].Phone != order.CustomerPhone {
			continue
		}
		s.customers[i].Name = order.CustomerName
		if order.Address != "" {
			s.customers[i].Address = order.Address
		}
		if order.Reference != "" {
			s.customers[i].Reference = order.Reference
		}
		s.customers[i].TotalOrders++
		s.customers[i].LastOrderDate = order.Date
		s.persistUpsert(ctx, models.CollectionCustomers, &s.customers[i], s.customers)
		return
	}

	customer := models.Customer{
		ID:            utils.GenerateID(),
		Name:          order.CustomerName,
		Phone:         order.CustomerPhone,
		Address:       order.Address,
		Reference:     order.Reference,
		LastOrderDate: order.Date,
		TotalOrders:   1,
	}
	s.customers = append(s.customers, customer)
	s.persistUpsert(ctx, models.CollectionCustomers, &customer, s.customers)
}
