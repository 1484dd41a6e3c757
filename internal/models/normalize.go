package models

// Normalization back-fills collection-specific defaults for records that were
// cached by older client builds before a field existed. The migration
// endpoint applies this to every imported row so the durable store never
// holds half-shaped records.

// NormalizeIngredient fills defaults on an ingredient row.
func NormalizeIngredient(ing *Ingredient) {
	if ing.Category == "" {
		ing.Category = RevenueOther
	}
	if ing.Unit == "" {
		ing.Unit = UnitEach
	}
}

// NormalizeProduct fills defaults on a product row.
func NormalizeProduct(p *Product) {
	if p.Category == "" {
		p.Category = RevenueOther
	}
	if p.Ingredients == nil {
		p.Ingredients = []RecipeLine{}
	}
	if p.Complements == nil {
		p.Complements = []ProductComplement{}
	}
	if p.AddOns == nil {
		p.AddOns = []ProductAddOn{}
	}
}

// NormalizeRevenue fills defaults on a revenue row.
func NormalizeRevenue(r *Revenue) {
	if r.Category == "" {
		r.Category = RevenueOther
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentCash
	}
}

// NormalizeExpense fills defaults on an expense row.
func NormalizeExpense(e *Expense) {
	if e.Category == "" {
		e.Category = RevenueOther
	}
	if e.Status == "" {
		e.Status = ExpenseStatusPaid
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentCash
	}
}

// NormalizeStockMovement fills defaults on a stock movement row.
func NormalizeStockMovement(m *StockMovement) {
	if m.Type == "" {
		m.Type = MovementAdjustment
	}
}

// NormalizeCustomer fills defaults on a customer row.
func NormalizeCustomer(c *Customer) {
	if c.TotalOrders < 0 {
		c.TotalOrders = 0
	}
}

// NormalizeOrder fills defaults on an order row.
func NormalizeOrder(o *Order) {
	if o.Status == "" {
		o.Status = OrderStatusCompleted
	}
	if o.DeliveryType == "" {
		o.DeliveryType = DeliveryPickup
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = PaymentCash
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
}

// NormalizeSnapshot applies per-collection defaults to every row of a
// migration payload.
func NormalizeSnapshot(snap *Snapshot) {
	for i := range snap.Ingredients {
		NormalizeIngredient(&snap.Ingredients[i])
	}
	for i := range snap.Products {
		NormalizeProduct(&snap.Products[i])
	}
	for i := range snap.Revenues {
		NormalizeRevenue(&snap.Revenues[i])
	}
	for i := range snap.Expenses {
		NormalizeExpense(&snap.Expenses[i])
	}
	for i := range snap.StockMovements {
		NormalizeStockMovement(&snap.StockMovements[i])
	}
	for i := range snap.Customers {
		NormalizeCustomer(&snap.Customers[i])
	}
	for i := range snap.Orders {
		NormalizeOrder(&snap.Orders[i])
	}
}
