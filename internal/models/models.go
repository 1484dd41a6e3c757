package models

// Collection names as they appear in the REST surface and the local cache.
const (
	CollectionIngredients    = "ingredients"
	CollectionProducts       = "products"
	CollectionRevenues       = "revenues"
	CollectionExpenses       = "expenses"
	CollectionStockMovements = "stock_movements"
	CollectionEmployees      = "employees"
	CollectionCustomers      = "customers"
	CollectionOrders         = "orders"
)

// CollectionNames lists every synchronized collection, in migration order.
var CollectionNames = []string{
	CollectionIngredients,
	CollectionProducts,
	CollectionRevenues,
	CollectionExpenses,
	CollectionStockMovements,
	CollectionEmployees,
	CollectionCustomers,
	CollectionOrders,
}

// Unit types for ingredients.
const (
	UnitKilogram = "kg"
	UnitEach     = "un"
	UnitLiter    = "l"
)

// Payment methods.
const (
	PaymentCash   = "Dinheiro"
	PaymentPix    = "PIX"
	PaymentDebit  = "Debito"
	PaymentCredit = "Credito"
)

// Revenue categories.
const (
	RevenueCounter  = "Balcao"
	RevenueDelivery = "Delivery"
	RevenueApp      = "App"
	RevenueOther    = "Outros"
)

// Delivery types for orders.
const (
	DeliveryPickup   = "retirada"
	DeliveryCourier  = "entrega"
	DeliveryTable    = "mesa"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// Stock movement types.
const (
	MovementEntry      = "entry"
	MovementLoss       = "loss"
	MovementAdjustment = "adjustment"
	MovementSale       = "sale"
)

// Expense statuses.
const (
	ExpenseStatusPaid    = "paid"
	ExpenseStatusPending = "pending"
)

// Ingredient is one raw stock item. StockQuantity is mutated directly by
// stock entries, losses and order-driven sale deductions; the movement log
// is an audit trail, not the source of truth for the quantity.
type Ingredient struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"` // Insumos, Bebidas, Embalagens, Outros
	Unit          string  `json:"unit"`
	CostPerUnit   float64 `json:"costPerUnit"`
	ExitPrice     float64 `json:"exitPrice"`
	StockQuantity float64 `json:"stockQuantity"`
	MinStock      float64 `json:"minStock"`
}

// RecipeLine maps an ingredient to the quantity one product unit consumes.
type RecipeLine struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// ProductComplement is a bounded-choice option group. Complements affect
// neither price nor stock.
type ProductComplement struct {
	Title        string   `json:"title"`
	MaxSelection int      `json:"maxSelection"`
	Options      []string `json:"options"`
	Required     bool     `json:"required"`
}

// ProductAddOn is a priced extra. Add-ons affect price but never stock.
type ProductAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Product carries the recipe that is the sole source of truth for ingredient
// consumption. The recipe is read live at processing and reversal time, not
// snapshotted onto the order.
type Product struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"` // Lanches, Bebidas, Combos, Porções, Sobremesas, Outros
	Ingredients []RecipeLine        `json:"ingredients"`
	Complements []ProductComplement `json:"complements,omitempty"`
	AddOns      []ProductAddOn      `json:"addOns,omitempty"`
}

// Customer is the phone-keyed directory aggregate.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	Reference     string `json:"reference,omitempty"`
	LastOrderDate string `json:"lastOrderDate,omitempty"`
	TotalOrders   int    `json:"totalOrders"`
}

// Employee is peripheral to order consistency; expenses may reference one.
type Employee struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	BaseSalary    float64 `json:"baseSalary"`
	AdmissionDate string  `json:"admissionDate"`
	PixKey        string  `json:"pixKey,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Active        bool    `json:"active"`
}

// Revenue is one dated cash-in row. Rows created by the order processor
// embed a `#<4-char order id prefix>` tag in the description so the reversal
// can locate them.
type Revenue struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Expense is one dated cash-out row.
type Expense struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	PaidDate      string  `json:"paidDate,omitempty"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	IsRecurring   bool    `json:"isRecurring"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	EmployeeID    string  `json:"employeeId,omitempty"`
}

// StockMovement is one append-only audit row. Sale rows embed the
// `sale order #<fragment>` tag in the reason.
type StockMovement struct {
	ID           string  `json:"id"`
	IngredientID string  `json:"ingredientId"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	Date         string  `json:"date"`
	Reason       string  `json:"reason,omitempty"`
	Cost         float64 `json:"cost,omitempty"`
}

// OrderItem is one cart line. UnitPrice already includes selected add-ons.
type OrderItem struct {
	ProductID           string         `json:"productId"`
	ProductName         string         `json:"productName"`
	Quantity            int            `json:"quantity"`
	UnitPrice           float64        `json:"unitPrice"`
	Total               float64        `json:"total"`
	SelectedComplements []string       `json:"selectedComplements"`
	SelectedAddOns      []ProductAddOn `json:"selectedAddOns,omitempty"`
	Observation         string         `json:"observation,omitempty"`
}

// Order is the historical record of one completed cart.
type Order struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	DeliveryType  string      `json:"deliveryType"`
	Address       string      `json:"address,omitempty"`
	Reference     string      `json:"reference,omitempty"`
	PaymentMethod string      `json:"paymentMethod"`
	ChangeFor     float64     `json:"changeFor,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
}

// IDFragment returns the short order-id prefix used to correlate revenue and
// stock-movement rows with an order. Matching on this fragment rather than a
// foreign key is a known collision risk carried over from the current design.
func IDFragment(orderID string) string {
	if len(orderID) <= 4 {
		return orderID
	}
	return orderID[:4]
}

// Snapshot is the full per-account payload exchanged with the bulk migration
// endpoint and mirrored collection-by-collection in the local cache.
type Snapshot struct {
	AccountID      string          `json:"accountId"`
	Ingredients    []Ingredient    `json:"ingredients"`
	Products       []Product       `json:"products"`
	Revenues       []Revenue       `json:"revenues"`
	Expenses       []Expense       `json:"expenses"`
	StockMovements []StockMovement `json:"stockMovements"`
	Employees      []Employee      `json:"employees"`
	Customers      []Customer      `json:"customers"`
	Orders         []Order         `json:"orders"`
}

// Account is a registered store account on the durable store.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AdminPinHash string `json:"-"`
	CreatedAt    string `json:"createdAt"`
}
