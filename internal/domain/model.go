package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway
}

type OrderStatus string

const (
	OrderStatusUnpaid OrderStatus = "unpaid"
	OrderStatusPaid   OrderStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodEWallet PaymentMethod = "e-wallet"
	PaymentMethodQRCode  PaymentMethod = "qr-code"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodEWallet, PaymentMethodQRCode:
		return true
	}
	return false
}

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusCleaning  TableStatus = "cleaning"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Variants []string        `json:"variants"`
	ImageURL string          `json:"image_url"`
}

// Ingredient is one inventory row. Quantity is real-valued because stock is
// tracked in fractional units (ml, grams).
type Ingredient struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	MinStock    float64         `json:"min_stock"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// RecipeEntry maps a product to one ingredient it consumes per unit sold.
type RecipeEntry struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	IngredientID int64   `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type Table struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Floor  int         `json:"floor"`
	Seats  int         `json:"seats"`
	Status TableStatus `json:"status"`
}

type Order struct {
	ID        int64       `json:"id"`
	TableID   *int64      `json:"table_id,omitempty"`
	StaffID   int64       `json:"staff_id"`
	OrderType OrderType   `json:"order_type"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note"`
}

type Payment struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"order_id"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	VAT            decimal.Decimal `json:"vat"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	ChangeReturned decimal.Decimal `json:"change_returned"`
	PaidAt         time.Time       `json:"paid_at"`
}

type LedgerTransaction struct {
	ID        int64           `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedBy int64           `json:"created_by"`
	OrderID   *int64          `json:"order_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CartItem is one transient cart line. It has no identity of its own until it
// is persisted as an OrderItem during settlement.
type CartItem struct {
	ProductID int64           `json:"product_id"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Note      string          `json:"note"`
}

// PaymentRecord carries the computed settlement figures into the store.
type PaymentRecord struct {
	Method         PaymentMethod
	Subtotal       decimal.Decimal
	VAT            decimal.Decimal
	Total          decimal.Decimal
	AmountReceived decimal.Decimal
	Change         decimal.Decimal
}
