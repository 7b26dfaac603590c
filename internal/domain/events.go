package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FOR RABBITMQ MESSAGE

// OrderSettledEvent is published after a settlement commits. Consumers see
// it only once the writes are durable.
type OrderSettledEvent struct {
	OrderID       int64           `json:"order_id"`
	OrderType     OrderType       `json:"order_type"`
	TableID       *int64          `json:"table_id,omitempty"`
	StaffID       int64           `json:"staff_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VAT           decimal.Decimal `json:"vat"`
	Total         decimal.Decimal `json:"total"`
	Change        decimal.Decimal `json:"change"`
	Items         []SettledItem   `json:"items"`
	SettledAt     time.Time       `json:"settled_at"`
}

type SettledItem struct {
	ProductID int64           `json:"product_id"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Note      string          `json:"note,omitempty"`
}
