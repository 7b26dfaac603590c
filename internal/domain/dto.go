package domain

import "github.com/shopspring/decimal"

// SettlementRequest is the command object the UI submits once per checkout.
// StaffID comes from the caller's session handling, not from shared state.
type SettlementRequest struct {
	LineItems      []CartItem      `json:"line_items"`
	OrderType      OrderType       `json:"order_type"`
	TableID        *int64          `json:"table_id,omitempty"`
	StaffID        int64           `json:"staff_id"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	Discount       decimal.Decimal `json:"discount"`
	AmountReceived decimal.Decimal `json:"amount_received"`
}

type SettlementResult struct {
	OrderID  int64           `json:"order_id"`
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
	Change   decimal.Decimal `json:"change"`
}
