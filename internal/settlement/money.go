package settlement

import (
	"coffee-pos/internal/domain"

	"github.com/shopspring/decimal"
)

type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives the settlement figures:
//
//	subtotal = sum(unit price * quantity)
//	vat      = subtotal * rate, rounded to cents
//	total    = subtotal + vat - discount
func ComputeTotals(items []domain.CartItem, vatRate, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)
	vat := subtotal.Mul(vatRate).Round(2)
	total := subtotal.Add(vat).Sub(discount).Round(2)
	return Totals{Subtotal: subtotal, VAT: vat, Total: total}
}

// ChangeDue is tendered minus total for cash; non-cash methods tender
// exactly the total, so change is always zero.
func ChangeDue(method domain.PaymentMethod, received, total decimal.Decimal) decimal.Decimal {
	if method != domain.PaymentMethodCash {
		return decimal.Zero
	}
	return received.Sub(total).Round(2)
}
