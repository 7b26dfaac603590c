package repository

import (
	"context"
	"fmt"

	"coffee-pos/internal/domain"
)

// RecordPayment inserts the payment row, flips the order to paid and
// appends the income ledger entry. All three writes ride the settlement
// transaction, which keeps the payment/status/ledger invariants in lockstep.
func (t *SettlementTx) RecordPayment(ctx context.Context, orderID, staffID int64, rec domain.PaymentRecord) error {
	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, total_price, vat, amount_received, change_returned, paid_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, orderID, rec.Total, rec.VAT, rec.AmountReceived, rec.Change); err != nil {
		return classify("insert payment", err)
	}

	if _, err := t.tx.ExecContext(ctx, `
		UPDATE orders SET status = 'paid' WHERE id = $1
	`, orderID); err != nil {
		return classify("mark order paid", err)
	}

	reason := fmt.Sprintf("Payment for order #%d", orderID)
	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO transactions (type, amount, reason, created_by, order_id, created_at)
		VALUES ('income', $1, $2, $3, $4, NOW())
	`, rec.Total, reason, staffID, orderID); err != nil {
		return classify("insert ledger transaction", err)
	}

	return nil
}
