package repository

import (
	"context"

	"coffee-pos/internal/domain"
)

func (t *SettlementTx) CreateOrder(ctx context.Context, tableID *int64, staffID int64, orderType domain.OrderType) (int64, error) {
	var orderID int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO orders (table_id, staff_id, order_type, status, created_at)
		VALUES ($1, $2, $3, 'unpaid', NOW())
		RETURNING id
	`, tableID, staffID, orderType).Scan(&orderID)
	if err != nil {
		return 0, classify("insert order", err)
	}
	return orderID, nil
}

func (t *SettlementTx) AddItems(ctx context.Context, orderID int64, items []domain.CartItem) error {
	for _, item := range items {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, variant, quantity, price, note)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, orderID, item.ProductID, item.Variant, item.Quantity, item.UnitPrice, item.Note); err != nil {
			return classifyf(err, "insert order item (product %d)", item.ProductID)
		}
	}
	return nil
}
