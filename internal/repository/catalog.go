package repository

import (
	"context"
	"strings"

	"coffee-pos/internal/domain"

	"github.com/shopspring/decimal"
)

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, variants, image FROM products ORDER BY name
	`)
	if err != nil {
		return nil, classify("list products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var variants string
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &variants, &p.ImageURL); err != nil {
			return nil, classify("scan product", err)
		}
		p.Variants = splitVariants(variants)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read products", err)
	}
	return products, nil
}

// splitVariants parses the comma-separated variants column ("hot,iced,frappe").
func splitVariants(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	variants := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}

// LedgerBalance is income minus expense over the whole ledger.
func (s *Store) LedgerBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		FROM transactions
	`).Scan(&balance)
	if err != nil {
		return decimal.Decimal{}, classify("compute ledger balance", err)
	}
	return balance, nil
}
