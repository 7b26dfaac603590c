package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"coffee-pos/internal/domain"
)

// ReserveAndConsume locks every demanded inventory row, verifies stock is
// sufficient for all of them, and only then decrements. The check and the
// decrement happen under the same set of row locks, so two settlements that
// need the same ingredient are serialized here and stock can never go
// negative. Rows are locked in ascending id order so concurrent settlements
// cannot deadlock on each other.
func (t *SettlementTx) ReserveAndConsume(ctx context.Context, demand map[int64]float64) error {
	ids := sortedIngredientIDs(demand)

	var short []string
	for _, id := range ids {
		var name string
		var available float64
		err := t.tx.QueryRowContext(ctx, `
			SELECT name, quantity FROM inventory WHERE id = $1 FOR UPDATE
		`, id).Scan(&name, &available)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			short = append(short, fmt.Sprintf("ingredient #%d (unknown)", id))
			continue
		case err != nil:
			return classifyf(err, "lock inventory row %d", id)
		}
		if available < demand[id] {
			short = append(short, name)
		}
	}

	if len(short) > 0 {
		// No decrement has run yet; the caller rolls back and the locks go
		// with the transaction.
		return &domain.InsufficientInventoryError{Ingredients: short}
	}

	for _, id := range ids {
		if _, err := t.tx.ExecContext(ctx, `
			UPDATE inventory SET quantity = quantity - $1 WHERE id = $2
		`, demand[id], id); err != nil {
			return classifyf(err, "decrement inventory row %d", id)
		}
	}

	return nil
}

func sortedIngredientIDs(demand map[int64]float64) []int64 {
	ids := make([]int64, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
