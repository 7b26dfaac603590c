package repository

import (
	"context"
	"database/sql"
	"errors"

	"coffee-pos/internal/domain"
)

// OccupyTable locks the table row the same way ingredient rows are locked,
// so two dine-in settlements cannot both claim an available table.
func (t *SettlementTx) OccupyTable(ctx context.Context, tableID int64) error {
	var status domain.TableStatus
	err := t.tx.QueryRowContext(ctx, `
		SELECT status FROM tables WHERE id = $1 FOR UPDATE
	`, tableID).Scan(&status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return classifyf(err, "find table %d", tableID)
	case err != nil:
		return classifyf(err, "lock table %d", tableID)
	}

	if status == domain.TableStatusOccupied {
		return domain.ErrTableOccupied
	}

	if _, err := t.tx.ExecContext(ctx, `
		UPDATE tables SET status = 'occupied' WHERE id = $1
	`, tableID); err != nil {
		return classifyf(err, "occupy table %d", tableID)
	}
	return nil
}

func (s *Store) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, floor, seats, status FROM tables ORDER BY floor, name
	`)
	if err != nil {
		return nil, classify("list tables", err)
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var tbl domain.Table
		if err := rows.Scan(&tbl.ID, &tbl.Name, &tbl.Floor, &tbl.Seats, &tbl.Status); err != nil {
			return nil, classify("scan table", err)
		}
		tables = append(tables, tbl)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read tables", err)
	}
	return tables, nil
}
