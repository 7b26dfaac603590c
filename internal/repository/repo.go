package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffee-pos/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type SettlementStoreInterface interface {
	IngredientsForProducts(ctx context.Context, productIDs []int64) (map[int64][]domain.RecipeEntry, error)
	Begin(ctx context.Context) (SettlementTxInterface, error)
}

// SettlementTxInterface is one settlement's unit of work. Every method runs
// inside the same database transaction; nothing becomes visible to other
// settlements until Commit.
type SettlementTxInterface interface {
	ReserveAndConsume(ctx context.Context, demand map[int64]float64) error
	CreateOrder(ctx context.Context, tableID *int64, staffID int64, orderType domain.OrderType) (int64, error)
	AddItems(ctx context.Context, orderID int64, items []domain.CartItem) error
	OccupyTable(ctx context.Context, tableID int64) error
	RecordPayment(ctx context.Context, orderID, staffID int64, rec domain.PaymentRecord) error
	Commit() error
	Rollback() error
}

type CatalogRepositoryInterface interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
	LedgerBalance(ctx context.Context) (decimal.Decimal, error)
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (SettlementTxInterface, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify("begin settlement transaction", err)
	}
	return &SettlementTx{tx: tx}, nil
}

type SettlementTx struct {
	tx *sql.Tx
}

func (t *SettlementTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return classify("commit settlement", err)
	}
	return nil
}

func (t *SettlementTx) Rollback() error { return t.tx.Rollback() }

// classify wraps a store error, marking lock-wait timeouts, deadlocks and
// serialization conflicts as transient so the caller can tell the user a
// fresh attempt may succeed.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	transient := false
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "55P03", "40P01", "40001":
			transient = true
		}
	}
	return &domain.PersistenceError{Op: op, Transient: transient, Err: err}
}

func classifyf(err error, format string, args ...any) error {
	return classify(fmt.Sprintf(format, args...), err)
}
