package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffee-pos/internal/domain"
	"coffee-pos/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettlements struct {
	res domain.SettlementResult
	err error
	got *domain.SettlementRequest
}

func (f *fakeSettlements) Settle(ctx context.Context, req domain.SettlementRequest) (domain.SettlementResult, error) {
	f.got = &req
	if f.err != nil {
		return domain.SettlementResult{}, f.err
	}
	return f.res, nil
}

type fakeCatalog struct {
	products []domain.Product
	tables   []domain.Table
	balance  decimal.Decimal
	err      error
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) ListTables(ctx context.Context) ([]domain.Table, error) {
	return f.tables, f.err
}

func (f *fakeCatalog) LedgerBalance(ctx context.Context) (decimal.Decimal, error) {
	return f.balance, f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestHandler(s *fakeSettlements, c *fakeCatalog) *Handler {
	return NewHandler(s, c, logger.New("test"))
}

const settleBody = `{
	"line_items": [{"product_id": 1, "variant": "hot", "quantity": 2, "unit_price": "4.00"}],
	"order_type": "dine-in",
	"table_id": 7,
	"staff_id": 3,
	"payment_method": "cash",
	"discount": "0",
	"amount_received": "10.00"
}`

func TestSettleCreated(t *testing.T) {
	svc := &fakeSettlements{res: domain.SettlementResult{
		OrderID:  42,
		Subtotal: dec("8.00"),
		VAT:      dec("0.80"),
		Total:    dec("8.80"),
		Change:   dec("1.20"),
	}}
	h := newTestHandler(svc, &fakeCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(settleBody))
	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res domain.SettlementResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(42), res.OrderID)
	assert.True(t, res.Total.Equal(dec("8.80")))
	assert.True(t, res.Change.Equal(dec("1.20")))

	require.NotNil(t, svc.got)
	assert.Equal(t, domain.OrderTypeDineIn, svc.got.OrderType)
	require.NotNil(t, svc.got.TableID)
	assert.Equal(t, int64(7), *svc.got.TableID)
}

func TestSettleBadJSON(t *testing.T) {
	h := newTestHandler(&fakeSettlements{}, &fakeCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader("{not json"))
	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettleErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			"invalid payment",
			&domain.InvalidPaymentError{Reason: "cash received 8.00 is less than total 8.80"},
			http.StatusBadRequest, "invalid_payment",
		},
		{
			"insufficient inventory",
			&domain.InsufficientInventoryError{Ingredients: []string{"Milk"}},
			http.StatusUnprocessableEntity, "insufficient_inventory",
		},
		{
			"table occupied",
			domain.ErrTableOccupied,
			http.StatusConflict, "table_occupied",
		},
		{
			"persistence failure",
			&domain.PersistenceError{Op: "insert order", Err: context.DeadlineExceeded},
			http.StatusInternalServerError, "settlement_failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(&fakeSettlements{err: tc.err}, &fakeCatalog{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(settleBody))
			h.Routes().ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantError, body.Error)
		})
	}
}

func TestSettleInsufficientListsIngredients(t *testing.T) {
	h := newTestHandler(&fakeSettlements{
		err: &domain.InsufficientInventoryError{Ingredients: []string{"Milk", "Espresso Beans"}},
	}, &fakeCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/settlements", strings.NewReader(settleBody))
	h.Routes().ServeHTTP(w, req)

	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Milk", "Espresso Beans"}, body.Details)
}

func TestListTables(t *testing.T) {
	h := newTestHandler(&fakeSettlements{}, &fakeCatalog{tables: []domain.Table{
		{ID: 1, Name: "T1", Floor: 1, Seats: 4, Status: domain.TableStatusAvailable},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var tables []domain.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, "T1", tables[0].Name)
}

func TestListProductsEmpty(t *testing.T) {
	h := newTestHandler(&fakeSettlements{}, &fakeCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestLedgerBalance(t *testing.T) {
	h := newTestHandler(&fakeSettlements{}, &fakeCatalog{balance: dec("123.45")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ledger/balance", nil)
	h.Routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]decimal.Decimal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["balance"].Equal(dec("123.45")))
}
