package server

import (
	"net/http"

	"coffee-pos/internal/domain"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.log.Error("list_products", err, nil)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "failed to load products"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.catalog.ListTables(r.Context())
	if err != nil {
		h.log.Error("list_tables", err, nil)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "failed to load tables"})
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) LedgerBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.catalog.LedgerBalance(r.Context())
	if err != nil {
		h.log.Error("ledger_balance", err, nil)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "failed to compute balance"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"balance": balance})
}
