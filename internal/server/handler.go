package server

import (
	"encoding/json"
	"net/http"

	"coffee-pos/internal/logger"
	"coffee-pos/internal/repository"
	"coffee-pos/internal/settlement"
)

type Handler struct {
	settlements settlement.ServiceInterface
	catalog     repository.CatalogRepositoryInterface
	log         *logger.Logger
}

func NewHandler(s settlement.ServiceInterface, c repository.CatalogRepositoryInterface, lg *logger.Logger) *Handler {
	return &Handler{settlements: s, catalog: c, log: lg}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /settlements", h.Settle)
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /tables", h.ListTables)
	mux.HandleFunc("GET /ledger/balance", h.LedgerBalance)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
