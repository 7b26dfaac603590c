package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"coffee-pos/internal/domain"
)

func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	var req domain.SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON body"})
		return
	}

	res, err := h.settlements.Settle(r.Context(), req)
	if err != nil {
		h.writeSettleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// writeSettleError maps the settlement's closed error set onto HTTP. Every
// non-201 outcome means no charge was applied.
func (h *Handler) writeSettleError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidPaymentError
	var short *domain.InsufficientInventoryError

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_payment", Message: invalid.Reason})
	case errors.As(err, &short):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "insufficient_inventory",
			Message: "not enough stock to fulfill the order",
			Details: short.Ingredients,
		})
	case errors.Is(err, domain.ErrTableOccupied):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "table_occupied", Message: "the selected table is already occupied"})
	default:
		h.log.Error("settlement_failed", err, nil)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "settlement_failed",
			Message: "settlement failed, no charge applied",
		})
	}
}
