package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientInventory is the sentinel wrapped by
// InsufficientInventoryError so callers can match with errors.Is.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// ErrTableOccupied is returned when a dine-in settlement targets a table
// that another settlement already occupied.
var ErrTableOccupied = errors.New("table is already occupied")

// InsufficientInventoryError reports which ingredients were short. Raised
// before any write is applied, so the settlement rolls back with no side
// effects and the cashier can retry after restocking.
type InsufficientInventoryError struct {
	Ingredients []string
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: %s", strings.Join(e.Ingredients, ", "))
}

func (e *InsufficientInventoryError) Unwrap() error { return ErrInsufficientInventory }

// InvalidPaymentError rejects bad tender input before any persistence runs.
type InvalidPaymentError struct {
	Reason string
}

func (e *InvalidPaymentError) Error() string {
	return "invalid payment: " + e.Reason
}

// PersistenceError wraps a store-level failure. Transient marks lock
// timeouts, deadlocks and serialization conflicts, where a fresh attempt
// may succeed.
type PersistenceError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
