package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coffee-pos/internal/connections/rabbitmq"
	"coffee-pos/internal/domain"
	"coffee-pos/internal/logger"
	"coffee-pos/internal/repository"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

type ServiceInterface interface {
	Settle(ctx context.Context, req domain.SettlementRequest) (domain.SettlementResult, error)
}

// EventPublisher is satisfied by *rabbitmq.Client.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte, headers amqp.Table, contentType string, persistent bool) error
}

type Service struct {
	store   repository.SettlementStoreInterface
	pub     EventPublisher
	log     *logger.Logger
	vatRate decimal.Decimal
}

func NewService(store repository.SettlementStoreInterface, pub EventPublisher, lg *logger.Logger, vatRate decimal.Decimal) ServiceInterface {
	return &Service{store: store, pub: pub, log: lg, vatRate: vatRate}
}

// Settle turns a cart into a paid order, all or nothing. Validation runs
// before any transaction is opened; afterwards every write rides a single
// database transaction, so a failure at any step aborts with zero observable
// side effects. Only the committed transaction is reported as success.
func (s *Service) Settle(ctx context.Context, req domain.SettlementRequest) (domain.SettlementResult, error) {
	if err := validateRequest(req); err != nil {
		return domain.SettlementResult{}, err
	}

	totals := ComputeTotals(req.LineItems, s.vatRate, req.Discount)
	change, err := validateTender(req, totals.Total)
	if err != nil {
		return domain.SettlementResult{}, err
	}

	recipes, err := s.store.IngredientsForProducts(ctx, productIDs(req.LineItems))
	if err != nil {
		return domain.SettlementResult{}, err
	}
	demand := AggregateDemand(req.LineItems, recipes)

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return domain.SettlementResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ReserveAndConsume(ctx, demand); err != nil {
		return domain.SettlementResult{}, err
	}

	orderID, err := tx.CreateOrder(ctx, req.TableID, req.StaffID, req.OrderType)
	if err != nil {
		return domain.SettlementResult{}, err
	}

	if err := tx.AddItems(ctx, orderID, req.LineItems); err != nil {
		return domain.SettlementResult{}, err
	}

	if req.OrderType == domain.OrderTypeDineIn {
		if err := tx.OccupyTable(ctx, *req.TableID); err != nil {
			return domain.SettlementResult{}, err
		}
	}

	received := req.AmountReceived
	if req.PaymentMethod != domain.PaymentMethodCash {
		received = totals.Total
	}
	rec := domain.PaymentRecord{
		Method:         req.PaymentMethod,
		Subtotal:       totals.Subtotal,
		VAT:            totals.VAT,
		Total:          totals.Total,
		AmountReceived: received,
		Change:         change,
	}
	if err := tx.RecordPayment(ctx, orderID, req.StaffID, rec); err != nil {
		return domain.SettlementResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.SettlementResult{}, err
	}

	s.log.Info("order_settled", map[string]any{
		"order_id": orderID,
		"type":     string(req.OrderType),
		"method":   string(req.PaymentMethod),
		"total":    totals.Total.String(),
	})

	s.publishSettled(ctx, req, orderID, totals, change)

	return domain.SettlementResult{
		OrderID:  orderID,
		Subtotal: totals.Subtotal,
		VAT:      totals.VAT,
		Total:    totals.Total,
		Change:   change,
	}, nil
}

// publishSettled tells downstream consumers about a committed settlement.
// The order is already durable, so a publish failure is logged, never
// surfaced as a settlement error.
func (s *Service) publishSettled(ctx context.Context, req domain.SettlementRequest, orderID int64, totals Totals, change decimal.Decimal) {
	if s.pub == nil {
		return
	}

	items := make([]domain.SettledItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, domain.SettledItem{
			ProductID: li.ProductID,
			Variant:   li.Variant,
			Quantity:  li.Quantity,
			Price:     li.UnitPrice,
			Note:      li.Note,
		})
	}
	ev := domain.OrderSettledEvent{
		OrderID:       orderID,
		OrderType:     req.OrderType,
		TableID:       req.TableID,
		StaffID:       req.StaffID,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      totals.Subtotal,
		VAT:           totals.VAT,
		Total:         totals.Total,
		Change:        change,
		Items:         items,
		SettledAt:     time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("settled_event_marshal", err, map[string]any{"order_id": orderID})
		return
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	routingKey := fmt.Sprintf("settled.%s", req.OrderType)
	headers := amqp.Table{"x-source": "pos-server"}
	if err := s.pub.Publish(pctx, rabbitmq.SettlementsExchange, routingKey, body, headers, "application/json", true); err != nil {
		s.log.Error("settled_event_publish", err, map[string]any{"order_id": orderID})
	}
}

func validateRequest(req domain.SettlementRequest) error {
	if len(req.LineItems) == 0 {
		return &domain.InvalidPaymentError{Reason: "at least one line item is required"}
	}
	for _, item := range req.LineItems {
		if item.Quantity <= 0 {
			return &domain.InvalidPaymentError{Reason: fmt.Sprintf("invalid quantity for product %d", item.ProductID)}
		}
		if item.UnitPrice.IsNegative() {
			return &domain.InvalidPaymentError{Reason: fmt.Sprintf("invalid price for product %d", item.ProductID)}
		}
	}
	if !req.OrderType.Valid() {
		return &domain.InvalidPaymentError{Reason: "invalid order type"}
	}
	if req.OrderType == domain.OrderTypeDineIn && req.TableID == nil {
		return &domain.InvalidPaymentError{Reason: "dine-in order requires a table"}
	}
	if req.OrderType == domain.OrderTypeTakeaway && req.TableID != nil {
		return &domain.InvalidPaymentError{Reason: "takeaway order cannot have a table"}
	}
	if !req.PaymentMethod.Valid() {
		return &domain.InvalidPaymentError{Reason: "invalid payment method"}
	}
	if req.StaffID <= 0 {
		return &domain.InvalidPaymentError{Reason: "staff id is required"}
	}
	if req.Discount.IsNegative() {
		return &domain.InvalidPaymentError{Reason: "discount cannot be negative"}
	}
	return nil
}

// validateTender enforces the cash rule before anything is persisted: the
// tendered amount must cover the total.
func validateTender(req domain.SettlementRequest, total decimal.Decimal) (decimal.Decimal, error) {
	if req.PaymentMethod == domain.PaymentMethodCash && req.AmountReceived.LessThan(total) {
		return decimal.Decimal{}, &domain.InvalidPaymentError{
			Reason: fmt.Sprintf("cash received %s is less than total %s", req.AmountReceived, total),
		}
	}
	return ChangeDue(req.PaymentMethod, req.AmountReceived, total), nil
}
