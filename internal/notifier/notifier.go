// Package notifier consumes settled-order events and logs receipt
// summaries. It is the delivery end of the settlement event stream: by the
// time an event arrives here, the order is durable.
package notifier

import (
	"context"
	"encoding/json"

	"coffee-pos/internal/connections/rabbitmq"
	"coffee-pos/internal/domain"
	"coffee-pos/internal/logger"
)

func Run(ctx context.Context, client *rabbitmq.Client, lg *logger.Logger) error {
	deliveries, err := client.Consume(rabbitmq.SettlementsQueue, "receipt-notifier", 1)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var ev domain.OrderSettledEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("settled_event_decode", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			fields := map[string]any{
				"order_id": ev.OrderID,
				"type":     string(ev.OrderType),
				"method":   string(ev.PaymentMethod),
				"total":    ev.Total.String(),
				"change":   ev.Change.String(),
				"items":    len(ev.Items),
			}
			if ev.TableID != nil {
				fields["table_id"] = *ev.TableID
			}
			lg.Info("receipt", fields)
			_ = d.Ack(false)
		}
	}
}
