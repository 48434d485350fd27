package commands

import (
	"encoding/json"
	"fmt"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

// eventEnvelope is the wire representation of a lifecycle event.
// It is the JSON body carried by queue messages and stored in outbox records.
type eventEnvelope struct {
	OrderID   string  `json:"orderId"`
	Customer  string  `json:"customer"`
	Product   string  `json:"product"`
	Amount    float64 `json:"amount"`
	EventType string  `json:"eventType"`
}

// encodeEvent serializes a lifecycle event into its wire form.
func encodeEvent(event order.LifecycleEvent) ([]byte, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	return json.Marshal(eventEnvelope{
		OrderID:   event.OrderID().String(),
		Customer:  event.Customer(),
		Product:   event.Product(),
		Amount:    event.Amount(),
		EventType: event.EventType(),
	})
}

// decodeEvent parses a wire body back into a lifecycle event. Any failure is
// a DeserializationError: malformed JSON, an order id that is not a UUID, or
// an event type this consumer does not know. Such messages can never become
// processable and belong in the dead-letter sink.
func decodeEvent(body []byte) (order.LifecycleEvent, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return order.LifecycleEvent{}, errs.NewDeserializationError(err)
	}

	orderID, err := kernel.UUIDFromString(envelope.OrderID)
	if err != nil {
		return order.LifecycleEvent{}, errs.NewDeserializationError(err)
	}

	if envelope.EventType != order.EventTypeOrderCreated {
		return order.LifecycleEvent{}, errs.NewDeserializationError(
			fmt.Errorf("unsupported event type %q", envelope.EventType))
	}

	return order.RestoreLifecycleEvent(
		orderID,
		envelope.Customer,
		envelope.Product,
		envelope.Amount,
		envelope.EventType,
	)
}
