package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/outbox"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Creates the order in Pending status and writes the OrderCreated outbox
// record in the same transaction, so the event is published if and only if
// the order exists.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewSubmitOrderCommand(orderID, "Ana Silva", "Widget", 19.90)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// created is pending and the relay will publish its event
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires a UoWFactory spanning the order and outbox tables.
func NewSubmitOrderCommandHandler(uowFactory UoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command and returns the created
// order. Creates the order aggregate, serializes its OrderCreated event, and
// persists both atomically. Rolls back on any error, in which case neither
// the order nor the event exists.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Product(), cmd.Amount())
	if err != nil {
		return nil, err
	}

	event, err := order.NewOrderCreatedEvent(aggregate)
	if err != nil {
		return nil, err
	}

	payload, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	record, err := outbox.NewRecord(kernel.NewUUID(), payload, event.CorrelationID(), event.EventType())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.OutboxRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
