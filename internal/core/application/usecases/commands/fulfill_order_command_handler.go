package commands

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// ErrOrderAlreadyProcessed signals that the delivery is a duplicate of one
// that already completed: either its correlation id is in the processed set
// or the order is already Finalized in the store. Callers acknowledge such
// deliveries without doing any work.
var ErrOrderAlreadyProcessed = errors.New("order already processed")

// FulfillOrderCommandHandler processes OrderCreated deliveries from the
// queue. It drives the order through Processing to Finalized with the
// fulfillment work in between, persisting each transition in its own
// transaction so a crash mid-fulfillment leaves a resumable state.
//
// The handler is idempotent under at-least-once delivery:
//   - a correlation id already in the processed set is a duplicate
//   - an order already Finalized is a duplicate
//   - an order found in Processing is a crashed attempt; fulfillment is
//     resumed rather than restarted from Pending
//
// Error classification drives the caller's queue disposition: a
// DeserializationError or ObjectNotFoundError means the delivery can never
// succeed and belongs in the dead-letter sink; any other error is transient
// and the delivery should be left for redelivery.
type FulfillOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	processedSet ports.ProcessedSet
	fulfillment  ports.FulfillmentService
}

// NewFulfillOrderCommandHandler creates a handler for queue deliveries.
func NewFulfillOrderCommandHandler(
	uowFactory OrderUoWFactory,
	processedSet ports.ProcessedSet,
	fulfillment ports.FulfillmentService,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory:   uowFactory,
		processedSet: processedSet,
		fulfillment:  fulfillment,
	}
}

// Handle processes one queue delivery end to end:
// decode, duplicate check, transition to Processing, fulfill, finalize,
// record in the processed set.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := decodeEvent(cmd.Body())
	if err != nil {
		return err
	}

	correlationID := event.CorrelationID()

	seen, err := h.processedSet.Contains(ctx, correlationID)
	if err != nil {
		return err
	}
	if seen {
		return ErrOrderAlreadyProcessed
	}

	aggregate, err := h.beginProcessing(ctx, event)
	if err != nil {
		return err
	}

	if err = h.fulfillment.Fulfill(ctx, aggregate); err != nil {
		return errs.NewProcessingError(correlationID, err)
	}

	if err = h.finalize(ctx, aggregate); err != nil {
		return err
	}

	if err = h.processedSet.Add(ctx, correlationID); err != nil {
		return err
	}

	return nil
}

// beginProcessing loads the order and moves it to Processing in one
// transaction. An order already in Processing is a crashed earlier attempt
// and is returned as-is so fulfillment resumes. An order already Finalized
// is reported as a duplicate.
func (h *FulfillOrderCommandHandler) beginProcessing(ctx context.Context, event order.LifecycleEvent) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, event.OrderID())
	if err != nil {
		return nil, err
	}

	switch aggregate.Status() {
	case order.Finalized:
		// Record the fast-path key so further redeliveries of this order
		// skip the store lookup. The set is non-authoritative, so a failed
		// write must not change the duplicate outcome.
		_ = h.processedSet.Add(ctx, event.CorrelationID())
		return nil, ErrOrderAlreadyProcessed
	case order.Processing:
		// Crashed mid-fulfillment on a previous delivery; resume.
		return aggregate, nil
	}

	if err = aggregate.BeginProcessing(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// finalize moves the fulfilled order to Finalized in its own transaction.
func (h *FulfillOrderCommandHandler) finalize(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.Finalize(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
