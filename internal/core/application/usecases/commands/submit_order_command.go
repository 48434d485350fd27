package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer is required")
	ErrProductIsRequired  = errors.New("product is required")
	ErrAmountIsInvalid    = errors.New("amount must be greater than 0")
)

// SubmitOrderCommand represents a request to submit a new order.
// Encapsulates the customer, product and amount of the order being placed.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, "Ana Silva", "Widget", 19.90)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s submitted and awaiting fulfillment", created.ID())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer string
	product  string
	amount   float64

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that the order ID is valid, customer and product are not empty,
// and the amount is positive. Full business validation happens in the domain
// when the order aggregate is created.
func NewSubmitOrderCommand(orderID kernel.UUID, customer, product string, amount float64) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setProduct(product),
		orderCommand.setAmount(amount),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the name of the customer placing the order.
func (c SubmitOrderCommand) Customer() string {
	return c.customer
}

// Product returns the ordered product name.
func (c SubmitOrderCommand) Product() string {
	return c.product
}

// Amount returns the monetary value of the order.
func (c SubmitOrderCommand) Amount() float64 {
	return c.amount
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}

	c.customer = customer
	return nil
}

func (c *SubmitOrderCommand) setProduct(product string) error {
	if product == "" {
		return ErrProductIsRequired
	}

	c.product = product
	return nil
}

func (c *SubmitOrderCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
