package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// MinNameLength is the minimum length for the customer and product fields.
const MinNameLength = 3

// MinAmount is the smallest accepted order amount.
const MinAmount = 0.01

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from submission through fulfillment to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, immutable once assigned
//   - Customer and product must each have at least MinNameLength characters
//   - Amount must be at least MinAmount and never changes after creation
//   - Status only moves forward along Pending -> Processing -> Finalized
//   - CreatedAt is set once at construction; UpdatedAt is set on every
//     status transition
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the name of the customer placing the order
	customer string

	// product is the name of the ordered product
	product string

	// amount is the monetary value of the order (immutable)
	amount float64

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once when the order is submitted
	createdAt time.Time

	// updatedAt is set on every status transition; nil until the first one
	updatedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh order, ensuring all business invariants hold from the
// start. The order is created at Pending status with createdAt set to the
// current UTC time and no updatedAt.
//
// Returns a validation error if any parameter violates the invariants above.
func NewOrder(id kernel.UUID, customer, product string, amount float64) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setProduct(product),
		order.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts an existing status and timestamps, but still enforces the field
// invariants so corrupt rows cannot produce invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customer, product string,
	amount float64,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setProduct(product),
		order.setAmount(amount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the name of the customer who placed the order.
func (o *Order) Customer() string {
	return o.customer
}

// Product returns the ordered product name.
func (o *Order) Product() string {
	return o.product
}

// Amount returns the monetary value of the order.
func (o *Order) Amount() float64 {
	return o.amount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status transition.
// Returns nil if the order has never transitioned.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// BeginProcessing moves the order from Pending to Processing and stamps
// updatedAt.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - The transition stamps updatedAt with the current UTC time
//
// Returns an error if the status transition is not allowed.
func (o *Order) BeginProcessing() error {
	newStatus, err := o.status.Begin()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Finalize moves the order from Processing to Finalized and stamps updatedAt.
//
// This method enforces the following business rules:
//   - The order must be in Processing status
//   - Finalized is a final state with no further transitions
//
// Returns an error if the status transition is not allowed.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	if len(customer) < MinNameLength {
		return errs.NewValueIsInvalidErrorWithCause("customer",
			fmt.Errorf("must have at least %d characters", MinNameLength))
	}
	o.customer = customer
	return nil
}

// setProduct validates and sets the product name.
// This is a private method used only during construction.
func (o *Order) setProduct(product string) error {
	if strings.TrimSpace(product) == "" {
		return errs.NewValueIsRequiredError("product")
	}
	if len(product) < MinNameLength {
		return errs.NewValueIsInvalidErrorWithCause("product",
			fmt.Errorf("must have at least %d characters", MinNameLength))
	}
	o.product = product
	return nil
}

// setAmount validates and sets the order amount.
// Amount must be at least MinAmount.
// This is a private method used only during construction.
func (o *Order) setAmount(amount float64) error {
	if amount < MinAmount {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is less than the minimum amount %v", amount, MinAmount))
	}
	o.amount = amount
	return nil
}

// setStatus validates and sets a persisted status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
