// Package errs provides standardized error types for the order tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors raised while constructing commands and domain objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Pipeline errors raised while moving orders through the lifecycle:
//   - PersistenceError: the order store is unavailable
//   - PublishError: the broker refused an event already committed to the store
//   - DeserializationError: a message body cannot be decoded (terminal,
//     dead-lettered)
//   - ProcessingError: an unexpected fault mid-transition (delivery stays
//     unacknowledged and is redelivered)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Consumers dispatch on the sentinels: the queue consumer turns
// ErrObjectNotFound and ErrDeserialization into dead-letter dispositions and
// leaves ErrProcessing deliveries unacknowledged; the HTTP layer maps
// ErrValueIsInvalid/ErrValueIsRequired to 400 and ErrObjectNotFound to 404.
package errs
