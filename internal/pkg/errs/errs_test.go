package errs_test

import (
	"errors"
	"testing"

	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("customer")

		assert.Equal(t, "customer", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: customer", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must have at least 3 characters")
		err := errs.NewValueIsInvalidErrorWithCause("customer", cause)

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: customer (cause: must have at least 3 characters)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", -5.0, 0.01, 1000000.0)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, -5.0, err.Value)
		assert.Equal(t, 0.01, err.Min)
		assert.Equal(t, 1000000.0, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is amount, min value is 0.01, max value is 1e+06", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("product")

		assert.Equal(t, "product", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: product", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("product", cause)

		assert.Equal(t, "product", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: product (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewPersistenceError("insert order", cause)

	assert.Equal(t, "insert order", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "persistence failure: insert order (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrPersistence, err.Unwrap())
}

func TestPublishError(t *testing.T) {
	cause := errors.New("broker unreachable")
	err := errs.NewPublishError("a1b2", cause)

	assert.Equal(t, "a1b2", err.CorrelationID)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "publish failure: correlation ID is: a1b2 (cause: broker unreachable)", err.Error())
	assert.Equal(t, errs.ErrPublish, err.Unwrap())
}

func TestDeserializationError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := errs.NewDeserializationError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "deserialization failure (cause: unexpected end of JSON input)", err.Error())
		assert.Equal(t, errs.ErrDeserialization, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewDeserializationError(nil)
		assert.Equal(t, "deserialization failure", err.Error())
	})
}

func TestProcessingError(t *testing.T) {
	cause := errors.New("store timeout")
	err := errs.NewProcessingError("a1b2", cause)

	assert.Equal(t, "a1b2", err.CorrelationID)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "processing failure: correlation ID is: a1b2 (cause: store timeout)", err.Error())
	assert.Equal(t, errs.ErrProcessing, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrPersistence)
		require.Error(t, errs.ErrPublish)
		require.Error(t, errs.ErrDeserialization)
		require.Error(t, errs.ErrProcessing)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "persistence failure", errs.ErrPersistence.Error())
		assert.Equal(t, "publish failure", errs.ErrPublish.Error())
		assert.Equal(t, "deserialization failure", errs.ErrDeserialization.Error())
		assert.Equal(t, "processing failure", errs.ErrProcessing.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("customer"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("amount", 0.0, 0.01, 1000000.0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("product"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewPersistenceError("update order", errors.New("down")), errs.ErrPersistence)
		require.ErrorIs(t, errs.NewPublishError("a1b2", errors.New("down")), errs.ErrPublish)
		require.ErrorIs(t, errs.NewDeserializationError(errors.New("bad json")), errs.ErrDeserialization)
		require.ErrorIs(t, errs.NewProcessingError("a1b2", errors.New("boom")), errs.ErrProcessing)
	})
}
