package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.Finalized} {
			assert.NoError(t, s.Validate(), "status %s should be valid", s)
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Processing, "Processing"},
		{order.Finalized, "Finalized"},
		{order.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid names", func(t *testing.T) {
		for name, expected := range map[string]order.Status{
			"Pending":    order.Pending,
			"Processing": order.Processing,
			"Finalized":  order.Finalized,
		} {
			s, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, s)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Done"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err, "name %q should be rejected", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Begin(t *testing.T) {
	t.Run("pending begins processing", func(t *testing.T) {
		newStatus, err := order.Pending.Begin()

		require.NoError(t, err)
		assert.Equal(t, order.Processing, newStatus)
	})

	t.Run("other statuses cannot begin", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Processing, order.Finalized} {
			_, err := s.Begin()
			require.Error(t, err, "status %s should not begin processing", s)
		}
	})
}

func TestStatus_Finalize(t *testing.T) {
	t.Run("processing finalizes", func(t *testing.T) {
		newStatus, err := order.Processing.Finalize()

		require.NoError(t, err)
		assert.Equal(t, order.Finalized, newStatus)
	})

	t.Run("other statuses cannot finalize", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Pending, order.Finalized} {
			_, err := s.Finalize()
			require.Error(t, err, "status %s should not finalize", s)
		}
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Processing.IsFinal())
	assert.True(t, order.Finalized.IsFinal())
}

// TestStatus_Monotonicity verifies the full forward walk is the only path
// through the machine.
func TestStatus_Monotonicity(t *testing.T) {
	s := order.Pending

	s, err := s.Begin()
	require.NoError(t, err)

	s, err = s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, order.Finalized, s)

	// No transition leaves the final state.
	_, err = s.Begin()
	require.Error(t, err)
	_, err = s.Finalize()
	require.Error(t, err)
}
