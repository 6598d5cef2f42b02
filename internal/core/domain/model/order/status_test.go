package order_test

import (
	"fmt"
	"testing"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should match the wire contract values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Placed))
		assert.Equal(t, 1, int(order.Packed))
		assert.Equal(t, 2, int(order.Shipped))
		assert.Equal(t, 3, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Packed,
			order.Shipped,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Placed, "Placed"},
			{order.Packed, "Packed"},
			{order.Shipped, "Shipped"},
			{order.Delivered, "Delivered"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(-1).String())
		assert.Equal(t, "Unknown", order.Status(4).String())
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should step one stage forward", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Placed, order.Packed},
			{order.Packed, order.Shipped},
			{order.Shipped, order.Delivered},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, ok := tc.from.Next()

				assert.True(t, ok)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should report terminal at Delivered", func(t *testing.T) {
		next, ok := order.Delivered.Next()

		assert.False(t, ok)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should walk the full pipeline in three steps", func(t *testing.T) {
		status := order.Placed
		steps := 0
		for {
			next, ok := status.Next()
			if !ok {
				break
			}
			status = next
			steps++
		}

		assert.Equal(t, 3, steps)
		assert.Equal(t, order.Delivered, status)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Packed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("should allow forward transitions", func(t *testing.T) {
		require.NoError(t, order.Placed.ValidateTransition(order.Packed))
		require.NoError(t, order.Packed.ValidateTransition(order.Shipped))
		require.NoError(t, order.Shipped.ValidateTransition(order.Delivered))
	})

	t.Run("should allow forward skips", func(t *testing.T) {
		require.NoError(t, order.Placed.ValidateTransition(order.Delivered))
		require.NoError(t, order.Placed.ValidateTransition(order.Shipped))
	})

	t.Run("should allow same status", func(t *testing.T) {
		require.NoError(t, order.Packed.ValidateTransition(order.Packed))
	})

	t.Run("should reject regression", func(t *testing.T) {
		err := order.Shipped.ValidateTransition(order.Packed)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "cannot move back from Shipped to Packed")
	})

	t.Run("should reject out-of-range targets", func(t *testing.T) {
		err := order.Shipped.ValidateTransition(order.Status(4))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
