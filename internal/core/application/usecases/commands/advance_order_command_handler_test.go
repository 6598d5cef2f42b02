package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should walk the pipeline one stage at a time", func(t *testing.T) {
		// Arrange
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		h := commands.NewAdvanceOrderCommandHandler(f.factory)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)

		expected := []order.Status{order.Packed, order.Shipped, order.Delivered}
		for _, want := range expected {
			// Act
			result, handleErr := h.Handle(t.Context(), cmd)

			// Assert
			require.NoError(t, handleErr)
			assert.True(t, result.Advanced)
			assert.Equal(t, want, result.Order.Status())
			assert.Equal(t, want == order.Delivered, result.Terminal)
			assert.Equal(t, want, f.get(t, o.ID()).Status())
		}
	})

	t.Run("should report terminal without mutating a delivered order", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		require.NoError(t, o.ChangeStatus(order.Delivered))
		f.seed(t, o)

		h := commands.NewAdvanceOrderCommandHandler(f.factory)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)

		result, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, result.Advanced)
		assert.True(t, result.Terminal)
		assert.Len(t, f.get(t, o.ID()).StatusHistory(), 2)
	})

	t.Run("should fail for a missing order", func(t *testing.T) {
		f := newStoreFixture()
		h := commands.NewAdvanceOrderCommandHandler(f.factory)
		cmd, err := commands.NewAdvanceOrderCommand(newTestOrderID())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should append one history entry per stage reached", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		h := commands.NewAdvanceOrderCommandHandler(f.factory)
		cmd, err := commands.NewAdvanceOrderCommand(o.ID())
		require.NoError(t, err)

		for range 3 {
			_, err = h.Handle(t.Context(), cmd)
			require.NoError(t, err)
		}

		assert.Len(t, f.get(t, o.ID()).StatusHistory(), 4)
	})
}
