package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should allow a forward skip", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		h := commands.NewUpdateOrderStatusCommandHandler(f.factory)
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Shipped)
		require.NoError(t, err)

		require.NoError(t, h.Handle(t.Context(), cmd))

		stored := f.get(t, o.ID())
		assert.Equal(t, order.Shipped, stored.Status())
		// Only the stage actually reached gets a history entry
		assert.Len(t, stored.StatusHistory(), 2)
	})

	t.Run("should reject a regression and leave the order untouched", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		require.NoError(t, o.ChangeStatus(order.Shipped))
		f.seed(t, o)

		h := commands.NewUpdateOrderStatusCommandHandler(f.factory)
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Packed)
		require.NoError(t, err)

		err = h.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Shipped, f.get(t, o.ID()).Status())
	})

	t.Run("should not duplicate history when the status is set again", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)
		h := commands.NewUpdateOrderStatusCommandHandler(f.factory)
		cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Packed)
		require.NoError(t, err)

		require.NoError(t, h.Handle(t.Context(), cmd))
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Len(t, f.get(t, o.ID()).StatusHistory(), 2)
	})

	t.Run("should fail for a missing order", func(t *testing.T) {
		f := newStoreFixture()
		h := commands.NewUpdateOrderStatusCommandHandler(f.factory)
		cmd, err := commands.NewUpdateOrderStatusCommand(newTestOrderID(), order.Packed)
		require.NoError(t, err)

		assert.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
	})
}
