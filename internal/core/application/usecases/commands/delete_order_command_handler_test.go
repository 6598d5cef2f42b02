package commands_test

import (
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should remove exactly the targeted order", func(t *testing.T) {
		f := newStoreFixture()
		first, err := order.NewOrder(newTestOrderID(), "Bookshelf", "Olga Reis", "10 Cherry Lane")
		require.NoError(t, err)
		second, err := order.NewOrder(newTestOrderID(), "Reading Lamp", "Pete Wolf", "20 Walnut Row")
		require.NoError(t, err)
		f.seed(t, first, second)

		h := commands.NewDeleteOrderCommandHandler(f.factory)
		cmd, err := commands.NewDeleteOrderCommand(first.ID())
		require.NoError(t, err)

		require.NoError(t, h.Handle(t.Context(), cmd))

		remaining := f.all(t)
		require.Len(t, remaining, 1)
		assert.True(t, remaining[0].ID().IsEqual(second.ID()))
	})

	t.Run("should fail for a missing order and keep the collection intact", func(t *testing.T) {
		f := newStoreFixture()
		o := newStoredOrder(t, f)

		h := commands.NewDeleteOrderCommandHandler(f.factory)
		cmd, err := commands.NewDeleteOrderCommand(newTestOrderID())
		require.NoError(t, err)

		err = h.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.Len(t, f.all(t), 1)
		assert.True(t, f.all(t)[0].ID().IsEqual(o.ID()))
	})
}
