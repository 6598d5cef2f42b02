package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

// AdvanceOrderResult reports the outcome of a single-step advance.
type AdvanceOrderResult struct {
	// Order is the canonical post-operation state, re-read from the store
	// so that any out-of-band write that raced this one is reflected.
	Order *order.Order

	// Advanced is true when a transition was applied. It is false when the
	// order was already Delivered — an expected boundary condition, not a
	// failure, so no error accompanies it.
	Advanced bool

	// Terminal is true when the order now sits at the Delivered stage,
	// whether this call put it there or it was there already.
	Terminal bool
}

// AdvanceOrderCommandHandler moves one order a single stage forward.
//
// The handler mirrors the store's transition guard: the next stage is
// computed from the freshly loaded order, so a manual update and a pending
// auto-progress tick can never corrupt state — whichever write applies
// first wins and the loser becomes a no-op or a further legal step.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for single-step advancement.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order one stage within a transaction, then re-reads
// the collection outside of it to return the authoritative state.
//
// An order already at Delivered yields a Terminal result and no mutation.
// A missing order yields an ObjectNotFoundError.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (AdvanceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orders, err := repo.LoadAll(ctx)
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	_, target := findByID(orders, cmd.OrderID())
	if target == nil {
		return AdvanceOrderResult{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if target.Status().IsTerminal() {
		return AdvanceOrderResult{Order: target, Terminal: true}, nil
	}

	if err = target.Advance(); err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	return h.reload(ctx, uow, cmd)
}

// reload fetches the canonical post-commit state. The transaction is closed
// at this point, so the read observes whatever the store holds now,
// including changes from other writers.
func (h *AdvanceOrderCommandHandler) reload(
	ctx context.Context,
	uow OrderUoW,
	cmd AdvanceOrderCommand,
) (AdvanceOrderResult, error) {
	orders, err := uow.OrderRepository().LoadAll(ctx)
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	_, current := findByID(orders, cmd.OrderID())
	if current == nil {
		return AdvanceOrderResult{}, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	return AdvanceOrderResult{
		Order:    current,
		Advanced: true,
		Terminal: current.Status().IsTerminal(),
	}, nil
}
