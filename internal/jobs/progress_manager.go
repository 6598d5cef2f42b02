package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/ports"
)

// DefaultProgressInterval is the tick interval used when a start request
// does not specify one.
const DefaultProgressInterval = 3 * time.Second

var (
	// ErrAutoProgressAlreadyRunning is returned when a progress loop for
	// the order is already active. Starting is not idempotent by design:
	// the caller learns the loop existed instead of silently doubling it.
	ErrAutoProgressAlreadyRunning = errors.New("auto progress is already running for this order")

	// ErrOrderAlreadyDelivered is returned when a loop is requested for an
	// order that has nothing left to progress through.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// ProgressManager runs cancellable per-order auto-progress loops. Each tick
// advances its order exactly one fulfillment stage; the loop terminates when
// the order reaches Delivered, when an advance fails (for example the order
// was deleted mid-loop), or when it is cancelled.
type ProgressManager struct {
	advanceHandler commands.AdvanceOrderCommandHandler
	getHandler     queries.GetOrderByIDQueryHandler
	scheduler      Scheduler
	notifier       ports.Notifier
	logger         *slog.Logger

	defaultInterval time.Duration

	mu      sync.Mutex
	running map[string]CancelFunc
}

// NewProgressManager creates a progress manager.
func NewProgressManager(
	advanceHandler commands.AdvanceOrderCommandHandler,
	getHandler queries.GetOrderByIDQueryHandler,
	scheduler Scheduler,
	notifier ports.Notifier,
	logger *slog.Logger,
	defaultInterval time.Duration,
) *ProgressManager {
	if defaultInterval <= 0 {
		defaultInterval = DefaultProgressInterval
	}

	return &ProgressManager{
		advanceHandler:  advanceHandler,
		getHandler:      getHandler,
		scheduler:       scheduler,
		notifier:        notifier,
		logger:          logger.With("component", "progress_manager"),
		defaultInterval: defaultInterval,
		running:         make(map[string]CancelFunc),
	}
}

// Start begins an auto-progress loop for the order.
//
// Returns ErrAutoProgressAlreadyRunning when a loop for the order is active,
// ErrOrderAlreadyDelivered when there is nothing to progress through, and a
// not-found error when the order does not exist. An interval of zero or less
// selects the default.
func (m *ProgressManager) Start(ctx context.Context, orderID kernel.OrderID, interval time.Duration) error {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return err
	}

	current, err := m.getHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if current.Status().IsTerminal() {
		return ErrOrderAlreadyDelivered
	}

	if interval <= 0 {
		interval = m.defaultInterval
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := orderID.String()
	if _, exists := m.running[key]; exists {
		return ErrAutoProgressAlreadyRunning
	}

	cancel, err := m.scheduler.Every(interval, func() {
		m.tick(orderID)
	})
	if err != nil {
		return err
	}

	m.running[key] = cancel
	m.logger.InfoContext(ctx, "Auto progress started", "orderId", key, "interval", interval)
	return nil
}

// Cancel stops the loop for the order. Cancelling an order without an
// active loop does nothing. After Cancel returns no further automatic
// transition starts; a tick already in flight completes.
func (m *ProgressManager) Cancel(orderID kernel.OrderID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked(orderID.String())
}

// IsRunning reports whether an auto-progress loop is active for the order.
func (m *ProgressManager) IsRunning(orderID kernel.OrderID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.running[orderID.String()]
	return exists
}

// StopAll cancels every active loop.
func (m *ProgressManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.running {
		m.cancelLocked(key)
	}
}

func (m *ProgressManager) cancelLocked(key string) {
	cancel, exists := m.running[key]
	if !exists {
		return
	}

	cancel()
	delete(m.running, key)
	m.logger.Info("Auto progress stopped", "orderId", key)
}

// tick performs one advance step for the order.
func (m *ProgressManager) tick(orderID kernel.OrderID) {
	ctx := context.Background()
	key := orderID.String()

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		m.failLoop(ctx, key, err)
		return
	}

	result, err := m.advanceHandler.Handle(ctx, cmd)
	if err != nil {
		m.failLoop(ctx, key, err)
		return
	}

	if result.Advanced {
		m.notifier.Notify(ctx, ports.SeverityInfo,
			fmt.Sprintf("Order %s moved to %s", key, result.Order.Status()))
	}

	if result.Terminal {
		m.notifier.Notify(ctx, ports.SeveritySuccess,
			fmt.Sprintf("Order %s has been delivered", key))
		m.Cancel(orderID)
	}
}

// failLoop terminates the loop after a failed advance. The failure is
// surfaced once as a notification, never retried.
func (m *ProgressManager) failLoop(ctx context.Context, key string, err error) {
	m.logger.ErrorContext(ctx, "Auto progress step failed", "orderId", key, "error", err)
	m.notifier.Notify(ctx, ports.SeverityError,
		fmt.Sprintf("Auto progress stopped for order %s", key))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked(key)
}
