package jobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

// StoreWatchJob polls the persisted order collection and fires a callback
// when it changed between polls. Collaborators holding a cached view of the
// collection register the callback to re-fetch.
//
// The watch observes the shared store, so it fires for any writer. The
// first poll only establishes the baseline.
type StoreWatchJob struct {
	reader    queries.OrderReader
	notifier  ports.Notifier
	onChange  func()
	scheduler Scheduler
	logger    *slog.Logger

	// mu guards the poll state; the scheduler may start a poll while a
	// slow previous one is still loading.
	mu          sync.Mutex
	cancel      CancelFunc
	primed      bool
	fingerprint string
}

// NewStoreWatchJob creates a watch job over the given reader. onChange may
// be nil when only the notification feed is wanted.
func NewStoreWatchJob(
	reader queries.OrderReader,
	notifier ports.Notifier,
	onChange func(),
	scheduler Scheduler,
	logger *slog.Logger,
) *StoreWatchJob {
	return &StoreWatchJob{
		reader:    reader,
		notifier:  notifier,
		onChange:  onChange,
		scheduler: scheduler,
		logger:    logger.With("component", "store_watch_job"),
	}
}

// Start begins polling the store every second.
func (j *StoreWatchJob) Start() error {
	cancel, err := j.scheduler.Every(time.Second, j.poll)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.logger.InfoContext(context.Background(), "Store watch job started (polling every second)")
	return nil
}

// Stop stops the watch job.
func (j *StoreWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.logger.InfoContext(context.Background(), "Store watch job stopped")
}

func (j *StoreWatchJob) poll() {
	ctx := context.Background()

	orders, err := j.reader.LoadAll(ctx)
	if err != nil {
		// Transient store failures retry on the next tick
		j.logger.ErrorContext(ctx, "Store watch poll failed", "error", err)
		return
	}

	current := fingerprintOrders(orders)

	j.mu.Lock()
	if !j.primed {
		j.primed = true
		j.fingerprint = current
		j.mu.Unlock()
		return
	}
	if current == j.fingerprint {
		j.mu.Unlock()
		return
	}
	j.fingerprint = current
	j.mu.Unlock()

	j.notifier.Notify(ctx, ports.SeverityInfo, "Order data was updated")
	if j.onChange != nil {
		j.onChange()
	}
}

// fingerprintOrders digests every persisted field of the collection, so any
// change a writer can make is observable. Two collections with the same
// fingerprint are treated as equal.
func fingerprintOrders(orders []*order.Order) string {
	h := sha256.New()
	for _, o := range orders {
		fmt.Fprintf(h, "%s|%q|%q|%q|%d|%d|%q|",
			o.ID().String(),
			o.ProductName(),
			o.CustomerName(),
			o.DeliveryAddress(),
			o.Status(),
			o.CreatedAt().UnixNano(),
			o.Notes(),
		)
		for _, entry := range o.StatusHistory() {
			fmt.Fprintf(h, "%d@%d,", entry.Status(), entry.OccurredAt().UnixNano())
		}
		h.Write([]byte{';'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
