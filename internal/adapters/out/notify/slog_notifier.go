// Package notify contains outbound notification adapters.
package notify

import (
	"context"
	"log/slog"

	"ordertracking/internal/core/ports"
)

var _ ports.Notifier = &SlogNotifier{}

// SlogNotifier publishes notification events to the structured log.
// Severity maps onto log levels so operators can filter the feed the same
// way a UI would color it.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify logs the event. It never fails the calling operation.
func (n *SlogNotifier) Notify(ctx context.Context, severity ports.Severity, message string) {
	switch severity {
	case ports.SeverityError:
		n.logger.ErrorContext(ctx, message, "severity", severity)
	case ports.SeveritySuccess, ports.SeverityInfo:
		n.logger.InfoContext(ctx, message, "severity", severity)
	default:
		n.logger.InfoContext(ctx, message, "severity", severity)
	}
}
