package ports

import "context"

// Severity tags a notification event for user-facing treatment.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier publishes user-visible notification events. The core only emits
// events; rendering them is a collaborator's concern. Implementations must
// never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}
