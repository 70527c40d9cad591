package policies

import (
	"context"

	"namunjari/internal/domain/shared/events"
)

// EventPublisher pushes domain events to the broker. Best-effort from the
// caller's perspective; the primary write never waits on it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
