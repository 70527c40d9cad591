package availability

import (
	"time"

	"namunjari/internal/domain/property"
)

// CalendarSynced is emitted after a feed snapshot was applied.
type CalendarSynced struct {
	Property property.ID
	Blocks   int
	At       time.Time
}

func (e CalendarSynced) EventName() string     { return "calendar.synced" }
func (e CalendarSynced) AggregateID() string   { return string(e.Property) }
func (e CalendarSynced) OccurredAt() time.Time { return e.At }

// CalendarSyncFailed is emitted when a feed could not be reconciled and
// the previous snapshot stays in effect.
type CalendarSyncFailed struct {
	Property property.ID
	Reason   string
	Streak   int // consecutive failures including this one
	At       time.Time
}

func (e CalendarSyncFailed) EventName() string     { return "calendar.sync_failed" }
func (e CalendarSyncFailed) AggregateID() string   { return string(e.Property) }
func (e CalendarSyncFailed) OccurredAt() time.Time { return e.At }
