package availability

import (
	"context"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/daterange"
)

// Source tells where a blocked range came from.
type Source string

const (
	SourceInternal Source = "INTERNAL"      // guest booking made on this site
	SourceExternal Source = "EXTERNAL_SYNC" // block imported from a calendar feed
)

// Block is one reserved interval of a property's calendar. Hourly
// properties carry Hours instead of Range.
type Block struct {
	Property property.ID
	Range    daterange.Range
	Hours    *daterange.HourRange

	Source      Source
	ExternalUID string // feed UID, external blocks only
	Status      string // human-readable label from the feed summary

	// Extracted from the feed event description when present.
	ReservationRef string // provider reservation id
	PhoneLast4     string

	Reference string // reservation id for internal blocks
	UpdatedAt time.Time
}

// SyncStore persists the externally-synced portion of a property's
// calendar. ReplaceAll swaps the whole snapshot: blocks missing from the
// new set are gone afterwards.
type SyncStore interface {
	ReplaceAll(ctx context.Context, prop property.ID, blocks []Block) error
	List(ctx context.Context, prop property.ID) ([]Block, error)
}
