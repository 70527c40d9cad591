package availability

import (
	"context"
	"log/slog"

	domainavailability "namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/dateutil"
)

// Service assembles the merged calendar for one property: internal
// reservations plus externally-synced blocks. A failed source degrades the
// result instead of failing it, so the calendar can still render with a
// warning.
type Service struct {
	Reservations reservation.Repository
	SyncBlocks   domainavailability.SyncStore
	Logger       *slog.Logger
}

// Load returns the calendar of everything occupying the property on or
// after today.
func (s *Service) Load(ctx context.Context, prop property.ID, today dateutil.Day) (*domainavailability.Calendar, error) {
	cal := &domainavailability.Calendar{Property: prop}

	internal, err := s.Reservations.List(ctx, prop)
	if err != nil {
		s.log().Warn("internal reservations unavailable", "property", prop, "error", err)
		cal.Degraded = true
	} else {
		for _, r := range internal {
			block := domainavailability.Block{
				Property:  prop,
				Source:    domainavailability.SourceInternal,
				Reference: string(r.ID),
				UpdatedAt: r.CreatedAt,
			}
			if r.Hours != nil {
				if r.Hours.Day.Before(today) {
					continue
				}
				hours := *r.Hours
				block.Hours = &hours
			} else {
				if !r.Range.CheckOut.After(today) {
					continue
				}
				block.Range = r.Range
			}
			cal.Blocks = append(cal.Blocks, block)
		}
	}

	external, err := s.SyncBlocks.List(ctx, prop)
	if err != nil {
		s.log().Warn("sync blocks unavailable", "property", prop, "error", err)
		cal.Degraded = true
	} else {
		for _, b := range external {
			if b.Hours == nil && !b.Range.CheckOut.After(today) {
				continue
			}
			cal.Blocks = append(cal.Blocks, b)
		}
	}

	return cal, nil
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
