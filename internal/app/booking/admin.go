package booking

import (
	"context"
	"fmt"

	domainavailability "namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/dateutil"
)

// Overview is what the admin screen shows for one property: upcoming
// reservations merged with the externally-synced blocks.
type Overview struct {
	Property     property.ID
	Reservations []*reservation.Reservation
	SyncBlocks   []domainavailability.Block
	Degraded     bool
}

// AdminOverview lists upcoming occupancy for the operator.
func (s *Service) AdminOverview(ctx context.Context, prop property.ID) (Overview, error) {
	if _, err := property.Get(prop); err != nil {
		return Overview{}, err
	}
	today := dateutil.Today(s.now())

	all, err := s.Reservations.List(ctx, prop)
	if err != nil {
		return Overview{}, fmt.Errorf("list reservations: %w", err)
	}
	upcoming := all[:0]
	for _, r := range all {
		if r.Hours != nil {
			if !r.Hours.Day.Before(today) {
				upcoming = append(upcoming, r)
			}
			continue
		}
		if r.Range.CheckOut.After(today) {
			upcoming = append(upcoming, r)
		}
	}

	overview := Overview{Property: prop, Reservations: upcoming}
	blocks, err := s.Availability.SyncBlocks.List(ctx, prop)
	if err != nil {
		s.log().Warn("sync blocks unavailable for admin view", "property", prop, "error", err)
		overview.Degraded = true
	} else {
		overview.SyncBlocks = blocks
	}
	return overview, nil
}

// Confirm records that the operator verified the deposit and lets the
// guest know by text. As with Create, only persistence errors propagate.
func (s *Service) Confirm(ctx context.Context, prop property.ID, id reservation.ID) error {
	p, err := property.Get(prop)
	if err != nil {
		return err
	}
	res, err := s.Reservations.Get(ctx, prop, id)
	if err != nil {
		return err
	}
	if err := res.Confirm(s.now()); err != nil {
		return err
	}
	if err := s.Reservations.MarkConfirmed(ctx, prop, id, *res.ConfirmedAt); err != nil {
		return fmt.Errorf("persist confirmation: %w", err)
	}
	s.afterConfirm(p, res)
	return nil
}

// afterConfirm runs the confirmation side effects the way afterCreate
// does: detached context, best-effort, never rolled back.
func (s *Service) afterConfirm(prop property.Property, res *reservation.Reservation) {
	evts := res.PendingEvents()
	res.ClearEvents()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if s.Publisher != nil {
			for _, evt := range evts {
				if err := s.Publisher.Publish(ctx, evt); err != nil {
					s.log().Warn("event publish failed", "event", evt.EventName(), "error", err)
				}
			}
		}
		if s.SMS != nil {
			title := prop.Name + " 예약 확정 안내"
			body := fmt.Sprintf("%s님, %s 예약이 확정되었습니다. 이용일에 뵙겠습니다.",
				res.GuestName, prop.Name)
			_, err := s.SMS.Send(ctx, res.GuestPhone, title, body)
			if s.Notifier != nil {
				if nerr := s.Notifier.SMSOutcome(ctx, prop, res.GuestPhone, err); nerr != nil {
					s.log().Warn("sms outcome notification failed", "error", nerr)
				}
			}
		}
		if s.Notifier != nil {
			if err := s.Notifier.ReservationConfirmed(ctx, prop, res); err != nil {
				s.log().Warn("confirmation notification failed", "reservation", res.ID, "error", err)
			}
		}
	}()
}

// Delete removes a reservation, freeing its dates.
func (s *Service) Delete(ctx context.Context, prop property.ID, id reservation.ID) error {
	if _, err := property.Get(prop); err != nil {
		return err
	}
	res, err := s.Reservations.Get(ctx, prop, id)
	if err != nil {
		return err
	}
	if err := s.Reservations.Delete(ctx, prop, id); err != nil {
		return err
	}

	res.MarkDeleted(s.now())
	evts := res.PendingEvents()
	res.ClearEvents()
	if s.Publisher == nil {
		return nil
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		for _, evt := range evts {
			if err := s.Publisher.Publish(ctx, evt); err != nil {
				s.log().Warn("event publish failed", "event", evt.EventName(), "error", err)
			}
		}
	}()
	return nil
}
