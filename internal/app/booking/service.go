package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	availabilityapp "namunjari/internal/app/availability"
	"namunjari/internal/app/policies"
	domainavailability "namunjari/internal/domain/availability"
	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/daterange"
)

// notifyTimeout bounds fire-and-forget side effects after the write.
const notifyTimeout = 10 * time.Second

// Request is a guest's booking submission. Exactly one stay shape is
// filled in, matching the property's mode: CheckIn/CheckOut for nightly,
// Date+Hours for hourly, CheckIn+Weeks for weekly.
type Request struct {
	Property property.ID

	CheckIn  dateutil.Day
	CheckOut dateutil.Day
	Date     dateutil.Day
	Hours    []int
	Weeks    int

	GuestName  string
	GuestPhone string
	Guests     int
	Infants    int
	Pets       int
	Barbecue   bool
	Purpose    string
	Refundable bool
}

// Service runs the booking use cases: quoting, creating, and the operator
// actions (confirm, delete, list).
type Service struct {
	Availability *availabilityapp.Service
	Reservations reservation.Repository
	Notifier     policies.Notifier
	Publisher    policies.EventPublisher
	SMS          policies.SMSSender
	Logger       *slog.Logger
	Now          func() time.Time
}

// Quote validates the requested stay against the live calendar and prices
// it, without persisting anything.
func (s *Service) Quote(ctx context.Context, req Request) (pricing.Quote, error) {
	prop, _, stay, err := s.validate(ctx, req)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.For(prop, stay, options(req))
}

// Create validates, prices and persists a reservation, then fires off the
// notification side effects. Only the persistence error propagates: a
// failed notification or event publish never rolls the booking back.
func (s *Service) Create(ctx context.Context, req Request) (*reservation.Reservation, pricing.Quote, error) {
	prop, _, stay, err := s.validate(ctx, req)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	quote, err := pricing.For(prop, stay, options(req))
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	res, err := reservation.New(reservation.CreateParams{
		ID:         reservation.ID(uuid.NewString()),
		Property:   prop,
		Range:      stay.Range,
		Hours:      stay.Hours,
		Weeks:      stay.Weeks,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		Party:      reservation.Party{Guests: req.Guests, Infants: req.Infants, Pets: req.Pets},
		Barbecue:   req.Barbecue,
		Purpose:    req.Purpose,
		Price:      quote.Total,
		Refundable: req.Refundable,
		Now:        s.now(),
	})
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	if err := s.Reservations.Create(ctx, res); err != nil {
		return nil, pricing.Quote{}, fmt.Errorf("persist reservation: %w", err)
	}

	s.afterCreate(prop, res, quote)
	return res, quote, nil
}

// afterCreate runs the best-effort side effects on a detached context so a
// cancelled request cannot abort them mid-flight.
func (s *Service) afterCreate(prop property.Property, res *reservation.Reservation, quote pricing.Quote) {
	events := res.PendingEvents()
	res.ClearEvents()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if s.Publisher != nil {
			for _, evt := range events {
				if err := s.Publisher.Publish(ctx, evt); err != nil {
					s.log().Warn("event publish failed", "event", evt.EventName(), "error", err)
				}
			}
		}
		if s.Notifier != nil {
			if err := s.Notifier.ReservationCreated(ctx, prop, res, quote); err != nil {
				s.log().Warn("reservation notification failed", "reservation", res.ID, "error", err)
			}
		}
		if s.SMS != nil {
			title := prop.Name + " 예약 안내"
			body := fmt.Sprintf("%s 예약이 접수되었습니다. 입금계좌: %s, 입금액: %s원",
				prop.Name, prop.BankAccount, res.Price.Format())
			_, err := s.SMS.Send(ctx, res.GuestPhone, title, body)
			if s.Notifier != nil {
				if nerr := s.Notifier.SMSOutcome(ctx, prop, res.GuestPhone, err); nerr != nil {
					s.log().Warn("sms outcome notification failed", "error", nerr)
				}
			}
		}
	}()
}

// validate resolves the property, loads the calendar and checks the
// requested stay against it.
func (s *Service) validate(ctx context.Context, req Request) (property.Property, *domainavailability.Calendar, pricing.Stay, error) {
	prop, err := property.Get(req.Property)
	if err != nil {
		return property.Property{}, nil, pricing.Stay{}, err
	}
	if !prop.Bookable {
		return property.Property{}, nil, pricing.Stay{}, reservation.ErrNotBookable
	}

	today := dateutil.Today(s.now())
	cal, err := s.Availability.Load(ctx, prop.ID, today)
	if err != nil {
		return property.Property{}, nil, pricing.Stay{}, err
	}
	engine := domainavailability.NewEngine(cal, today)

	var stay pricing.Stay
	switch prop.Mode {
	case property.ModeNightly:
		r, err := daterange.New(req.CheckIn, req.CheckOut)
		if err != nil {
			return property.Property{}, nil, pricing.Stay{}, err
		}
		if err := engine.ValidateRange(r); err != nil {
			return property.Property{}, nil, pricing.Stay{}, err
		}
		stay.Range = r
	case property.ModeHourly:
		h, err := engine.SelectHours(req.Date, req.Hours)
		if err != nil {
			return property.Property{}, nil, pricing.Stay{}, err
		}
		stay.Hours = &h
	case property.ModeWeekly:
		r, err := engine.SelectWeeks(req.CheckIn, req.Weeks, prop.Weekly.MinWeeks, prop.Weekly.MaxWeeks)
		if err != nil {
			return property.Property{}, nil, pricing.Stay{}, err
		}
		stay.Range = r
		stay.Weeks = req.Weeks
	default:
		return property.Property{}, nil, pricing.Stay{}, errors.New("booking: unsupported booking mode")
	}
	return prop, cal, stay, nil
}

func options(req Request) pricing.Options {
	return pricing.Options{
		Guests:     req.Guests,
		Pets:       req.Pets,
		Barbecue:   req.Barbecue,
		Refundable: req.Refundable,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
