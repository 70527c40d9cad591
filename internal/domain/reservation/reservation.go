package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/daterange"
	"namunjari/internal/domain/shared/events"
	"namunjari/internal/domain/shared/money"
)

var (
	ErrGuestRequired   = errors.New("reservation: guest name and phone are required")
	ErrInvalidPhone    = errors.New("reservation: phone must be digits, at most 11")
	ErrInvalidParty    = errors.New("reservation: party size out of range")
	ErrMissingStay     = errors.New("reservation: stay dates are required")
	ErrNotBookable     = errors.New("reservation: property does not take online bookings")
	ErrNotFound        = errors.New("reservation: not found")
	ErrAlreadyConfirmed = errors.New("reservation: already confirmed")
)

type ID string

// Party counts the people and pets of a booking.
type Party struct {
	Guests  int
	Infants int
	Pets    int
}

// Reservation is one confirmed-or-pending booking. It occupies the calendar
// from the moment it is created, independent of deposit confirmation.
type Reservation struct {
	ID       ID
	Property property.ID

	// Range is set for nightly and weekly stays; Hours for hourly ones.
	Range daterange.Range
	Hours *daterange.HourRange
	Weeks int // weekly mode only

	GuestName  string
	GuestPhone string
	Party      Party
	Bedding    int    // extra bedding sets
	Barbecue   bool
	Purpose    string // hourly space usage purpose

	Price      money.Won
	Refundable bool

	CreatedAt   time.Time
	ConfirmedAt *time.Time // set when the deposit is verified

	events.EventRecorder
}

// Repository is the persistence port for reservations.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	Get(ctx context.Context, prop property.ID, id ID) (*Reservation, error)
	List(ctx context.Context, prop property.ID) ([]*Reservation, error)
	Delete(ctx context.Context, prop property.ID, id ID) error
	MarkConfirmed(ctx context.Context, prop property.ID, id ID, at time.Time) error
}

// CreateParams carries everything needed to build a reservation.
type CreateParams struct {
	ID       ID
	Property property.Property

	Range daterange.Range
	Hours *daterange.HourRange
	Weeks int

	GuestName  string
	GuestPhone string
	Party      Party
	Barbecue   bool
	Purpose    string

	Price      money.Won
	Refundable bool
	Now        time.Time
}

// New validates params and builds the aggregate. Availability is the
// engine's concern; this only checks the reservation's own invariants.
func New(params CreateParams) (*Reservation, error) {
	p := params.Property
	if !p.Bookable {
		return nil, ErrNotBookable
	}
	if strings.TrimSpace(params.GuestName) == "" || params.GuestPhone == "" {
		return nil, ErrGuestRequired
	}
	phone := NormalizePhone(params.GuestPhone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}
	if params.Party.Guests <= 0 || (p.MaxGuests > 0 && params.Party.Guests > p.MaxGuests) {
		return nil, ErrInvalidParty
	}
	if params.Party.Infants < 0 || (p.MaxInfants > 0 && params.Party.Infants > p.MaxInfants) {
		return nil, ErrInvalidParty
	}
	if params.Party.Pets < 0 || (p.MaxPets > 0 && params.Party.Pets > p.MaxPets) {
		return nil, ErrInvalidParty
	}

	switch p.Mode {
	case property.ModeHourly:
		if params.Hours == nil {
			return nil, ErrMissingStay
		}
		if err := params.Hours.Validate(); err != nil {
			return nil, err
		}
	default:
		if err := params.Range.Validate(); err != nil {
			return nil, err
		}
	}

	r := &Reservation{
		ID:         params.ID,
		Property:   p.ID,
		Range:      params.Range,
		Hours:      params.Hours,
		Weeks:      params.Weeks,
		GuestName:  strings.TrimSpace(params.GuestName),
		GuestPhone: phone,
		Party:      params.Party,
		Bedding:    autoBedding(params.Party.Guests),
		Barbecue:   params.Barbecue,
		Purpose:    strings.TrimSpace(params.Purpose),
		Price:      params.Price,
		Refundable: params.Refundable,
		CreatedAt:  params.Now.UTC(),
	}
	r.Record(Created{Reservation: r, At: r.CreatedAt})
	return r, nil
}

// Confirm records deposit verification by an operator.
func (r *Reservation) Confirm(now time.Time) error {
	if r.ConfirmedAt != nil {
		return ErrAlreadyConfirmed
	}
	at := now.UTC()
	r.ConfirmedAt = &at
	r.Record(Confirmed{ReservationID: r.ID, Property: r.Property, At: at})
	return nil
}

// MarkDeleted records the operator's removal before the row is dropped.
func (r *Reservation) MarkDeleted(now time.Time) {
	r.Record(Deleted{ReservationID: r.ID, Property: r.Property, At: now.UTC()})
}

// Parties of five or more get one extra bedding set prepared.
func autoBedding(guests int) int {
	if guests > 4 {
		return 1
	}
	return 0
}

// NormalizePhone strips everything but digits and caps the length at 11
// (Korean mobile numbers). Returns "" when nothing usable remains.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
		if b.Len() == 11 {
			break
		}
	}
	return b.String()
}
