package policies

import (
	"context"

	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
)

// Notifier relays human-readable messages to the operator's chat channels.
// Every call is best-effort: a failed notification must never fail the
// operation that triggered it.
type Notifier interface {
	ReservationCreated(ctx context.Context, p property.Property, r *reservation.Reservation, q pricing.Quote) error
	ReservationConfirmed(ctx context.Context, p property.Property, r *reservation.Reservation) error
	SyncAlert(ctx context.Context, p property.Property, reason string) error
	SMSOutcome(ctx context.Context, p property.Property, phone string, err error) error
}

// SMSResult is the carrier's answer to one send attempt.
type SMSResult struct {
	Success    bool
	ResultCode string
}

// SMSSender delivers a text message to a guest. Failures are reported
// through the Notifier, never retried automatically.
type SMSSender interface {
	Send(ctx context.Context, phone, title, body string) (SMSResult, error)
}
