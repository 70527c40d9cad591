package notify

import (
	"context"

	"namunjari/internal/domain/pricing"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
)

// Relay formats domain happenings into operator messages and pushes them
// through Telegram. It implements policies.Notifier.
type Relay struct {
	Telegram *Telegram
}

func NewRelay(t *Telegram) *Relay {
	return &Relay{Telegram: t}
}

func (r *Relay) ReservationCreated(ctx context.Context, p property.Property, res *reservation.Reservation, q pricing.Quote) error {
	return r.Telegram.SendMessage(ctx, p.ChannelKey, reservationMessage(p, res, q))
}

func (r *Relay) ReservationConfirmed(ctx context.Context, p property.Property, res *reservation.Reservation) error {
	return r.Telegram.SendMessage(ctx, p.ChannelKey, confirmedMessage(p, res))
}

func (r *Relay) SyncAlert(ctx context.Context, p property.Property, reason string) error {
	return r.Telegram.SendMessage(ctx, p.ChannelKey, syncAlertMessage(p, reason))
}

func (r *Relay) SMSOutcome(ctx context.Context, p property.Property, phone string, err error) error {
	return r.Telegram.SendMessage(ctx, p.ChannelKey, smsOutcomeMessage(p, phone, err))
}
