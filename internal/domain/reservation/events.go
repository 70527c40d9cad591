package reservation

import (
	"time"

	"namunjari/internal/domain/property"
)

// Created is recorded when a guest submits a validated booking.
type Created struct {
	Reservation *Reservation
	At          time.Time
}

func (e Created) EventName() string     { return "reservation.created" }
func (e Created) AggregateID() string   { return string(e.Reservation.ID) }
func (e Created) OccurredAt() time.Time { return e.At }

// Confirmed is recorded when an operator verifies the deposit.
type Confirmed struct {
	ReservationID ID
	Property      property.ID
	At            time.Time
}

func (e Confirmed) EventName() string     { return "reservation.confirmed" }
func (e Confirmed) AggregateID() string   { return string(e.ReservationID) }
func (e Confirmed) OccurredAt() time.Time { return e.At }

// Deleted is recorded when an operator removes a booking.
type Deleted struct {
	ReservationID ID
	Property      property.ID
	At            time.Time
}

func (e Deleted) EventName() string     { return "reservation.deleted" }
func (e Deleted) AggregateID() string   { return string(e.ReservationID) }
func (e Deleted) OccurredAt() time.Time { return e.At }
