package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
	"namunjari/internal/domain/shared/daterange"
	"namunjari/internal/domain/shared/dateutil"
	"namunjari/internal/domain/shared/money"
)

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(c *Client) *ReservationRepository {
	return &ReservationRepository{col: c.DB.Collection("reservations")}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.col.InsertOne(ctx, newReservationDocument(res))
	return err
}

func (r *ReservationRepository) Get(ctx context.Context, prop property.ID, id reservation.ID) (*reservation.Reservation, error) {
	var doc reservationDocument
	err := r.col.FindOne(ctx, bson.M{"_id": string(id), "property": string(prop)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, reservation.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toAggregate()
}

func (r *ReservationRepository) List(ctx context.Context, prop property.ID) ([]*reservation.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"property": string(prop)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*reservation.Reservation
	for cur.Next(ctx) {
		var doc reservationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		agg, err := doc.toAggregate()
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, cur.Err()
}

func (r *ReservationRepository) Delete(ctx context.Context, prop property.ID, id reservation.ID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id), "property": string(prop)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return reservation.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) MarkConfirmed(ctx context.Context, prop property.ID, id reservation.ID, at time.Time) error {
	filter := bson.M{"_id": string(id), "property": string(prop)}
	update := bson.M{"$set": bson.M{"confirmed_at": at.UTC().UnixMilli()}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return reservation.ErrNotFound
	}
	return nil
}

// Calendar days are stored as "YYYY-MM-DD" strings so documents stay
// readable and comparable without timezone baggage.
type reservationDocument struct {
	ID          string             `bson:"_id"`
	Property    string             `bson:"property"`
	CheckIn     string             `bson:"check_in,omitempty"`
	CheckOut    string             `bson:"check_out,omitempty"`
	Hours       *hourRangeDocument `bson:"hours,omitempty"`
	Weeks       int                `bson:"weeks,omitempty"`
	GuestName   string             `bson:"guest_name"`
	GuestPhone  string             `bson:"guest_phone"`
	Guests      int                `bson:"guests"`
	Infants     int                `bson:"infants"`
	Pets        int                `bson:"pets"`
	Bedding     int                `bson:"bedding"`
	Barbecue    bool               `bson:"barbecue"`
	Purpose     string             `bson:"purpose,omitempty"`
	Price       int64              `bson:"price"`
	Refundable  bool               `bson:"refundable"`
	CreatedAt   int64              `bson:"created_at"`
	ConfirmedAt *int64             `bson:"confirmed_at,omitempty"`
}

type hourRangeDocument struct {
	Day       string `bson:"day"`
	StartHour int    `bson:"start_hour"`
	EndHour   int    `bson:"end_hour"`
}

func newReservationDocument(res *reservation.Reservation) reservationDocument {
	doc := reservationDocument{
		ID:         string(res.ID),
		Property:   string(res.Property),
		Weeks:      res.Weeks,
		GuestName:  res.GuestName,
		GuestPhone: res.GuestPhone,
		Guests:     res.Party.Guests,
		Infants:    res.Party.Infants,
		Pets:       res.Party.Pets,
		Bedding:    res.Bedding,
		Barbecue:   res.Barbecue,
		Purpose:    res.Purpose,
		Price:      int64(res.Price),
		Refundable: res.Refundable,
		CreatedAt:  res.CreatedAt.UnixMilli(),
	}
	if res.Hours != nil {
		doc.Hours = &hourRangeDocument{
			Day:       res.Hours.Day.String(),
			StartHour: res.Hours.StartHour,
			EndHour:   res.Hours.EndHour,
		}
	} else {
		doc.CheckIn = res.Range.CheckIn.String()
		doc.CheckOut = res.Range.CheckOut.String()
	}
	if res.ConfirmedAt != nil {
		ms := res.ConfirmedAt.UnixMilli()
		doc.ConfirmedAt = &ms
	}
	return doc
}

func (d reservationDocument) toAggregate() (*reservation.Reservation, error) {
	agg := &reservation.Reservation{
		ID:         reservation.ID(d.ID),
		Property:   property.ID(d.Property),
		Weeks:      d.Weeks,
		GuestName:  d.GuestName,
		GuestPhone: d.GuestPhone,
		Party:      reservation.Party{Guests: d.Guests, Infants: d.Infants, Pets: d.Pets},
		Bedding:    d.Bedding,
		Barbecue:   d.Barbecue,
		Purpose:    d.Purpose,
		Price:      money.Won(d.Price),
		Refundable: d.Refundable,
		CreatedAt:  time.UnixMilli(d.CreatedAt).UTC(),
	}
	if d.Hours != nil {
		day, err := dateutil.ParseDay(d.Hours.Day)
		if err != nil {
			return nil, err
		}
		agg.Hours = &daterange.HourRange{Day: day, StartHour: d.Hours.StartHour, EndHour: d.Hours.EndHour}
	} else {
		rng, err := parseRange(d.CheckIn, d.CheckOut)
		if err != nil {
			return nil, err
		}
		agg.Range = rng
	}
	if d.ConfirmedAt != nil {
		at := time.UnixMilli(*d.ConfirmedAt).UTC()
		agg.ConfirmedAt = &at
	}
	return agg, nil
}

func parseRange(checkIn, checkOut string) (daterange.Range, error) {
	in, err := dateutil.ParseDay(checkIn)
	if err != nil {
		return daterange.Range{}, err
	}
	out, err := dateutil.ParseDay(checkOut)
	if err != nil {
		return daterange.Range{}, err
	}
	if out.Before(in) {
		return daterange.Range{}, errors.New("mongo: check_out before check_in")
	}
	return daterange.Range{CheckIn: in, CheckOut: out}, nil
}
