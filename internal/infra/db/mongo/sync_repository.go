package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/daterange"
	"namunjari/internal/domain/shared/dateutil"
)

// insertBatchSize bounds a single InsertMany so one oversized feed
// cannot produce an oversized command.
const insertBatchSize = 500

type SyncRepository struct {
	col *mongo.Collection
}

func NewSyncRepository(c *Client) *SyncRepository {
	return &SyncRepository{col: c.DB.Collection("sync_blocks")}
}

// ReplaceAll swaps the property's synced snapshot: every existing row is
// dropped before the new set goes in, so blocks that left the feed leave
// the calendar too.
func (r *SyncRepository) ReplaceAll(ctx context.Context, prop property.ID, blocks []availability.Block) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"property": string(prop)}); err != nil {
		return err
	}
	for start := 0; start < len(blocks); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(blocks) {
			end = len(blocks)
		}
		docs := make([]interface{}, 0, end-start)
		for _, b := range blocks[start:end] {
			docs = append(docs, newBlockDocument(b))
		}
		if _, err := r.col.InsertMany(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}

func (r *SyncRepository) List(ctx context.Context, prop property.ID) ([]availability.Block, error) {
	cur, err := r.col.Find(ctx, bson.M{"property": string(prop)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []availability.Block
	for cur.Next(ctx) {
		var doc blockDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		b, err := doc.toBlock()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

type blockDocument struct {
	Property       string `bson:"property"`
	CheckIn        string `bson:"check_in"`
	CheckOut       string `bson:"check_out"`
	ExternalUID    string `bson:"external_uid"`
	Status         string `bson:"status,omitempty"`
	ReservationRef string `bson:"reservation_ref,omitempty"`
	PhoneLast4     string `bson:"phone_last4,omitempty"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func newBlockDocument(b availability.Block) blockDocument {
	return blockDocument{
		Property:       string(b.Property),
		CheckIn:        b.Range.CheckIn.String(),
		CheckOut:       b.Range.CheckOut.String(),
		ExternalUID:    b.ExternalUID,
		Status:         b.Status,
		ReservationRef: b.ReservationRef,
		PhoneLast4:     b.PhoneLast4,
		UpdatedAt:      b.UpdatedAt.UnixMilli(),
	}
}

func (d blockDocument) toBlock() (availability.Block, error) {
	in, err := dateutil.ParseDay(d.CheckIn)
	if err != nil {
		return availability.Block{}, err
	}
	out, err := dateutil.ParseDay(d.CheckOut)
	if err != nil {
		return availability.Block{}, err
	}
	return availability.Block{
		Property:       property.ID(d.Property),
		Range:          daterange.Range{CheckIn: in, CheckOut: out},
		Source:         availability.SourceExternal,
		ExternalUID:    d.ExternalUID,
		Status:         d.Status,
		ReservationRef: d.ReservationRef,
		PhoneLast4:     d.PhoneLast4,
		UpdatedAt:      time.UnixMilli(d.UpdatedAt).UTC(),
	}, nil
}
