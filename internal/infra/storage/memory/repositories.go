package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/reservation"
)

// ReservationRepository keeps reservations in memory. It backs local
// development and tests where no Mongo instance is around.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[property.ID]map[reservation.ID]*reservation.Reservation
}

// NewReservationRepository builds an empty repository.
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		items: make(map[property.ID]map[reservation.ID]*reservation.Reservation),
	}
}

// Create stores a new reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID, ok := r.items[res.Property]
	if !ok {
		byID = make(map[reservation.ID]*reservation.Reservation)
		r.items[res.Property] = byID
	}
	byID[res.ID] = res
	return nil
}

// Get looks up one reservation or returns reservation.ErrNotFound.
func (r *ReservationRepository) Get(ctx context.Context, prop property.ID, id reservation.ID) (*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[prop][id]
	if !ok {
		return nil, reservation.ErrNotFound
	}
	return res, nil
}

// List returns a property's reservations, newest first.
func (r *ReservationRepository) List(ctx context.Context, prop property.ID) ([]*reservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*reservation.Reservation, 0, len(r.items[prop]))
	for _, res := range r.items[prop] {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Delete removes a reservation or returns reservation.ErrNotFound.
func (r *ReservationRepository) Delete(ctx context.Context, prop property.ID, id reservation.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := r.items[prop]
	if _, ok := byID[id]; !ok {
		return reservation.ErrNotFound
	}
	delete(byID, id)
	return nil
}

// MarkConfirmed stamps the deposit verification time.
func (r *ReservationRepository) MarkConfirmed(ctx context.Context, prop property.ID, id reservation.ID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.items[prop][id]
	if !ok {
		return reservation.ErrNotFound
	}
	stamped := at.UTC()
	res.ConfirmedAt = &stamped
	return nil
}

// SyncStore keeps externally-synced calendar blocks in memory.
type SyncStore struct {
	mu     sync.RWMutex
	blocks map[property.ID][]availability.Block
}

// NewSyncStore builds an empty store.
func NewSyncStore() *SyncStore {
	return &SyncStore{blocks: make(map[property.ID][]availability.Block)}
}

// ReplaceAll swaps the property's snapshot wholesale.
func (s *SyncStore) ReplaceAll(ctx context.Context, prop property.ID, blocks []availability.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[prop] = append([]availability.Block(nil), blocks...)
	return nil
}

// List returns a copy of the property's synced blocks.
func (s *SyncStore) List(ctx context.Context, prop property.ID) ([]availability.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]availability.Block(nil), s.blocks[prop]...), nil
}
