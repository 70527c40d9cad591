package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"namunjari/internal/app/policies"
	"namunjari/internal/domain/availability"
	"namunjari/internal/domain/property"
	"namunjari/internal/domain/shared/events"
)

var (
	ErrNoFeed    = errors.New("sync: property has no feed configured")
	ErrEmptyFeed = errors.New("sync: feed returned no parseable events")
)

// alertThreshold is how many consecutive failures trigger one alert.
const alertThreshold = 3

// State tracks one property's failure streak. It is owned by the Syncer,
// not process-global, so instances stay consistent and tests can inspect
// it.
type State struct {
	Failures int
	Alerted  bool
}

// Syncer reconciles external calendar feeds into the sync store. A
// successful run fully replaces the property's external blocks; a feed
// that disappears an event thereby cancels it.
type Syncer struct {
	Store     availability.SyncStore
	Notifier  policies.Notifier
	Publisher policies.EventPublisher
	Client    *http.Client
	Feeds     map[property.ID]string
	Logger    *slog.Logger
	Now       func() time.Time

	mu     sync.Mutex
	states map[property.ID]*State
}

// SyncAll runs one pass over every configured feed, sequentially. Feeds
// never share mutable state, so a failure in one does not stop the rest.
func (s *Syncer) SyncAll(ctx context.Context) {
	for _, prop := range property.SyncTargets() {
		if err := s.SyncProperty(ctx, prop); err != nil {
			s.log().Error("calendar sync failed", "property", prop.ID, "error", err)
		}
	}
}

// SyncProperty fetches, parses and replaces one property's external
// blocks. Any failure leaves the previous snapshot untouched and advances
// the alert state.
func (s *Syncer) SyncProperty(ctx context.Context, prop property.Property) error {
	url, ok := s.Feeds[prop.ID]
	if !ok || url == "" {
		return ErrNoFeed
	}

	blocks, err := s.fetchAndParse(ctx, prop, url)
	if err != nil {
		s.recordFailure(ctx, prop, err)
		return err
	}
	if err := s.Store.ReplaceAll(ctx, prop.ID, blocks); err != nil {
		err = fmt.Errorf("replace blocks: %w", err)
		s.recordFailure(ctx, prop, err)
		return err
	}

	s.recordSuccess(prop.ID)
	s.publish(ctx, availability.CalendarSynced{Property: prop.ID, Blocks: len(blocks), At: s.now()})
	s.log().Info("calendar synced", "property", prop.ID, "blocks", len(blocks))
	return nil
}

// publish pushes a sync event to the broker, best-effort.
func (s *Syncer) publish(ctx context.Context, evt events.DomainEvent) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, evt); err != nil {
		s.log().Warn("event publish failed", "event", evt.EventName(), "error", err)
	}
}

func (s *Syncer) fetchAndParse(ctx context.Context, prop property.Property, url string) ([]availability.Block, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch feed: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	blocks, err := ParseFeed(prop.ID, body, s.now())
	if err != nil {
		return nil, err
	}
	// An empty parse where bookings were expected is treated as a feed
	// hiccup: replacing the snapshot with nothing would mass-unblock
	// dates that may still be booked remotely.
	if len(blocks) == 0 {
		return nil, ErrEmptyFeed
	}
	return blocks, nil
}

// StateOf returns a copy of the property's failure-streak state.
func (s *Syncer) StateOf(prop property.ID) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[prop]; ok {
		return *st
	}
	return State{}
}

func (s *Syncer) recordSuccess(prop property.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[prop]; ok {
		st.Failures = 0
		st.Alerted = false
	}
}

// recordFailure advances the streak and sends exactly one alert per
// sustained outage: at the third consecutive failure, and not again until
// a success resets the streak.
func (s *Syncer) recordFailure(ctx context.Context, prop property.Property, cause error) {
	s.mu.Lock()
	if s.states == nil {
		s.states = make(map[property.ID]*State)
	}
	st, ok := s.states[prop.ID]
	if !ok {
		st = &State{}
		s.states[prop.ID] = st
	}
	st.Failures++
	streak := st.Failures
	shouldAlert := st.Failures >= alertThreshold && !st.Alerted
	s.mu.Unlock()

	s.publish(ctx, availability.CalendarSyncFailed{
		Property: prop.ID,
		Reason:   cause.Error(),
		Streak:   streak,
		At:       s.now(),
	})

	if !shouldAlert || s.Notifier == nil {
		return
	}
	if err := s.Notifier.SyncAlert(ctx, prop, cause.Error()); err != nil {
		// Leave Alerted unset so the next failure retries the alert.
		s.log().Warn("sync alert delivery failed", "property", prop.ID, "error", err)
		return
	}
	s.mu.Lock()
	st.Alerted = true
	s.mu.Unlock()
}

func (s *Syncer) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Syncer) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
