package catalog

import (
	"sort"
	"sync"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store holds the session's events, most recent insert first.
type Store struct {
	mu sync.RWMutex

	events []horizon.Event

	// Set of event IDs held, for collision checks
	ids map[string]struct{}

	logger *zap.Logger
}

// NewStore returns a Store holding exactly seed, in its given order.
func NewStore(seed []horizon.Event, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		events: make([]horizon.Event, 0, len(seed)),
		ids:    make(map[string]struct{}, len(seed)),
		logger: logger,
	}

	for _, event := range seed {
		if _, exists := s.ids[event.ID]; exists {
			return nil, errors.Wrapf(horizon.ErrDuplicateID, "seed event %s", event.ID)
		}
		s.ids[event.ID] = struct{}{}
		s.events = append(s.events, event)
	}

	logger.Info("catalog initialised", zap.Int("eventsCount", len(s.events)))

	return s, nil
}

// Insert prepends event. An id collision leaves the store untouched.
func (s *Store) Insert(event horizon.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[event.ID]; exists {
		s.logger.Error("rejected duplicate event id", zap.String("eventId", event.ID))
		return horizon.NewValidationError(
			errors.Wrapf(horizon.ErrDuplicateID, "event %s", event.ID),
			horizon.FieldError{Field: "id", Reason: "duplicate"},
		)
	}

	events := make([]horizon.Event, 0, len(s.events)+1)
	events = append(events, event)
	events = append(events, s.events...)

	s.events = events
	s.ids[event.ID] = struct{}{}

	s.logger.Info("event inserted", zap.String("eventId", event.ID), zap.Int("eventsCount", len(s.events)))

	return nil
}

// All returns a snapshot; later inserts are not reflected in it.
func (s *Store) All() []horizon.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]horizon.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.events)
}

func (s *Store) FindByID(id string) (horizon.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return horizon.Event{}, errors.Wrapf(horizon.ErrNotFound, "event %s", id)
}

// Colleges returns the college choices: the sentinel, then every distinct
// college in the catalog sorted by name.
func (s *Store) Colleges() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, event := range s.events {
		if event.College == "" || seen[event.College] {
			continue
		}
		seen[event.College] = true
		names = append(names, event.College)
	}
	sort.Strings(names)

	return append([]string{horizon.AllColleges}, names...)
}
