package session

import (
	"strconv"
	"sync"
	"time"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/alok944/event-horizon-college-hub/catalog"
	"github.com/alok944/event-horizon-college-hub/intake"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const EventCreated = "event.created"

// Publisher is notified of every event admitted to the catalog.
type Publisher interface {
	Publish(eventName string, data interface{}) error
}

// Session owns the UI state of one catalog: filters, tab, sort key, view
// mode and selection. Every setter re-derives the displayed events before it
// returns, so readers never see a view older than the last mutation.
type Session struct {
	mu sync.Mutex

	store     *catalog.Store
	intake    *intake.Intake
	publisher Publisher
	logger    *zap.Logger

	filters   horizon.Filters
	activeTab horizon.EventType
	sortKey   horizon.SortKey
	viewMode  horizon.ViewMode
	selection Selection

	derived []horizon.Event
	counts  horizon.CategoryCounts
}

type Option func(*Session)

func WithPublisher(p Publisher) Option {
	return func(s *Session) {
		s.publisher = p
	}
}

func WithIntake(in *intake.Intake) Option {
	return func(s *Session) {
		s.intake = in
	}
}

func New(store *catalog.Store, logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		store:     store,
		logger:    logger,
		filters:   horizon.DefaultFilters(),
		activeTab: horizon.AllTypes,
		sortKey:   horizon.SortDateAsc,
		viewMode:  horizon.ViewGrid,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.intake == nil {
		s.intake = intake.New()
	}

	s.rederive()

	return s
}

// View is an immutable snapshot of everything the presentation layer needs.
type View struct {
	Events        []horizon.Event        `json:"events"`
	Counts        horizon.CategoryCounts `json:"counts"`
	Tabs          []horizon.Tab          `json:"tabs"`
	Filters       horizon.Filters        `json:"filters"`
	FiltersActive bool                   `json:"filtersActive"`
	ActiveTab     horizon.EventType      `json:"activeTab"`
	Sort          horizon.SortKey        `json:"sort"`
	ViewMode      horizon.ViewMode       `json:"viewMode"`
	Status        horizon.Status         `json:"status"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]horizon.Event, len(s.derived))
	copy(events, s.derived)

	counts := make(horizon.CategoryCounts, len(s.counts))
	for k, v := range s.counts {
		counts[k] = v
	}

	status := horizon.StatusReady
	if len(events) == 0 {
		status = horizon.StatusEmpty
	}

	return View{
		Events:        events,
		Counts:        counts,
		Tabs:          horizon.Tabs(counts),
		Filters:       s.filters,
		FiltersActive: s.filters.IsActive(),
		ActiveTab:     s.activeTab,
		Sort:          s.sortKey,
		ViewMode:      s.viewMode,
		Status:        status,
	}
}

// SetFilter parses value for the named filter field. An empty value clears
// the field. On a parse failure the previous value is kept.
func (s *Session) SetFilter(field, value string) error {
	switch field {
	case "search":
		s.SetSearch(value)
		return nil
	case "type":
		if value == "" {
			value = string(horizon.AllTypes)
		}
		category, err := horizon.ParseCategory(value)
		if err != nil {
			return err
		}
		s.SetCategory(category)
		return nil
	case "college":
		s.SetCollege(value)
		return nil
	case "startDate", "endDate":
		bound, err := parseBound(value)
		if err != nil {
			return errors.Wrapf(err, "filter %s", field)
		}
		if field == "startDate" {
			s.SetStartDate(bound)
		} else {
			s.SetEndDate(bound)
		}
		return nil
	case "isVirtual":
		virtual, err := parseVirtual(value)
		if err != nil {
			return errors.Wrapf(err, "filter %s", field)
		}
		s.SetVirtual(virtual)
		return nil
	}

	return errors.Wrapf(horizon.ErrInvalidFilter, "unknown filter field %q", field)
}

func parseBound(value string) (*time.Time, error) {
	if value == "" || value == "null" {
		return nil, nil
	}
	t, err := intake.ParseTime(value)
	if err != nil {
		return nil, errors.Wrapf(horizon.ErrInvalidFilter, "unparseable date %q", value)
	}
	return &t, nil
}

func parseVirtual(value string) (*bool, error) {
	if value == "" || value == "null" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.Wrapf(horizon.ErrInvalidFilter, "not a boolean %q", value)
	}
	return &b, nil
}

func (s *Session) SetSearch(search string) {
	s.update(func() {
		s.filters.Search = search
	})
}

// SetCategory changes the category filter and moves the active tab with it.
func (s *Session) SetCategory(category horizon.EventType) {
	s.update(func() {
		s.filters.Type = category
		s.activeTab = category
	})
}

func (s *Session) SetCollege(college string) {
	if college == "" {
		college = horizon.AllColleges
	}
	s.update(func() {
		s.filters.College = college
	})
}

func (s *Session) SetStartDate(bound *time.Time) {
	s.update(func() {
		s.filters.StartDate = bound
	})
}

func (s *Session) SetEndDate(bound *time.Time) {
	s.update(func() {
		s.filters.EndDate = bound
	})
}

func (s *Session) SetVirtual(virtual *bool) {
	s.update(func() {
		s.filters.IsVirtual = virtual
	})
}

// ResetFilters restores every filter default. Tab, sort key and view mode
// are left alone.
func (s *Session) ResetFilters() {
	s.update(func() {
		s.filters = horizon.DefaultFilters()
	})
}

// SetActiveTab selects a tab, which sets the category filter to match.
func (s *Session) SetActiveTab(category horizon.EventType) error {
	if _, err := horizon.ParseCategory(string(category)); err != nil {
		return err
	}
	s.SetCategory(category)
	return nil
}

func (s *Session) SetSortKey(key horizon.SortKey) error {
	if _, err := horizon.ParseSortKey(string(key)); err != nil {
		return err
	}
	s.update(func() {
		s.sortKey = key
	})
	return nil
}

func (s *Session) SetViewMode(mode horizon.ViewMode) error {
	if _, err := horizon.ParseViewMode(string(mode)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
	return nil
}

// Select opens the detail view on event, replacing any open one. The event
// need not be part of the current derived sequence.
func (s *Session) Select(event horizon.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = Open(event)
	s.logger.Debug("event selected", zap.String("eventId", event.ID))
}

// SelectByID opens the detail view on the catalog event with the given id.
func (s *Session) SelectByID(id string) (horizon.Event, error) {
	event, err := s.store.FindByID(id)
	if err != nil {
		return horizon.Event{}, err
	}
	s.Select(event)
	return event, nil
}

func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = Closed()
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

func (s *Session) FindByID(id string) (horizon.Event, error) {
	return s.store.FindByID(id)
}

func (s *Session) Colleges() []string {
	return s.store.Colleges()
}

// Submit validates d, prepends the resulting event to the catalog and
// re-derives. A rejected draft leaves the catalog unchanged.
func (s *Session) Submit(d intake.Draft) (horizon.Event, error) {
	event, err := s.intake.Submit(d)
	if err != nil {
		s.logger.Info("draft rejected", zap.Error(err))
		return horizon.Event{}, err
	}

	s.mu.Lock()
	if err := s.store.Insert(event); err != nil {
		s.mu.Unlock()
		return horizon.Event{}, err
	}
	s.rederive()
	s.mu.Unlock()

	if s.publisher != nil {
		if err := s.publisher.Publish(EventCreated, event); err != nil {
			s.logger.Error("error publishing created event", zap.String("eventId", event.ID), zap.Error(err))
		}
	}

	return event, nil
}

func (s *Session) update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn()
	s.rederive()
}

// rederive must be called with mu held.
func (s *Session) rederive() {
	all := s.store.All()
	s.derived = catalog.Derive(all, s.filters, s.sortKey)
	s.counts = catalog.CountByCategory(all)

	s.logger.Debug(
		"derived events",
		zap.Int("eventsCount", len(all)),
		zap.Int("displayedCount", len(s.derived)),
		zap.String("sort", string(s.sortKey)),
	)
}
