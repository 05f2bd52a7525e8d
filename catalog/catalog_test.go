package catalog

import (
	"errors"
	"testing"
	"time"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func scenarioCatalog() []horizon.Event {
	return []horizon.Event{
		{ID: "1", Type: horizon.Hackathon, Date: date(2024, 1, 1), Title: "Alpha", Description: "first", College: "MIT"},
		{ID: "2", Type: horizon.Workshop, Date: date(2024, 2, 1), Title: "Beta", Description: "second", College: "Stanford University"},
	}
}

func ids(events []horizon.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func newStore(t *testing.T, seed []horizon.Event) *Store {
	t.Helper()
	s, err := NewStore(seed, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestNewStoreKeepsSeedOrder(t *testing.T) {
	s := newStore(t, scenarioCatalog())

	assert.Equal(t, []string{"1", "2"}, ids(s.All()))
	assert.Equal(t, 2, s.Len())
}

func TestNewStoreRejectsDuplicateSeed(t *testing.T) {
	seed := append(scenarioCatalog(), horizon.Event{ID: "1"})

	_, err := NewStore(seed, nil)
	assert.True(t, errors.Is(err, horizon.ErrDuplicateID))
}

func TestInsertPrepends(t *testing.T) {
	s := newStore(t, scenarioCatalog())

	require.NoError(t, s.Insert(horizon.Event{ID: "3", Title: "Gamma", Date: date(2024, 3, 1)}))

	assert.Equal(t, []string{"3", "1", "2"}, ids(s.All()))
}

func TestInsertDuplicate(t *testing.T) {
	s := newStore(t, scenarioCatalog())

	err := s.Insert(horizon.Event{ID: "2", Title: "Other"})
	require.Error(t, err)

	var validationErr *horizon.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.True(t, validationErr.Has("id"))
	assert.True(t, errors.Is(err, horizon.ErrDuplicateID))
	assert.Equal(t, []string{"1", "2"}, ids(s.All()))
}

func TestAllIsSnapshot(t *testing.T) {
	s := newStore(t, scenarioCatalog())

	snapshot := s.All()
	require.NoError(t, s.Insert(horizon.Event{ID: "3"}))
	snapshot[0].Title = "changed"

	assert.Len(t, snapshot, 2)
	event, err := s.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", event.Title)
}

func TestFindByID(t *testing.T) {
	s := newStore(t, scenarioCatalog())

	event, err := s.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Beta", event.Title)

	_, err = s.FindByID("404")
	assert.True(t, errors.Is(err, horizon.ErrNotFound))
}

func TestColleges(t *testing.T) {
	s := newStore(t, append(scenarioCatalog(), horizon.Event{ID: "3", College: "MIT"}, horizon.Event{ID: "4"}))

	assert.Equal(t, []string{horizon.AllColleges, "MIT", "Stanford University"}, s.Colleges())
}

func TestCountByCategory(t *testing.T) {
	events := append(scenarioCatalog(), horizon.Event{ID: "3", Type: horizon.Hackathon})

	counts := CountByCategory(events)

	assert.Equal(t, 3, counts[horizon.AllTypes])
	assert.Equal(t, 2, counts[horizon.Hackathon])
	assert.Equal(t, 1, counts[horizon.Workshop])
	assert.Equal(t, 0, counts[horizon.CareerFair])

	sum := 0
	for category, n := range counts {
		if category != horizon.AllTypes {
			sum += n
		}
	}
	assert.Equal(t, counts[horizon.AllTypes], sum)
}

func TestCountByCategoryEmpty(t *testing.T) {
	counts := CountByCategory(nil)

	assert.Equal(t, 0, counts[horizon.AllTypes])
	assert.Len(t, counts, len(horizon.EventTypes)+1)
}
