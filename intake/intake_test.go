package intake

import (
	"errors"
	"testing"
	"time"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Title:       "Gamma",
		Description: "A third event",
		Type:        "tech_talk",
		Date:        "2024-03-01T10:00:00Z",
		Location:    "Room 42",
		College:     "MIT",
	}
}

func newIntake() *Intake {
	in := New()
	in.NewID = func() string { return "fixed-id" }
	return in
}

func requireFields(t *testing.T, err error, fields ...string) *horizon.ValidationError {
	t.Helper()

	var validationErr *horizon.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
	for _, field := range fields {
		assert.True(t, validationErr.Has(field), "expected %s in %v", field, validationErr.Fields)
	}
	return validationErr
}

func TestSubmitValid(t *testing.T) {
	event, err := newIntake().Submit(validDraft())
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", event.ID)
	assert.Equal(t, "Gamma", event.Title)
	assert.Equal(t, horizon.TechTalk, event.Type)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), event.Date.UTC())
	assert.Equal(t, "Room 42", event.Location)
	assert.Nil(t, event.EndDate)
}

func TestSubmitAssignsFreshIDs(t *testing.T) {
	in := New()

	first, err := in.Submit(validDraft())
	require.NoError(t, err)
	second, err := in.Submit(validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitMissingTitle(t *testing.T) {
	d := validDraft()
	d.Title = "   "

	_, err := newIntake().Submit(d)

	validationErr := requireFields(t, err, "title")
	assert.False(t, validationErr.Has("description"))
}

func TestSubmitReportsEveryField(t *testing.T) {
	_, err := newIntake().Submit(Draft{Link: "not a url"})

	requireFields(t, err, "title", "description", "type", "date", "location", "link")
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	for _, typ := range []string{"party", "all"} {
		d := validDraft()
		d.Type = typ

		_, err := newIntake().Submit(d)
		requireFields(t, err, "type")
	}
}

func TestSubmitRejectsBadDate(t *testing.T) {
	d := validDraft()
	d.Date = "next tuesday"

	_, err := newIntake().Submit(d)
	requireFields(t, err, "date")
}

func TestSubmitDateLayouts(t *testing.T) {
	for _, value := range []string{"2024-03-01", "2024-03-01T10:00", "2024-03-01 10:00", "2024-03-01T10:00:00+02:00"} {
		d := validDraft()
		d.Date = value

		_, err := newIntake().Submit(d)
		assert.NoError(t, err, value)
	}
}

func TestSubmitVirtualLocation(t *testing.T) {
	d := validDraft()
	d.Location = ""

	_, err := newIntake().Submit(d)
	requireFields(t, err, "location")

	d.IsVirtual = true
	event, err := newIntake().Submit(d)
	require.NoError(t, err)
	assert.True(t, event.IsVirtual)

	d.Location = "ignored"
	event, err = newIntake().Submit(d)
	require.NoError(t, err)
	assert.Empty(t, event.Location)
}

func TestSubmitURLs(t *testing.T) {
	d := validDraft()
	d.Link = "https://example.com/event"
	d.Image = "https://example.com/event.png"

	event, err := newIntake().Submit(d)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/event", event.Link)

	d.Image = "event.png"
	_, err = newIntake().Submit(d)
	requireFields(t, err, "image")
}

func TestSubmitEndDate(t *testing.T) {
	d := validDraft()
	d.EndDate = "2024-03-02T10:00:00Z"

	event, err := newIntake().Submit(d)
	require.NoError(t, err)
	require.NotNil(t, event.EndDate)
	assert.True(t, event.EndDate.After(event.Date))

	d.EndDate = "2024-02-28T10:00:00Z"
	_, err = newIntake().Submit(d)
	requireFields(t, err, "endDate")

	d.EndDate = "whenever"
	_, err = newIntake().Submit(d)
	requireFields(t, err, "endDate")
}
