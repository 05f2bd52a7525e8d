package intake

import (
	"reflect"
	"strings"
	"time"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayouts are tried in order when parsing draft timestamps.
var DateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Draft is a free-form submission as produced by the event form.
type Draft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,eventtype"`
	Date        string `json:"date" validate:"required,timestamp"`
	EndDate     string `json:"endDate" validate:"omitempty,timestamp"`
	Location    string `json:"location"`
	College     string `json:"college"`
	Link        string `json:"link" validate:"omitempty,url"`
	Image       string `json:"image" validate:"omitempty,url"`
	IsVirtual   bool   `json:"isVirtual"`
}

type Intake struct {
	validate *validator.Validate

	// NewID returns a fresh event id.
	NewID func() string
}

func New() *Intake {
	validate := validator.New()

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return horizon.EventType(fl.Field().String()).Valid()
	})

	validate.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := ParseTime(fl.Field().String())
		return err == nil
	})

	validate.RegisterStructValidation(draftStructLevel, Draft{})

	return &Intake{
		validate: validate,
		NewID:    uuid.NewString,
	}
}

func draftStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(Draft)

	if !d.IsVirtual && d.Location == "" {
		sl.ReportError(d.Location, "location", "Location", "required_unless_virtual", "")
	}

	if d.EndDate == "" {
		return
	}
	start, err := ParseTime(d.Date)
	if err != nil {
		return
	}
	end, err := ParseTime(d.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(d.EndDate, "endDate", "EndDate", "gtefield", "date")
	}
}

// Submit validates and normalises d into an Event with a fresh id.
func (in *Intake) Submit(d Draft) (horizon.Event, error) {
	d = normalise(d)

	if err := in.validate.Struct(d); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return horizon.Event{}, err
		}

		fields := make([]horizon.FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, horizon.FieldError{Field: fe.Field(), Reason: fe.Tag()})
		}
		return horizon.Event{}, horizon.NewValidationError(validationErrors, fields...)
	}

	date, _ := ParseTime(d.Date)

	event := horizon.Event{
		ID:          in.NewID(),
		Title:       d.Title,
		Description: d.Description,
		Type:        horizon.EventType(d.Type),
		Date:        date,
		College:     d.College,
		Link:        d.Link,
		Image:       d.Image,
		IsVirtual:   d.IsVirtual,
	}

	if !d.IsVirtual {
		event.Location = d.Location
	}

	if d.EndDate != "" {
		end, _ := ParseTime(d.EndDate)
		event.EndDate = &end
	}

	return event, nil
}

func normalise(d Draft) Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Type = strings.TrimSpace(d.Type)
	d.Date = strings.TrimSpace(d.Date)
	d.EndDate = strings.TrimSpace(d.EndDate)
	d.Location = strings.TrimSpace(d.Location)
	d.College = strings.TrimSpace(d.College)
	d.Link = strings.TrimSpace(d.Link)
	d.Image = strings.TrimSpace(d.Image)
	return d
}

// ParseTime parses s with the first matching layout of DateLayouts.
func ParseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range DateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
