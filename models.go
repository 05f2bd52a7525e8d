package horizon

import (
	"context"
	"fmt"
	"time"
)

const PlaceholderImage = "/placeholder.svg"

type EventType string

const (
	Hackathon  EventType = "hackathon"
	Workshop   EventType = "workshop"
	TechTalk   EventType = "tech_talk"
	CareerFair EventType = "career_fair"
	Other      EventType = "other"

	// AllTypes is the category sentinel meaning "no constraint".
	AllTypes EventType = "all"
)

// EventTypes lists the closed set of categories in display order.
var EventTypes = []EventType{Hackathon, Workshop, TechTalk, CareerFair, Other}

func (t EventType) Valid() bool {
	switch t {
	case Hackathon, Workshop, TechTalk, CareerFair, Other:
		return true
	}
	return false
}

// Label is the badge text for a single event.
func (t EventType) Label() string {
	switch t {
	case Hackathon:
		return "Hackathon"
	case Workshop:
		return "Workshop"
	case TechTalk:
		return "Tech Talk"
	case CareerFair:
		return "Career Fair"
	case AllTypes:
		return "All Events"
	default:
		return "Event"
	}
}

// TabLabel is the plural form shown on category tabs.
func (t EventType) TabLabel() string {
	switch t {
	case AllTypes:
		return "All Events"
	case Hackathon:
		return "Hackathons"
	case Workshop:
		return "Workshops"
	case TechTalk:
		return "Tech Talks"
	case CareerFair:
		return "Career Fairs"
	default:
		return "Other Events"
	}
}

func (t EventType) Color() string {
	switch t {
	case Hackathon:
		return "purple"
	case Workshop:
		return "blue"
	case TechTalk:
		return "green"
	case CareerFair:
		return "amber"
	default:
		return "gray"
	}
}

// ParseCategory accepts any event type or the "all" sentinel.
func ParseCategory(s string) (EventType, error) {
	t := EventType(s)
	if t == AllTypes || t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidFilter, s)
}

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        EventType  `json:"type"`
	Date        time.Time  `json:"date"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Location    string     `json:"location"`
	College     string     `json:"college"`
	Link        string     `json:"link,omitempty"`
	Image       string     `json:"image,omitempty"`
	IsVirtual   bool       `json:"isVirtual"`
}

// ImageOrPlaceholder never returns an empty reference.
func (e Event) ImageOrPlaceholder() string {
	if e.Image == "" {
		return PlaceholderImage
	}
	return e.Image
}

func (e Event) DisplayLocation() string {
	if e.IsVirtual {
		return "Virtual Event"
	}
	return e.Location
}

func (e Event) String() string {
	return fmt.Sprintf("<[%s] %s:%s @ %s>", e.ID, e.Type, e.Title, e.Date.Format("2006-01-02 15:04 MST"))
}

// Provider supplies the seed collection at startup.
type Provider interface {
	LoadEvents(ctx context.Context) ([]Event, error)
}
