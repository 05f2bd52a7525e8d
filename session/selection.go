package session

import (
	horizon "github.com/alok944/event-horizon-college-hub"
)

// Selection is either closed or open on a single event.
type Selection struct {
	event *horizon.Event
}

func Closed() Selection {
	return Selection{}
}

func Open(event horizon.Event) Selection {
	return Selection{event: &event}
}

func (s Selection) IsOpen() bool {
	return s.event != nil
}

func (s Selection) Event() (horizon.Event, bool) {
	if s.event == nil {
		return horizon.Event{}, false
	}
	return *s.event, true
}
