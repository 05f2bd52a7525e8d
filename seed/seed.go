package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"io/ioutil"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed events.json
var embedded []byte

// Provider reads the seed collection from a JSON file, or from the copy
// embedded in the binary when no path is set.
type Provider struct {
	path   string
	logger *zap.Logger
}

func NewProvider(path string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		path:   path,
		logger: logger,
	}
}

func (p *Provider) LoadEvents(ctx context.Context) ([]horizon.Event, error) {
	data := embedded
	if p.path != "" {
		var err error
		if data, err = ioutil.ReadFile(p.path); err != nil {
			return nil, errors.Wrap(err, "error reading seed file")
		}
	}

	events, err := Decode(data)
	if err != nil {
		return nil, err
	}

	p.logger.Info("loaded seed events", zap.String("path", p.path), zap.Int("eventsCount", len(events)))

	return events, nil
}

// Decode parses a JSON array of events.
func Decode(data []byte) ([]horizon.Event, error) {
	var events []horizon.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, errors.Wrap(err, "error decoding seed events")
	}
	if events == nil {
		events = []horizon.Event{}
	}
	return events, nil
}

// Embedded returns the events compiled into the binary.
func Embedded() ([]horizon.Event, error) {
	return Decode(embedded)
}
