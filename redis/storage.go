package redis

import (
	"context"
	"encoding/json"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Storage keeps each event as JSON in a hash keyed by id, and the seed order
// as a list of ids.
type Storage struct {
	redisClient *redis.Client
	logger      *zap.Logger
	storageKey  string
	orderKey    string
}

func NewStorage(client *redis.Client, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Storage{
		redisClient: client,
		logger:      logger,
		storageKey:  "events",
		orderKey:    "events:order",
	}
}

// LoadEvents returns the stored events in seed order.
func (s *Storage) LoadEvents(ctx context.Context) ([]horizon.Event, error) {
	ids, err := s.redisClient.LRange(ctx, s.orderKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "error reading event order")
	}

	if len(ids) == 0 {
		return []horizon.Event{}, nil
	}

	values, err := s.redisClient.HMGet(ctx, s.storageKey, ids...).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "error reading events")
	}

	events, err := decodeValues(values)
	if err != nil {
		return nil, err
	}

	s.logger.Info("loaded events from redis", zap.Int("eventsCount", len(events)))

	return events, nil
}

// SaveEvents replaces the stored seed with events, keeping their order.
func (s *Storage) SaveEvents(ctx context.Context, events []horizon.Event) error {
	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.storageKey, s.orderKey)

		for _, event := range events {
			jsonVal, err := json.Marshal(event)
			if err != nil {
				return err
			}

			pipe.HSet(ctx, s.storageKey, event.ID, string(jsonVal))
			pipe.RPush(ctx, s.orderKey, event.ID)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "error saving events")
	}

	s.logger.Info("saved events to redis", zap.Int("eventsCount", len(events)))

	return nil
}

// decodeValues skips ids listed in the order but missing from the hash.
func decodeValues(values []interface{}) ([]horizon.Event, error) {
	results := make([]horizon.Event, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue
		}

		event, err := convertJsonToEvent(str)
		if err != nil {
			return nil, err
		}

		results = append(results, *event)
	}

	return results, nil
}

func convertJsonToEvent(jsonVal string) (*horizon.Event, error) {
	var result *horizon.Event
	if err := json.Unmarshal([]byte(jsonVal), &result); err != nil {
		return nil, err
	}

	return result, nil
}
