package postgres

import (
	"context"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EventService reads and writes the seed collection.
type EventService struct {
	DB *DB
}

// LoadEvents returns the stored events in seed order.
func (s *EventService) LoadEvents(ctx context.Context) ([]horizon.Event, error) {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT id, title, description, type, date, end_date, location, college, link, image, is_virtual
		FROM events
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "error querying events")
	}
	defer rows.Close()

	events := make([]horizon.Event, 0)
	for rows.Next() {
		var event horizon.Event
		var eventType string

		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&eventType,
			&event.Date,
			&event.EndDate,
			&event.Location,
			&event.College,
			&event.Link,
			&event.Image,
			&event.IsVirtual,
		); err != nil {
			return nil, errors.Wrap(err, "error scanning event")
		}

		event.Type = horizon.EventType(eventType)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.DB.logger.Info("loaded events from postgres", zap.Int("eventsCount", len(events)))

	return events, nil
}

// SaveEvents replaces the stored seed with events, keeping their order.
func (s *EventService) SaveEvents(ctx context.Context, events []horizon.Event) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM events`); err != nil {
		return errors.Wrap(err, "error clearing events")
	}

	for i, event := range events {
		_, err = tx.Exec(ctx, `
			INSERT INTO events (id, position, title, description, type, date, end_date, location, college, link, image, is_virtual, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			event.ID,
			i,
			event.Title,
			event.Description,
			string(event.Type),
			event.Date,
			event.EndDate,
			event.Location,
			event.College,
			event.Link,
			event.Image,
			event.IsVirtual,
			tx.now,
		)
		if err != nil {
			return errors.Wrapf(err, "error inserting event %s", event.ID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.DB.logger.Info("saved events to postgres", zap.Int("eventsCount", len(events)))

	return nil
}
