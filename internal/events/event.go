// Package events publishes catalog lifecycle events after a write commits.
package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Type string

const (
	FilmCreated     Type = "film.created"
	FilmUpdated     Type = "film.updated"
	FilmDeleted     Type = "film.deleted"
	DirectorCreated Type = "director.created"
	DirectorUpdated Type = "director.updated"
	DirectorDeleted Type = "director.deleted"
	GenreCreated    Type = "genre.created"
	GenreUpdated    Type = "genre.updated"
	GenreDeleted    Type = "genre.deleted"
)

type Event struct {
	Type       Type      `json:"type"`
	EntityID   uint      `json:"entity_id"`
	ActorID    uint      `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

func New(t Type, entityID, actorID uint, data any) Event {
	return Event{
		Type:       t,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	p.logger.WithFields(logrus.Fields{
		"event":     e.Type,
		"entity_id": e.EntityID,
		"actor_id":  e.ActorID,
	}).Debug("Catalog event")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
