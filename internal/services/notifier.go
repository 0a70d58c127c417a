package services

import (
	"context"
	"time"

	"film-backend/internal/events"

	"github.com/sirupsen/logrus"
)

const publishTimeout = 3 * time.Second

// notifier publishes events once a write has committed. Failures are logged
// and never surface to the caller.
type notifier struct {
	publisher events.Publisher
	logger    *logrus.Logger
}

func (n notifier) publish(ctx context.Context, e events.Event) {
	if n.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.publisher.Publish(ctx, e); err != nil {
		n.logger.WithError(err).WithFields(logrus.Fields{
			"event":     e.Type,
			"entity_id": e.EntityID,
		}).Warn("Failed to publish catalog event")
	}
}
