package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/events"
)

// emit publishes best-effort: a failed fan-out is logged and never fails the
// operation that already committed.
func emit(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event publish failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("subject_id", event.SubjectID),
			zap.Error(err))
	}
}

func actorOf(claims *auth.Claims) events.Actor {
	if claims == nil {
		return events.Actor{}
	}
	return events.Actor{EmployeeID: claims.ID, Role: claims.Role}
}
