package usecase

import (
	"context"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/service"
)

// SessionAuditUsecase records the session events delivered to the worker.
type SessionAuditUsecase interface {
	// Record stores the event under its event ID; recording the same event twice is harmless.
	Record(ctx context.Context, event *service.SessionEvent, requestID string) error

	// ListForUser returns the recorded events of one account, oldest first.
	ListForUser(ctx context.Context, uid string) ([]entity.SessionRecord, error)
}
