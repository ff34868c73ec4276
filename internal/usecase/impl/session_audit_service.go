package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	"authkit/internal/domain/service"
	"authkit/internal/usecase"
)

type sessionAuditService struct {
	store  repository.DocumentStore[entity.SessionRecord]
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionAuditService is the constructor for sessionAuditService.
func NewSessionAuditService(
	store repository.DocumentStore[entity.SessionRecord],
	logger *slog.Logger,
) usecase.SessionAuditUsecase {
	return newSessionAuditService(store, logger, time.Now)
}

func newSessionAuditService(
	store repository.DocumentStore[entity.SessionRecord],
	logger *slog.Logger,
	now func() time.Time,
) *sessionAuditService {
	return &sessionAuditService{store: store, logger: logger, now: now}
}

func validateSessionEvent(event *service.SessionEvent) error {
	switch {
	case event == nil:
		return domainerrors.ErrValidationFailed.WithDetails("session event is required")
	case event.EventID == "":
		return domainerrors.ErrValidationFailed.WithDetails("event_id is required")
	case event.UID == "":
		return domainerrors.ErrValidationFailed.WithDetails("uid is required")
	case event.Type != service.SessionEventSignedIn && event.Type != service.SessionEventSignedOut:
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type: " + event.Type)
	}

	return nil
}

func (srv *sessionAuditService) Record(ctx context.Context, event *service.SessionEvent, requestID string) error {
	if err := validateSessionEvent(event); err != nil {
		return err
	}

	record := &entity.SessionRecord{
		EventID:    event.EventID,
		Type:       event.Type,
		UID:        event.UID,
		Email:      event.Email,
		OccurredAt: event.OccurredAt,
		ReceivedAt: srv.now(),
		RequestID:  requestID,
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if err := srv.store.Create(ctx, event.EventID, record); err != nil {
		logger.Error("Failed to record session event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return err
	}

	logger.Info("Session event recorded",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("uid", event.UID),
	)

	return nil
}

func (srv *sessionAuditService) ListForUser(ctx context.Context, uid string) ([]entity.SessionRecord, error) {
	if uid == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("uid is required")
	}

	all, err := srv.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]entity.SessionRecord, 0)
	for _, record := range all {
		if record.UID == uid {
			records = append(records, record)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredAt.Before(records[j].OccurredAt)
	})

	return records, nil
}
