package services

import (
	"context"
	"time"

	"focussync-backend/application/ports"
	"focussync-backend/domain/core/entities"
	"focussync-backend/domain/events"
	pkgerrors "focussync-backend/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService transitions focus sessions between lifecycle states
type SessionService struct {
	sessions ports.SessionRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewSessionService creates a session lifecycle service
func NewSessionService(
	sessions ports.SessionRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		eventBus: eventBus,
		logger:   logger,
	}
}

// EndSession marks a session ended and stamps updated_at. Ending an
// already-ended session succeeds again; the status is overwritten, not
// checked.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	if s.sessions == nil {
		return pkgerrors.NewUnavailableError("session store")
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		return pkgerrors.NewValidationError("invalid session id format")
	}

	now := time.Now().UTC()
	if err := s.sessions.UpdateStatus(ctx, sessionID, entities.SessionStatusEnded, now); err != nil {
		return err
	}

	s.logger.Info("Ended focus session", zap.String("sessionID", sessionID))

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, events.NewSessionEnded(sessionID, now)); err != nil {
			s.logger.Warn("Failed to publish session.ended event",
				zap.String("sessionID", sessionID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// GetSession fetches a session by id
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*entities.FocusSession, error) {
	if s.sessions == nil {
		return nil, pkgerrors.NewUnavailableError("session store")
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, pkgerrors.NewValidationError("invalid session id format")
	}

	return s.sessions.GetByID(ctx, sessionID)
}
