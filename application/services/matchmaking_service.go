package services

import (
	"context"
	"time"

	"focussync-backend/application/ports"
	"focussync-backend/domain/core/entities"
	"focussync-backend/domain/events"
	pkgerrors "focussync-backend/pkg/errors"

	"go.uber.org/zap"
)

// candidateWindow bounds how many waiting entries a join inspects. A claim
// lost to a concurrent match falls through to the next candidate within the
// window instead of retrying the whole search.
const candidateWindow = 5

// MatchResult is the outcome of a join-queue request
type MatchResult struct {
	Matched   bool   `json:"matched"`
	SessionID string `json:"session_id,omitempty"`
}

// MatchmakingService pairs waiting users into focus sessions. Matching is
// oldest-waiting-first; an entry is consumed with an atomic claim so two
// concurrent joins can never both match the same candidate.
type MatchmakingService struct {
	queue    ports.QueueRepository
	sessions ports.SessionRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewMatchmakingService creates a matchmaking service
func NewMatchmakingService(
	queue ports.QueueRepository,
	sessions ports.SessionRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *MatchmakingService {
	return &MatchmakingService{
		queue:    queue,
		sessions: sessions,
		eventBus: eventBus,
		logger:   logger,
	}
}

// JoinQueue records a waiting entry for the user and attempts to pair them
// with another waiting user. The requester's entry is always persisted before
// the match search, so an unmatched requester stays in the queue for a future
// joiner.
func (s *MatchmakingService) JoinQueue(ctx context.Context, userName, focusTopic, timezone string) (*MatchResult, error) {
	if s.queue == nil || s.sessions == nil {
		return nil, pkgerrors.NewUnavailableError("queue store")
	}

	entry, err := entities.NewQueueEntry(userName, focusTopic, timezone)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewQueueJoined(entry.ID(), entry.UserName(), entry.JoinedAt()))

	candidates, err := s.queue.FindWaiting(ctx, userName, candidateWindow)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		session, err := entities.NewFocusSession(
			userName,
			candidate.UserName(),
			time.Now().UTC(),
			entities.DefaultDurationMinutes,
			resolveTopic(focusTopic, candidate.FocusTopic()),
		)
		if err != nil {
			return nil, err
		}

		if err := s.queue.Claim(ctx, candidate, session.ID()); err != nil {
			if pkgerrors.IsType(err, pkgerrors.ErrorTypeConflict) {
				// Lost the race for this candidate, try the next one
				s.logger.Debug("Queue entry claimed concurrently",
					zap.String("entryID", candidate.ID()),
					zap.String("userName", candidate.UserName()),
				)
				continue
			}
			return nil, err
		}

		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}

		// The requester's own entry leaves the queue with the match. A
		// failure here only leaves a stale waiting record; the session
		// itself is already committed.
		if err := s.queue.Claim(ctx, entry, session.ID()); err != nil {
			s.logger.Warn("Failed to consume requester queue entry",
				zap.String("entryID", entry.ID()),
				zap.Error(err),
			)
		}

		s.logger.Info("Matched focus session",
			zap.String("sessionID", session.ID()),
			zap.Strings("participants", session.ParticipantNames()),
			zap.String("focusTopic", session.FocusTopic()),
		)

		s.publish(ctx, events.NewSessionStarted(
			session.ID(),
			session.ParticipantNames(),
			session.FocusTopic(),
			session.DurationMinutes(),
			session.StartedAt(),
		))

		return &MatchResult{Matched: true, SessionID: session.ID()}, nil
	}

	return &MatchResult{Matched: false}, nil
}

// resolveTopic picks the session topic: the requester's topic wins when both
// sides supplied one
func resolveTopic(requesterTopic, candidateTopic string) string {
	if requesterTopic != "" {
		return requesterTopic
	}
	return candidateTopic
}

// publish sends a domain event best-effort; event delivery never fails the
// request that produced it
func (s *MatchmakingService) publish(ctx context.Context, event events.DomainEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}
