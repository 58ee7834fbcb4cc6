package entities

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "focussync-backend/pkg/errors"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a focus session
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusEnded     SessionStatus = "ended"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Planned duration bounds in minutes
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 120
	DefaultDurationMinutes = 50
)

// FocusSession is a paired deep-work session between exactly two participants.
// Sessions are soft-state: they are never deleted, status marks the end.
type FocusSession struct {
	id               string
	participantNames []string
	startedAt        time.Time
	durationMinutes  int
	status           SessionStatus
	focusTopic       string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewFocusSession creates an active session pairing the requester with a
// partner. The requester is always listed first.
func NewFocusSession(requesterName, partnerName string, startedAt time.Time, durationMinutes int, focusTopic string) (*FocusSession, error) {
	if strings.TrimSpace(requesterName) == "" || strings.TrimSpace(partnerName) == "" {
		return nil, pkgerrors.NewValidationError("participant names cannot be empty")
	}

	if requesterName == partnerName {
		return nil, pkgerrors.NewValidationError("a session requires two distinct participants")
	}

	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, pkgerrors.NewValidationError(
			fmt.Sprintf("duration_minutes must be between %d and %d", MinDurationMinutes, MaxDurationMinutes),
		)
	}

	now := time.Now().UTC()
	return &FocusSession{
		id:               uuid.New().String(),
		participantNames: []string{requesterName, partnerName},
		startedAt:        startedAt.UTC(),
		durationMinutes:  durationMinutes,
		status:           SessionStatusActive,
		focusTopic:       focusTopic,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructFocusSession rebuilds a session from repository data with
// preserved timestamps
func ReconstructFocusSession(
	id string,
	participantNames []string,
	startedAt time.Time,
	durationMinutes int,
	status SessionStatus,
	focusTopic string,
	createdAt time.Time,
	updatedAt time.Time,
) *FocusSession {
	return &FocusSession{
		id:               id,
		participantNames: participantNames,
		startedAt:        startedAt,
		durationMinutes:  durationMinutes,
		status:           status,
		focusTopic:       focusTopic,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *FocusSession) ID() string            { return s.id }
func (s *FocusSession) StartedAt() time.Time  { return s.startedAt }
func (s *FocusSession) DurationMinutes() int  { return s.durationMinutes }
func (s *FocusSession) Status() SessionStatus { return s.status }
func (s *FocusSession) FocusTopic() string    { return s.focusTopic }
func (s *FocusSession) CreatedAt() time.Time  { return s.createdAt }
func (s *FocusSession) UpdatedAt() time.Time  { return s.updatedAt }

// ParticipantNames returns the two participant names, requester first
func (s *FocusSession) ParticipantNames() []string {
	names := make([]string, len(s.participantNames))
	copy(names, s.participantNames)
	return names
}

// IsActive reports whether the session has not yet been ended or cancelled
func (s *FocusSession) IsActive() bool {
	return s.status == SessionStatusActive
}

// End marks the session ended. Ending an already-ended or cancelled session
// overwrites the status again rather than failing, matching the idempotent
// end-session contract.
func (s *FocusSession) End(at time.Time) {
	s.status = SessionStatusEnded
	s.updatedAt = at.UTC()
}

// Cancel marks the session cancelled
func (s *FocusSession) Cancel(at time.Time) {
	s.status = SessionStatusCancelled
	s.updatedAt = at.UTC()
}
