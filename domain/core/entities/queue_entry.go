package entities

import (
	"strings"
	"time"

	pkgerrors "focussync-backend/pkg/errors"

	"github.com/google/uuid"
)

// EntryStatus represents the matchmaking state of a queue entry
type EntryStatus string

const (
	EntryStatusWaiting EntryStatus = "waiting"
	EntryStatusMatched EntryStatus = "matched"
)

// QueueEntry is a waiting-room entry for matchmaking.
// Entries are written once and flipped to matched when a session is created,
// so the queue never accumulates stale waiting records.
type QueueEntry struct {
	id         string
	userName   string
	focusTopic string
	timezone   string
	status     EntryStatus
	sessionID  string
	joinedAt   time.Time
}

// NewQueueEntry creates a waiting entry for the given user
func NewQueueEntry(userName, focusTopic, timezone string) (*QueueEntry, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, pkgerrors.NewValidationError("user_name cannot be empty")
	}

	return &QueueEntry{
		id:         uuid.New().String(),
		userName:   userName,
		focusTopic: focusTopic,
		timezone:   timezone,
		status:     EntryStatusWaiting,
		joinedAt:   time.Now().UTC(),
	}, nil
}

// ReconstructQueueEntry rebuilds an entry from repository data
func ReconstructQueueEntry(
	id string,
	userName string,
	focusTopic string,
	timezone string,
	status EntryStatus,
	sessionID string,
	joinedAt time.Time,
) *QueueEntry {
	return &QueueEntry{
		id:         id,
		userName:   userName,
		focusTopic: focusTopic,
		timezone:   timezone,
		status:     status,
		sessionID:  sessionID,
		joinedAt:   joinedAt,
	}
}

func (e *QueueEntry) ID() string          { return e.id }
func (e *QueueEntry) UserName() string    { return e.userName }
func (e *QueueEntry) FocusTopic() string  { return e.focusTopic }
func (e *QueueEntry) Timezone() string    { return e.timezone }
func (e *QueueEntry) Status() EntryStatus { return e.status }
func (e *QueueEntry) SessionID() string   { return e.sessionID }
func (e *QueueEntry) JoinedAt() time.Time { return e.joinedAt }

// IsWaiting reports whether the entry is still available for matching
func (e *QueueEntry) IsWaiting() bool {
	return e.status == EntryStatusWaiting
}

// MarkMatched flips the entry to matched and records the session it joined
func (e *QueueEntry) MarkMatched(sessionID string) {
	e.status = EntryStatusMatched
	e.sessionID = sessionID
}
