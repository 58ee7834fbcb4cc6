package events

import (
	"time"
)

// SourceBackend identifies this service as the event source
const SourceBackend = "focussync.backend"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// QueueJoined is raised when a user enters the waiting queue
type QueueJoined struct {
	BaseEvent
	EntryID  string `json:"entry_id"`
	UserName string `json:"user_name"`
}

// NewQueueJoined creates a QueueJoined event
func NewQueueJoined(entryID, userName string, timestamp time.Time) QueueJoined {
	return QueueJoined{
		BaseEvent: BaseEvent{
			AggregateID: entryID,
			EventType:   "queue.joined",
			Timestamp:   timestamp,
		},
		EntryID:  entryID,
		UserName: userName,
	}
}

// SessionStarted is raised when two waiting users are paired
type SessionStarted struct {
	BaseEvent
	SessionID        string   `json:"session_id"`
	ParticipantNames []string `json:"participant_names"`
	FocusTopic       string   `json:"focus_topic,omitempty"`
	DurationMinutes  int      `json:"duration_minutes"`
}

// NewSessionStarted creates a SessionStarted event
func NewSessionStarted(sessionID string, participantNames []string, focusTopic string, durationMinutes int, timestamp time.Time) SessionStarted {
	return SessionStarted{
		BaseEvent: BaseEvent{
			AggregateID: sessionID,
			EventType:   "session.started",
			Timestamp:   timestamp,
		},
		SessionID:        sessionID,
		ParticipantNames: participantNames,
		FocusTopic:       focusTopic,
		DurationMinutes:  durationMinutes,
	}
}

// SessionEnded is raised when a session is ended by a participant
type SessionEnded struct {
	BaseEvent
	SessionID string `json:"session_id"`
}

// NewSessionEnded creates a SessionEnded event
func NewSessionEnded(sessionID string, timestamp time.Time) SessionEnded {
	return SessionEnded{
		BaseEvent: BaseEvent{
			AggregateID: sessionID,
			EventType:   "session.ended",
			Timestamp:   timestamp,
		},
		SessionID: sessionID,
	}
}
