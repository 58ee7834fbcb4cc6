package ports

import (
	"context"
	"time"

	"focussync-backend/domain/core/entities"
	"focussync-backend/domain/events"
)

// QueueRepository persists matchmaking queue entries
type QueueRepository interface {
	// Save stores a new waiting entry
	Save(ctx context.Context, entry *entities.QueueEntry) error

	// FindWaiting returns waiting entries for users other than
	// excludeUserName, oldest first, at most limit entries
	FindWaiting(ctx context.Context, excludeUserName string, limit int) ([]*entities.QueueEntry, error)

	// Claim atomically flips a waiting entry to matched and records the
	// session it joined. Returns a conflict error if the entry was already
	// claimed by a concurrent match.
	Claim(ctx context.Context, entry *entities.QueueEntry, sessionID string) error
}

// SessionRepository persists focus sessions
type SessionRepository interface {
	Save(ctx context.Context, session *entities.FocusSession) error
	GetByID(ctx context.Context, id string) (*entities.FocusSession, error)

	// UpdateStatus sets the session status and updated_at timestamp
	// regardless of the session's prior status
	UpdateStatus(ctx context.Context, id string, status entities.SessionStatus, at time.Time) error
}

// ProfileRepository persists user profiles
type ProfileRepository interface {
	Save(ctx context.Context, profile *entities.UserProfile) error
	GetByName(ctx context.Context, name string) (*entities.UserProfile, error)
}

// EventBus publishes domain events to interested consumers
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// StoreHealth exposes connectivity probes for the diagnostics surface
type StoreHealth interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
