package integration

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"focussync-backend/application/services"
	"focussync-backend/domain/core/entities"
	"focussync-backend/domain/events"
	pkgerrors "focussync-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryQueueRepository is an in-memory stand-in for the DynamoDB queue table
// with the same claim semantics: flipping an entry to matched succeeds only
// while it is still waiting.
type memoryQueueRepository struct {
	mu      sync.Mutex
	entries map[string]*entities.QueueEntry
}

func newMemoryQueueRepository() *memoryQueueRepository {
	return &memoryQueueRepository{entries: make(map[string]*entities.QueueEntry)}
}

func (r *memoryQueueRepository) Save(_ context.Context, entry *entities.QueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID()] = entry
	return nil
}

func (r *memoryQueueRepository) FindWaiting(_ context.Context, excludeUserName string, limit int) ([]*entities.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var waiting []*entities.QueueEntry
	for _, entry := range r.entries {
		if entry.IsWaiting() && entry.UserName() != excludeUserName {
			waiting = append(waiting, entry)
		}
	}

	sort.Slice(waiting, func(i, j int) bool {
		return waiting[i].JoinedAt().Before(waiting[j].JoinedAt())
	})

	if len(waiting) > limit {
		waiting = waiting[:limit]
	}
	return waiting, nil
}

func (r *memoryQueueRepository) Claim(_ context.Context, entry *entities.QueueEntry, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[entry.ID()]
	if !ok || !stored.IsWaiting() {
		return pkgerrors.NewConflictError("queue entry already matched")
	}

	stored.MarkMatched(sessionID)
	entry.MarkMatched(sessionID)
	return nil
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*entities.FocusSession
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*entities.FocusSession)}
}

func (r *memorySessionRepository) Save(_ context.Context, session *entities.FocusSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID()] = session
	return nil
}

func (r *memorySessionRepository) GetByID(_ context.Context, id string) (*entities.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("session")
	}
	return session, nil
}

func (r *memorySessionRepository) UpdateStatus(_ context.Context, id string, status entities.SessionStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return pkgerrors.NewNotFoundError("session")
	}

	switch status {
	case entities.SessionStatusEnded:
		session.End(at)
	case entities.SessionStatusCancelled:
		session.Cancel(at)
	}
	return nil
}

// recordingEventBus captures published domain events in order
type recordingEventBus struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (b *recordingEventBus) Publish(_ context.Context, event events.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *recordingEventBus) eventTypes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	types := make([]string, 0, len(b.events))
	for _, event := range b.events {
		types = append(types, event.GetEventType())
	}
	return types
}

func TestMatchmakingFlow(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueueRepository()
	sessions := newMemorySessionRepository()
	bus := &recordingEventBus{}
	logger := zap.NewNop()

	matchmaking := services.NewMatchmakingService(queue, sessions, bus, logger)
	sessionSvc := services.NewSessionService(sessions, bus, logger)

	// Alice joins an empty queue and waits
	result, err := matchmaking.JoinQueue(ctx, "alice", "thesis writing", "Europe/Berlin")
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// Bob joins and is paired with alice
	result, err = matchmaking.JoinQueue(ctx, "bob", "", "America/New_York")
	require.NoError(t, err)
	require.True(t, result.Matched)
	require.NotEmpty(t, result.SessionID)

	session, err := sessionSvc.GetSession(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, session.ParticipantNames())
	assert.Equal(t, entities.DefaultDurationMinutes, session.DurationMinutes())
	assert.Equal(t, entities.SessionStatusActive, session.Status())
	// Bob gave no topic, so alice's carries over
	assert.Equal(t, "thesis writing", session.FocusTopic())

	// Both entries are consumed, a third user starts a fresh queue
	result, err = matchmaking.JoinQueue(ctx, "carol", "reading", "")
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// Ending the session is idempotent
	sessionID := session.ID()
	require.NoError(t, sessionSvc.EndSession(ctx, sessionID))

	session, err = sessionSvc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStatusEnded, session.Status())

	require.NoError(t, sessionSvc.EndSession(ctx, sessionID))

	assert.Equal(t, []string{
		"queue.joined",
		"queue.joined",
		"session.started",
		"queue.joined",
		"session.ended",
		"session.ended",
	}, bus.eventTypes())
}

func TestMatchmakingFlow_SameUserDoesNotSelfMatch(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueueRepository()
	sessions := newMemorySessionRepository()
	matchmaking := services.NewMatchmakingService(queue, sessions, nil, zap.NewNop())

	result, err := matchmaking.JoinQueue(ctx, "alice", "math", "")
	require.NoError(t, err)
	assert.False(t, result.Matched)

	// Rejoining under the same name never pairs a user with themselves
	result, err = matchmaking.JoinQueue(ctx, "alice", "math", "")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestMatchmakingFlow_OldestWaitingEntryWins(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueueRepository()
	sessions := newMemorySessionRepository()
	matchmaking := services.NewMatchmakingService(queue, sessions, nil, zap.NewNop())
	sessionSvc := services.NewSessionService(sessions, nil, zap.NewNop())

	first, err := entities.NewQueueEntry("alice", "math", "")
	require.NoError(t, err)
	second, err := entities.NewQueueEntry("bob", "physics", "")
	require.NoError(t, err)

	// Backdate the joins to fix the ordering
	queue.entries[first.ID()] = entities.ReconstructQueueEntry(
		first.ID(), "alice", "math", "", entities.EntryStatusWaiting, "",
		time.Now().UTC().Add(-2*time.Minute),
	)
	queue.entries[second.ID()] = entities.ReconstructQueueEntry(
		second.ID(), "bob", "physics", "", entities.EntryStatusWaiting, "",
		time.Now().UTC().Add(-1*time.Minute),
	)

	result, err := matchmaking.JoinQueue(ctx, "carol", "", "")
	require.NoError(t, err)
	require.True(t, result.Matched)

	session, err := sessionSvc.GetSession(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "alice"}, session.ParticipantNames())
	assert.Equal(t, "math", session.FocusTopic())

	// Bob is still waiting for the next requester
	waiting, err := queue.FindWaiting(ctx, "carol", 5)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "bob", waiting[0].UserName())
}
