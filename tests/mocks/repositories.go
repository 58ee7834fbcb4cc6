package mocks

import (
	"context"
	"time"

	"focussync-backend/domain/core/entities"
	"focussync-backend/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockQueueRepository is a testify mock for ports.QueueRepository
type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Save(ctx context.Context, entry *entities.QueueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) FindWaiting(ctx context.Context, excludeUserName string, limit int) ([]*entities.QueueEntry, error) {
	args := m.Called(ctx, excludeUserName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) Claim(ctx context.Context, entry *entities.QueueEntry, sessionID string) error {
	args := m.Called(ctx, entry, sessionID)
	return args.Error(0)
}

// MockSessionRepository is a testify mock for ports.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session *entities.FocusSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*entities.FocusSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FocusSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(ctx context.Context, id string, status entities.SessionStatus, at time.Time) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

// MockProfileRepository is a testify mock for ports.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *entities.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByName(ctx context.Context, name string) (*entities.UserProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

// MockEventBus is a testify mock for ports.EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
