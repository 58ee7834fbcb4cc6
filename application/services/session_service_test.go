package services

import (
	"context"
	"testing"
	"time"

	"focussync-backend/domain/core/entities"
	pkgerrors "focussync-backend/pkg/errors"
	"focussync-backend/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEndSession_Success(t *testing.T) {
	ctx := context.Background()
	sessions := new(mocks.MockSessionRepository)
	sessionID := uuid.New().String()

	sessions.On("UpdateStatus", ctx, sessionID, entities.SessionStatusEnded, mock.AnythingOfType("time.Time")).
		Return(nil)

	svc := NewSessionService(sessions, nil, zap.NewNop())
	err := svc.EndSession(ctx, sessionID)

	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestEndSession_Twice(t *testing.T) {
	ctx := context.Background()
	sessions := new(mocks.MockSessionRepository)
	sessionID := uuid.New().String()

	// Ending an already-ended session is not rejected
	sessions.On("UpdateStatus", ctx, sessionID, entities.SessionStatusEnded, mock.AnythingOfType("time.Time")).
		Return(nil).Twice()

	svc := NewSessionService(sessions, nil, zap.NewNop())

	require.NoError(t, svc.EndSession(ctx, sessionID))
	require.NoError(t, svc.EndSession(ctx, sessionID))
	sessions.AssertExpectations(t)
}

func TestEndSession_MalformedID(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)

	svc := NewSessionService(sessions, nil, zap.NewNop())
	err := svc.EndSession(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	sessions.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEndSession_StoreUnavailable(t *testing.T) {
	svc := NewSessionService(nil, nil, zap.NewNop())

	err := svc.EndSession(context.Background(), uuid.New().String())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsUnavailable(err))
	// The unavailable case is distinct from the malformed-identifier case
	assert.False(t, pkgerrors.IsValidation(err))
}

func TestEndSession_UnknownID(t *testing.T) {
	ctx := context.Background()
	sessions := new(mocks.MockSessionRepository)
	sessionID := uuid.New().String()

	sessions.On("UpdateStatus", ctx, sessionID, entities.SessionStatusEnded, mock.AnythingOfType("time.Time")).
		Return(pkgerrors.NewNotFoundError("session"))

	svc := NewSessionService(sessions, nil, zap.NewNop())
	err := svc.EndSession(ctx, sessionID)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGetSession_Success(t *testing.T) {
	ctx := context.Background()
	sessions := new(mocks.MockSessionRepository)

	session, err := entities.NewFocusSession("bob", "alice", time.Now(), entities.DefaultDurationMinutes, "science")
	require.NoError(t, err)

	sessions.On("GetByID", ctx, session.ID()).Return(session, nil)

	svc := NewSessionService(sessions, nil, zap.NewNop())
	got, err := svc.GetSession(ctx, session.ID())

	require.NoError(t, err)
	assert.Equal(t, session.ID(), got.ID())
	assert.Equal(t, entities.DefaultDurationMinutes, got.DurationMinutes())
	assert.Equal(t, entities.SessionStatusActive, got.Status())
}

func TestGetSession_MalformedID(t *testing.T) {
	svc := NewSessionService(new(mocks.MockSessionRepository), nil, zap.NewNop())

	_, err := svc.GetSession(context.Background(), "bogus")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}
