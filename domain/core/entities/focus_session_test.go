package entities

import (
	"testing"
	"time"

	pkgerrors "focussync-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFocusSession_Success(t *testing.T) {
	startedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	session, err := NewFocusSession("bob", "alice", startedAt, DefaultDurationMinutes, "science")

	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, session.ParticipantNames())
	assert.Equal(t, startedAt, session.StartedAt())
	assert.Equal(t, 50, session.DurationMinutes())
	assert.Equal(t, SessionStatusActive, session.Status())
	assert.Equal(t, "science", session.FocusTopic())
	assert.True(t, session.IsActive())
	assert.NotEmpty(t, session.ID())
}

func TestNewFocusSession_EmptyParticipant(t *testing.T) {
	_, err := NewFocusSession("", "alice", time.Now(), DefaultDurationMinutes, "")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewFocusSession_SameParticipant(t *testing.T) {
	_, err := NewFocusSession("alice", "alice", time.Now(), DefaultDurationMinutes, "")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewFocusSession_DurationBounds(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		wantErr  bool
	}{
		{"below minimum", 14, true},
		{"at minimum", 15, false},
		{"default", 50, false},
		{"at maximum", 120, false},
		{"above maximum", 121, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFocusSession("bob", "alice", time.Now(), tt.duration, "")
			if tt.wantErr {
				assert.True(t, pkgerrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFocusSession_End(t *testing.T) {
	session, err := NewFocusSession("bob", "alice", time.Now(), DefaultDurationMinutes, "")
	require.NoError(t, err)

	endedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	session.End(endedAt)

	assert.Equal(t, SessionStatusEnded, session.Status())
	assert.Equal(t, endedAt, session.UpdatedAt())
	assert.False(t, session.IsActive())
}

func TestFocusSession_EndTwice(t *testing.T) {
	session, err := NewFocusSession("bob", "alice", time.Now(), DefaultDurationMinutes, "")
	require.NoError(t, err)

	session.End(time.Now())
	later := time.Now().Add(time.Minute)
	session.End(later)

	// Ending again overwrites, it does not reject
	assert.Equal(t, SessionStatusEnded, session.Status())
}

func TestFocusSession_Cancel(t *testing.T) {
	session, err := NewFocusSession("bob", "alice", time.Now(), DefaultDurationMinutes, "")
	require.NoError(t, err)

	session.Cancel(time.Now())

	assert.Equal(t, SessionStatusCancelled, session.Status())
	assert.False(t, session.IsActive())
}

func TestFocusSession_ParticipantNamesIsCopy(t *testing.T) {
	session, err := NewFocusSession("bob", "alice", time.Now(), DefaultDurationMinutes, "")
	require.NoError(t, err)

	names := session.ParticipantNames()
	names[0] = "mallory"

	assert.Equal(t, []string{"bob", "alice"}, session.ParticipantNames())
}
