package handlers

import (
	"net/http"
	"time"

	"focussync-backend/application/services"
	"focussync-backend/domain/core/entities"
	"focussync-backend/pkg/common"
	pkgerrors "focussync-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionHandler handles session lifecycle HTTP requests
type SessionHandler struct {
	sessions *services.SessionService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewSessionHandler creates a session handler
func NewSessionHandler(sessions *services.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		errors:   pkgerrors.NewErrorHandler(logger),
		logger:   logger,
	}
}

// EndSessionRequest represents the request body for ending a session
type EndSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// EndSessionResponse acknowledges a completed end-session request
type EndSessionResponse struct {
	OK bool `json:"ok"`
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID               string   `json:"id"`
	ParticipantNames []string `json:"participant_names"`
	StartedAt        string   `json:"started_at"`
	DurationMinutes  int      `json:"duration_minutes"`
	Status           string   `json:"status"`
	FocusTopic       string   `json:"focus_topic,omitempty"`
	UpdatedAt        string   `json:"updated_at"`
}

// EndSession handles POST /session/end
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	var req EndSessionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if req.SessionID == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("session_id is required"))
		return
	}

	if err := h.sessions.EndSession(r.Context(), req.SessionID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, EndSessionResponse{OK: true})
}

// GetSession handles GET /session/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, toSessionResponse(session))
}

func toSessionResponse(session *entities.FocusSession) SessionResponse {
	return SessionResponse{
		ID:               session.ID(),
		ParticipantNames: session.ParticipantNames(),
		StartedAt:        session.StartedAt().Format(time.RFC3339),
		DurationMinutes:  session.DurationMinutes(),
		Status:           string(session.Status()),
		FocusTopic:       session.FocusTopic(),
		UpdatedAt:        session.UpdatedAt().Format(time.RFC3339),
	}
}
