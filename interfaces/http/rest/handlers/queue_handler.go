package handlers

import (
	"net/http"

	"focussync-backend/application/services"
	"focussync-backend/pkg/common"
	pkgerrors "focussync-backend/pkg/errors"
	"focussync-backend/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// QueueHandler handles matchmaking queue HTTP requests
type QueueHandler struct {
	matchmaking *services.MatchmakingService
	errors      *pkgerrors.ErrorHandler
	logger      *zap.Logger
}

// NewQueueHandler creates a queue handler
func NewQueueHandler(matchmaking *services.MatchmakingService, logger *zap.Logger) *QueueHandler {
	return &QueueHandler{
		matchmaking: matchmaking,
		errors:      pkgerrors.NewErrorHandler(logger),
		logger:      logger,
	}
}

// JoinQueueRequest represents the request body for joining the queue
type JoinQueueRequest struct {
	UserName   string `json:"user_name" validate:"required,min=1,max=100"`
	FocusTopic string `json:"focus_topic,omitempty" validate:"omitempty,max=200"`
	Timezone   string `json:"timezone,omitempty" validate:"omitempty,max=64"`
}

// JoinQueue handles POST /queue/join
func (h *QueueHandler) JoinQueue(w http.ResponseWriter, r *http.Request) {
	var req JoinQueueRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.matchmaking.JoinQueue(r.Context(), req.UserName, req.FocusTopic, req.Timezone)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
