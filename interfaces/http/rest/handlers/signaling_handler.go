package handlers

import (
	"net/http"

	"focussync-backend/pkg/common"
)

// placeholderToken is returned until a real signaling provider (LiveKit,
// Daily, Twilio) is integrated
const placeholderToken = "demo-token"

// SignalingHandler issues signaling tokens for paired participants
type SignalingHandler struct{}

// NewSignalingHandler creates a signaling handler
func NewSignalingHandler() *SignalingHandler {
	return &SignalingHandler{}
}

// SignalingTokenResponse represents the token response
type SignalingTokenResponse struct {
	Token string `json:"token"`
}

// GetToken handles GET /signaling/token
func (h *SignalingHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, SignalingTokenResponse{Token: placeholderToken})
}
