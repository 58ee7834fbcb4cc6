package handlers

import (
	"net/http"

	"focussync-backend/application/services"
	"focussync-backend/domain/core/entities"
	"focussync-backend/pkg/common"
	pkgerrors "focussync-backend/pkg/errors"
	"focussync-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	profiles *services.ProfileService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(profiles *services.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		errors:   pkgerrors.NewErrorHandler(logger),
		logger:   logger,
	}
}

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// CreateProfile handles POST /profiles
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	profile, err := h.profiles.CreateProfile(r.Context(), req.Name, req.Email, req.Avatar)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, toProfileResponse(profile))
}

// GetProfile handles GET /profiles/{name}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	profile, err := h.profiles.GetProfile(r.Context(), name)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		Name:   profile.Name(),
		Email:  profile.Email(),
		Avatar: profile.Avatar(),
	}
}
