package services

import (
	"context"

	"focussync-backend/application/ports"
	"focussync-backend/domain/core/entities"
	pkgerrors "focussync-backend/pkg/errors"

	"go.uber.org/zap"
)

// ProfileService manages user profiles
type ProfileService struct {
	profiles ports.ProfileRepository
	logger   *zap.Logger
}

// NewProfileService creates a profile service
func NewProfileService(profiles ports.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		logger:   logger,
	}
}

// CreateProfile stores a profile for the given display name
func (s *ProfileService) CreateProfile(ctx context.Context, name, email, avatar string) (*entities.UserProfile, error) {
	if s.profiles == nil {
		return nil, pkgerrors.NewUnavailableError("profile store")
	}

	profile, err := entities.NewUserProfile(name, email, avatar)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Created user profile", zap.String("name", profile.Name()))

	return profile, nil
}

// GetProfile fetches a profile by display name
func (s *ProfileService) GetProfile(ctx context.Context, name string) (*entities.UserProfile, error) {
	if s.profiles == nil {
		return nil, pkgerrors.NewUnavailableError("profile store")
	}

	if name == "" {
		return nil, pkgerrors.NewValidationError("name cannot be empty")
	}

	return s.profiles.GetByName(ctx, name)
}
