package entities

import (
	"strings"
	"time"

	pkgerrors "focussync-backend/pkg/errors"
)

// UserProfile is a registered user of the service. Profiles are looked up by
// display name; queue entries and sessions reference users by name, not by id.
type UserProfile struct {
	name      string
	email     string
	avatar    string
	createdAt time.Time
	updatedAt time.Time
}

// NewUserProfile creates a profile for the given display name
func NewUserProfile(name, email, avatar string) (*UserProfile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.NewValidationError("name cannot be empty")
	}

	now := time.Now().UTC()
	return &UserProfile{
		name:      name,
		email:     email,
		avatar:    avatar,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUserProfile rebuilds a profile from repository data
func ReconstructUserProfile(name, email, avatar string, createdAt, updatedAt time.Time) *UserProfile {
	return &UserProfile{
		name:      name,
		email:     email,
		avatar:    avatar,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *UserProfile) Name() string         { return p.name }
func (p *UserProfile) Email() string        { return p.email }
func (p *UserProfile) Avatar() string       { return p.avatar }
func (p *UserProfile) CreatedAt() time.Time { return p.createdAt }
func (p *UserProfile) UpdatedAt() time.Time { return p.updatedAt }
