package di

import (
	"focussync-backend/application/ports"
	"focussync-backend/application/services"
	"focussync-backend/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       ports.StoreHealth
	Matchmaking *services.MatchmakingService
	Sessions    *services.SessionService
	Profiles    *services.ProfileService
}
