package modules

import (
	"riftrank/api/handlers"
	"riftrank/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router             *gin.Engine
	LeaderboardHandler *handlers.LeaderboardHandler
	HallOfFameHandler  *handlers.HallOfFameHandler
	DuoHandler         *handlers.DuoHandler
	PlayerHandler      *handlers.PlayerHandler
}

// ModuleDependencies are the shared dependencies of every handler.
type ModuleDependencies struct {
	DB    *gorm.DB
	Redis *redis.RedisClient
}

// NewModule creates a new module with all the necessary handlers
// initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:             router,
		LeaderboardHandler: initializeLeaderboardHandler(deps),
		HallOfFameHandler:  initializeHallOfFameHandler(deps),
		DuoHandler:         initializeDuoHandler(deps),
		PlayerHandler:      initializePlayerHandler(deps),
	}
}
