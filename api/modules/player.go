package modules

import (
	"riftrank/api/handlers"
	playerservice "riftrank/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	// Initialize the player service and handler.
	playerDeps := &playerservice.PlayerServiceDeps{
		DB: deps.DB,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
