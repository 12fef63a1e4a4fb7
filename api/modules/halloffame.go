package modules

import (
	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/handlers"
	halloffameservice "riftrank/api/services/halloffame"
)

func initializeHallOfFameHandler(deps *ModuleDependencies) *handlers.HallOfFameHandler {
	// Initialize the hall of fame service and handler.
	hallOfFameDeps := &halloffameservice.HallOfFameServiceDeps{
		DB:       deps.DB,
		MemCache: cache.NewMemCache[dto.HallOfFame](),
		Redis:    deps.Redis,
	}

	hallOfFameService := halloffameservice.NewHallOfFameService(hallOfFameDeps)

	hallOfFameHandlerDeps := &handlers.HallOfFameHandlerDependencies{
		HallOfFameService: hallOfFameService,
	}

	return handlers.NewHallOfFameHandler(hallOfFameHandlerDeps)
}
