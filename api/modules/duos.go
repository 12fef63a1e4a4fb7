package modules

import (
	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/handlers"
	duoservice "riftrank/api/services/duos"
)

func initializeDuoHandler(deps *ModuleDependencies) *handlers.DuoHandler {
	// Initialize the duo service and handler.
	duoDeps := &duoservice.DuoServiceDeps{
		DB:       deps.DB,
		MemCache: cache.NewMemCache[[]*dto.PlayerDuos](),
		Redis:    deps.Redis,
	}

	duoService := duoservice.NewDuoService(duoDeps)

	duoHandlerDeps := &handlers.DuoHandlerDependencies{
		DuoService: duoService,
	}

	return handlers.NewDuoHandler(duoHandlerDeps)
}
