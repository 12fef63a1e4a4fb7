package modules

import (
	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/handlers"
	leaderboardservice "riftrank/api/services/leaderboard"
)

func initializeLeaderboardHandler(deps *ModuleDependencies) *handlers.LeaderboardHandler {
	// Initialize the leaderboard service and handler.
	leaderboardDeps := &leaderboardservice.LeaderboardServiceDeps{
		DB:       deps.DB,
		MemCache: cache.NewMemCache[[]*dto.LeaderboardEntry](),
		Redis:    deps.Redis,
	}

	leaderboardService := leaderboardservice.NewLeaderboardService(leaderboardDeps)

	leaderboardHandlerDeps := &handlers.LeaderboardHandlerDependencies{
		LeaderboardService: leaderboardService,
	}

	return handlers.NewLeaderboardHandler(leaderboardHandlerDeps)
}
