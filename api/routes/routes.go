package routes

import (
	"riftrank/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.LeaderboardHandler:
			r.registerLeaderboardHandler(handler)
		case *handlers.HallOfFameHandler:
			r.registerHallOfFameHandler(handler)
		case *handlers.DuoHandler:
			r.registerDuoHandler(handler)
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		}
	}
}

// Register the leaderboard handler.
func (r *Router) registerLeaderboardHandler(handler *handlers.LeaderboardHandler) {
	leaderboard := r.api.Group("/leaderboard")
	{
		leaderboard.GET("", handler.GetLeaderboard)
	}
}

// Register the hall of fame handler.
func (r *Router) registerHallOfFameHandler(handler *handlers.HallOfFameHandler) {
	hallOfFame := r.api.Group("/halloffame")
	{
		hallOfFame.GET("", handler.GetHallOfFame)
	}
}

// Register the duos handler.
func (r *Router) registerDuoHandler(handler *handlers.DuoHandler) {
	duos := r.api.Group("/duos")
	{
		duos.GET("", handler.GetDuos)
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/players")
	{
		players.GET("/:puuid/rating", handler.GetRating)
		players.GET("/:puuid/rating/history", handler.GetRatingHistory)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
