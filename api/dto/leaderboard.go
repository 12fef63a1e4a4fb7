package dto

import (
	"riftrank/pkg/database/models"
	"time"
)

// LeaderboardEntry is one ladder row with the player profile attached.
type LeaderboardEntry struct {
	Puuid  string      `json:"puuid"`
	Player *PlayerInfo `json:"player"`

	Rating     *float64 `json:"rating"`
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	WinStreak  int      `json:"winStreak"`
	LoseStreak int      `json:"loseStreak"`
	BestStreak int      `json:"bestStreak"`

	AvgKills   *float64 `json:"avgKills"`
	AvgDeaths  *float64 `json:"avgDeaths"`
	AvgAssists *float64 `json:"avgAssists"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewLeaderboard joins the rating rows with their player profiles, keeping
// the rating order.
func NewLeaderboard(ratings []models.PlayerRating, players map[string]*models.Player) []*LeaderboardEntry {
	result := make([]*LeaderboardEntry, 0, len(ratings))
	for _, rating := range ratings {
		result = append(result, &LeaderboardEntry{
			Puuid:      rating.Puuid,
			Player:     NewPlayerInfo(players[rating.Puuid]),
			Rating:     rating.Rating,
			Wins:       rating.Wins,
			Losses:     rating.Losses,
			WinStreak:  rating.WinStreak,
			LoseStreak: rating.LoseStreak,
			BestStreak: rating.BestStreak,
			AvgKills:   rating.AvgKills,
			AvgDeaths:  rating.AvgDeaths,
			AvgAssists: rating.AvgAssists,
			UpdatedAt:  rating.UpdatedAt,
		})
	}
	return result
}
