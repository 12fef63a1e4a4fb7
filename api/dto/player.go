package dto

import (
	"riftrank/pkg/database/models"
	"time"
)

// PlayerInfo is the public profile of a player, attached to most responses.
type PlayerInfo struct {
	Puuid       string  `json:"puuid"`
	GameName    *string `json:"gameName"`
	TagLine     *string `json:"tagLine"`
	ProfileIcon *int    `json:"profileIconId"`
	PlatformId  *string `json:"platformId"`
}

// NewPlayerInfo converts the player model into its DTO.
func NewPlayerInfo(player *models.Player) *PlayerInfo {
	if player == nil {
		return nil
	}

	return &PlayerInfo{
		Puuid:       player.Puuid,
		GameName:    player.GameName,
		TagLine:     player.TagLine,
		ProfileIcon: player.ProfileIcon,
		PlatformId:  player.PlatformId,
	}
}

// PlayerRatingDetail is the full rating row of a single player.
type PlayerRatingDetail struct {
	Puuid  string      `json:"puuid"`
	Player *PlayerInfo `json:"player"`

	Rating     *float64 `json:"rating"`
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	WinStreak  int      `json:"winStreak"`
	LoseStreak int      `json:"loseStreak"`
	BestStreak int      `json:"bestStreak"`

	AvgKills             *float64 `json:"avgKills"`
	AvgDeaths            *float64 `json:"avgDeaths"`
	AvgAssists           *float64 `json:"avgAssists"`
	AvgCs                *float64 `json:"avgCs"`
	AvgGoldEarned        *float64 `json:"avgGoldEarned"`
	AvgGoldSpent         *float64 `json:"avgGoldSpent"`
	AvgDamageToChampions *float64 `json:"avgDamageToChampions"`
	AvgDamageTaken       *float64 `json:"avgDamageTaken"`
	AvgHeal              *float64 `json:"avgHeal"`
	AvgVisionScore       *float64 `json:"avgVisionScore"`
	AvgCcTime            *float64 `json:"avgCcTime"`
	AvgTurretKills       *float64 `json:"avgTurretKills"`
	AvgNeutralMinions    *float64 `json:"avgNeutralMinions"`
	AvgChampLevel        *float64 `json:"avgChampLevel"`
	AvgOpScore           *float64 `json:"avgOpScore"`
	AvgKda               *float64 `json:"avgKda"`

	MvpGames         int `json:"mvpGames"`
	AceGames         int `json:"aceGames"`
	TotalPentaKills  int `json:"totalPentaKills"`
	TotalQuadraKills int `json:"totalQuadraKills"`
	TotalTripleKills int `json:"totalTripleKills"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPlayerRatingDetail converts the rating model and its player profile
// into the detail DTO.
func NewPlayerRatingDetail(rating *models.PlayerRating, player *models.Player) *PlayerRatingDetail {
	return &PlayerRatingDetail{
		Puuid:                rating.Puuid,
		Player:               NewPlayerInfo(player),
		Rating:               rating.Rating,
		Wins:                 rating.Wins,
		Losses:               rating.Losses,
		WinStreak:            rating.WinStreak,
		LoseStreak:           rating.LoseStreak,
		BestStreak:           rating.BestStreak,
		AvgKills:             rating.AvgKills,
		AvgDeaths:            rating.AvgDeaths,
		AvgAssists:           rating.AvgAssists,
		AvgCs:                rating.AvgCs,
		AvgGoldEarned:        rating.AvgGoldEarned,
		AvgGoldSpent:         rating.AvgGoldSpent,
		AvgDamageToChampions: rating.AvgDamageToChampions,
		AvgDamageTaken:       rating.AvgDamageTaken,
		AvgHeal:              rating.AvgHeal,
		AvgVisionScore:       rating.AvgVisionScore,
		AvgCcTime:            rating.AvgCcTime,
		AvgTurretKills:       rating.AvgTurretKills,
		AvgNeutralMinions:    rating.AvgNeutralMinions,
		AvgChampLevel:        rating.AvgChampLevel,
		AvgOpScore:           rating.AvgOpScore,
		AvgKda:               rating.AvgKda,
		MvpGames:             rating.MvpGames,
		AceGames:             rating.AceGames,
		TotalPentaKills:      rating.TotalPentaKills,
		TotalQuadraKills:     rating.TotalQuadraKills,
		TotalTripleKills:     rating.TotalTripleKills,
		UpdatedAt:            rating.UpdatedAt,
	}
}

// RatingHistoryEntry is a single point of a player rating timeline.
type RatingHistoryEntry struct {
	MatchId     int64     `json:"matchId"`
	RatingAfter float64   `json:"ratingAfter"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRatingHistory converts the history models into their DTOs.
func NewRatingHistory(entries []models.RatingHistory) []*RatingHistoryEntry {
	result := make([]*RatingHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, &RatingHistoryEntry{
			MatchId:     entry.MatchId,
			RatingAfter: entry.RatingAfter,
			CreatedAt:   entry.CreatedAt,
		})
	}
	return result
}
