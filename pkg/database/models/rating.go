package models

import (
	"time"
)

// PlayerRating is the single aggregate row per player, rebuilt by the
// recompute job from the immutable match history.
// Rating stays null until the player has a first qualifying match; every
// avg_* column stays null until that stat has at least one sample.
type PlayerRating struct {
	Puuid  string `gorm:"primaryKey;type:char(78)"`
	Player Player `gorm:"foreignKey:Puuid;references:Puuid"`

	Rating *float64 `gorm:"index"`
	Wins   int
	Losses int

	// At most one of the two current streaks is nonzero at any time.
	WinStreak  int
	LoseStreak int
	BestStreak int

	AvgKills             *float64
	AvgDeaths            *float64
	AvgAssists           *float64
	AvgCs                *float64
	AvgGoldEarned        *float64
	AvgGoldSpent         *float64
	AvgDamageToChampions *float64
	AvgDamageTaken       *float64
	AvgHeal              *float64
	AvgVisionScore       *float64
	AvgCcTime            *float64
	AvgTurretKills       *float64
	AvgNeutralMinions    *float64
	AvgChampLevel        *float64
	AvgOpScore           *float64
	AvgKda               *float64

	MvpGames         int
	AceGames         int
	TotalPentaKills  int
	TotalQuadraKills int
	TotalTripleKills int

	UpdatedAt time.Time
}

// TableName keeps the original relation name.
func (PlayerRating) TableName() string {
	return "ratings"
}

// RatingHistory is the rating value right after a given match was applied.
type RatingHistory struct {
	Puuid   string `gorm:"primaryKey;type:char(78)"`
	MatchId int64  `gorm:"primaryKey;autoIncrement:false"`

	RatingAfter float64
	CreatedAt   time.Time
}

// TableName keeps the original relation name.
func (RatingHistory) TableName() string {
	return "rating_history"
}
