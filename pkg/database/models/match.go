package models

import (
	"time"
)

// Match is one imported custom game.
// Rows are created by the desktop sync tool and never mutated afterwards.
type Match struct {
	MatchId         int64     `gorm:"primaryKey;autoIncrement:false"`
	PlatformId      string    `gorm:"type:varchar(10)"`
	GameCreation    time.Time `gorm:"index"`
	Duration        int
	GameMode        *string `gorm:"type:varchar(20)"`
	GameType        *string `gorm:"type:varchar(20)"`
	QueueId         *int
	MapId           *int
	Patch           *string `gorm:"type:varchar(20)"`
	SeasonId        *int
	EndOfGameResult *string `gorm:"type:varchar(30)"`

	CreatedAt time.Time
}

// MatchParticipant is one player seat in one match.
// The stat columns are nullable: the client occasionally omits fields, and a
// missing stat is not the same thing as a zero.
type MatchParticipant struct {
	ID      uint64 `gorm:"primaryKey"`
	MatchId int64  `gorm:"not null;index:idx_match_puuid,unique"`
	Puuid   string `gorm:"not null;index:idx_match_puuid,unique;type:char(78)"`

	Match  Match  `gorm:"foreignKey:MatchId;references:MatchId"`
	Player Player `gorm:"foreignKey:Puuid;references:Puuid"`

	ParticipantId *int `gorm:"index"`
	TeamId        *int
	Win           *bool

	ChampionId *int
	ChampLevel *int

	Kills   *int
	Deaths  *int
	Assists *int

	DoubleKills *int
	TripleKills *int
	QuadraKills *int
	PentaKills  *int

	GoldEarned *int
	GoldSpent  *int

	TotalMinionsKilled   *int
	NeutralMinionsKilled *int

	TotalDamageDealtToChampions *int
	TotalDamageTaken            *int
	TotalHeal                   *int

	VisionScore     *int
	TimeCcingOthers *int

	TurretKills    *int
	InhibitorKills *int

	// Computed upstream when the match is imported.
	OpScore *float64
	IsMvp   bool `gorm:"default:false"`
	IsAce   bool `gorm:"default:false"`
}

// MatchKill is one champion kill event, keyed by per-match seat numbers.
// The table is populated from the match timeline and may legitimately not
// exist on older deployments; readers must tolerate its absence.
type MatchKill struct {
	ID                  uint64 `gorm:"primaryKey"`
	MatchId             int64  `gorm:"not null;index"`
	KillerParticipantId int    `gorm:"not null"`
	VictimParticipantId int    `gorm:"not null"`
	GameTimestamp       *int64
}

// TableName keeps the relation name the sync tool writes to.
func (MatchKill) TableName() string {
	return "match_kills"
}
