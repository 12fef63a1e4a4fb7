package models

import (
	"time"
)

// Player is one known account, keyed by the PUUID used across every table.
type Player struct {
	Puuid       string  `gorm:"primaryKey;type:char(78)"`
	GameName    *string `gorm:"type:varchar(100);index:idx_name_tag"`
	TagLine     *string `gorm:"type:varchar(5);index:idx_name_tag"`
	ProfileIcon *int
	PlatformId  *string `gorm:"type:varchar(10)"`

	FirstSeenAt *time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	LastSeenAt  *time.Time
}
