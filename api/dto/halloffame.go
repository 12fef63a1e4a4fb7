package dto

// HallOfFameEntry is the current holder of one title.
// The zero-counter titles carry a value of 0, where holding the title is the
// whole statement.
type HallOfFameEntry struct {
	GameName    *string  `json:"gameName"`
	TagLine     *string  `json:"tagLine"`
	ProfileIcon *int     `json:"profileIconId"`
	Value       *float64 `json:"value"`
}

// HallOfFame maps every title id to its holder, or null when no player
// qualifies for the title yet.
type HallOfFame map[string]*HallOfFameEntry
