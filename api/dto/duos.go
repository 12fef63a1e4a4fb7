package dto

// DuoPartner is a teammate with how many shared games fall under the
// respective list.
type DuoPartner struct {
	Puuid  string      `json:"puuid"`
	Player *PlayerInfo `json:"player"`
	Count  int         `json:"count"`
}

// KillRival is the single top opponent of a kill relation.
type KillRival struct {
	Puuid  string      `json:"puuid"`
	Player *PlayerInfo `json:"player"`
	Count  int         `json:"count"`
}

// PlayerDuos is the full duo and rivalry summary of one player.
// MostKilled and MostlyKilledBy are null when the kill data is missing on
// the deployment or the player has no kill involvement.
type PlayerDuos struct {
	Puuid  string      `json:"puuid"`
	Player *PlayerInfo `json:"player"`

	MostGamesWith  []*DuoPartner `json:"mostGamesWith"`
	MostWinsWith   []*DuoPartner `json:"mostWinsWith"`
	MostLossesWith []*DuoPartner `json:"mostLossesWith"`

	MostKilled     *KillRival `json:"mostKilled"`
	MostlyKilledBy *KillRival `json:"mostlyKilledBy"`
}
