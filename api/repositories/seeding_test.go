package repositories

import (
	"testing"
	"time"

	"riftrank/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var fixedDate = time.Date(2025, 2, 1, 20, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

// testPuuid pads a short readable id to the fixed puuid width.
func testPuuid(id string) string {
	padded := id
	for len(padded) < 78 {
		padded += "x"
	}
	return padded
}

func seedPlayers(t *testing.T, db *gorm.DB, ids ...string) {
	t.Helper()

	for _, id := range ids {
		player := &models.Player{
			Puuid:    testPuuid(id),
			GameName: strPtr("Player " + id),
			TagLine:  strPtr("BR1"),
		}
		if err := db.Create(player).Error; err != nil {
			t.Fatalf("Failed to seed player %s: %v", id, err)
		}
	}
}

func seedRating(t *testing.T, db *gorm.DB, rating *models.PlayerRating) {
	t.Helper()

	rating.UpdatedAt = fixedDate
	if err := db.Omit(clause.Associations).Create(rating).Error; err != nil {
		t.Fatalf("Failed to seed rating for %s: %v", rating.Puuid, err)
	}
}

func seedMatch(t *testing.T, db *gorm.DB, matchId int64, participants []models.MatchParticipant) {
	t.Helper()

	match := &models.Match{
		MatchId:      matchId,
		PlatformId:   "BR1",
		GameCreation: fixedDate.Add(time.Duration(matchId) * time.Hour),
		Duration:     1800,
		GameType:     strPtr("CUSTOM_GAME"),
	}
	if err := db.Omit(clause.Associations).Create(match).Error; err != nil {
		t.Fatalf("Failed to seed match %d: %v", matchId, err)
	}

	for i := range participants {
		participants[i].MatchId = matchId
		if err := db.Omit(clause.Associations).Create(&participants[i]).Error; err != nil {
			t.Fatalf("Failed to seed participant %s of match %d: %v", participants[i].Puuid, matchId, err)
		}
	}
}

// createKillTable creates the optional match_kills table, which the base
// migrations leave out on purpose.
func createKillTable(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.Exec(`
	CREATE TABLE match_kills (
		id BIGSERIAL PRIMARY KEY,
		match_id BIGINT NOT NULL,
		killer_participant_id INTEGER NOT NULL,
		victim_participant_id INTEGER NOT NULL,
		game_timestamp BIGINT
	)`).Error
	if err != nil {
		t.Fatalf("Failed to create the kill table: %v", err)
	}
}

func seedKill(t *testing.T, db *gorm.DB, matchId int64, killerSeat, victimSeat int) {
	t.Helper()

	kill := &models.MatchKill{
		MatchId:             matchId,
		KillerParticipantId: killerSeat,
		VictimParticipantId: victimSeat,
	}
	if err := db.Create(kill).Error; err != nil {
		t.Fatalf("Failed to seed kill on match %d: %v", matchId, err)
	}
}
