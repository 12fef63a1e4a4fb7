package rating

import (
	"testing"
	"time"

	"riftrank/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

// buildMatch creates a valid 10 participant match. Team 100 holds the
// players blueTeam, team 200 the players redTeam, and blueWins decides the
// outcome for both sides.
func buildMatch(matchId int64, offset time.Duration, blueTeam, redTeam [5]string, blueWins bool) MatchHistory {
	match := MatchHistory{
		MatchId:      matchId,
		GameCreation: baseTime.Add(offset),
	}

	seat := 1
	for _, puuid := range blueTeam {
		match.Participants = append(match.Participants, models.MatchParticipant{
			MatchId:       matchId,
			Puuid:         puuid,
			ParticipantId: intPtr(seat),
			TeamId:        intPtr(100),
			Win:           boolPtr(blueWins),
		})
		seat++
	}
	for _, puuid := range redTeam {
		match.Participants = append(match.Participants, models.MatchParticipant{
			MatchId:       matchId,
			Puuid:         puuid,
			ParticipantId: intPtr(seat),
			TeamId:        intPtr(200),
			Win:           boolPtr(!blueWins),
		})
		seat++
	}

	return match
}

var (
	blueTeam = [5]string{"p1", "p2", "p3", "p4", "p5"}
	redTeam  = [5]string{"p6", "p7", "p8", "p9", "p10"}
)

// buildSeries creates one match per outcome, all with the same rosters,
// where each outcome is whether p1's team won.
func buildSeries(outcomes []bool) []MatchHistory {
	matches := make([]MatchHistory, 0, len(outcomes))
	for i, win := range outcomes {
		matches = append(matches, buildMatch(int64(i+1), time.Duration(i)*time.Hour, blueTeam, redTeam, win))
	}
	return matches
}

// Test the streak walk over a fixed outcome sequence.
func TestStreakWalk(t *testing.T) {
	tests := []struct {
		name               string
		outcomes           []bool
		expectedWinStreak  int
		expectedLoseStreak int
		expectedBestStreak int
	}{
		{
			name:               "reference sequence",
			outcomes:           []bool{true, true, false, true, true, true, false},
			expectedWinStreak:  0,
			expectedLoseStreak: 1,
			expectedBestStreak: 3,
		},
		{
			name:               "open win streak",
			outcomes:           []bool{false, true, true},
			expectedWinStreak:  2,
			expectedLoseStreak: 0,
			expectedBestStreak: 2,
		},
		{
			name:               "all losses",
			outcomes:           []bool{false, false, false},
			expectedWinStreak:  0,
			expectedLoseStreak: 3,
			expectedBestStreak: 0,
		},
		{
			name:               "single win",
			outcomes:           []bool{true},
			expectedWinStreak:  1,
			expectedLoseStreak: 0,
			expectedBestStreak: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(nil, nil)
			result := engine.ComputeAggregates(buildSeries(tt.outcomes))

			agg := result.Aggregates["p1"]
			require.NotNil(t, agg)
			assert.Equal(t, tt.expectedWinStreak, agg.WinStreak)
			assert.Equal(t, tt.expectedLoseStreak, agg.LoseStreak)
			assert.Equal(t, tt.expectedBestStreak, agg.BestStreak)

			// The streak invariants must hold for every player.
			for _, playerAgg := range result.Aggregates {
				assert.True(t, playerAgg.WinStreak == 0 || playerAgg.LoseStreak == 0)
				assert.GreaterOrEqual(t, playerAgg.BestStreak, playerAgg.WinStreak)
			}
		})
	}
}

// Test that wins plus losses always equals the processed match count.
func TestWinLossCounts(t *testing.T) {
	outcomes := []bool{true, false, true, true, false}
	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates(buildSeries(outcomes))

	for puuid, agg := range result.Aggregates {
		assert.Equal(t, len(outcomes), agg.Matches(), "player %s", puuid)
	}

	p1 := result.Aggregates["p1"]
	assert.Equal(t, 3, p1.Wins)
	assert.Equal(t, 2, p1.Losses)

	// The enemy side mirrors the outcomes.
	p6 := result.Aggregates["p6"]
	assert.Equal(t, 2, p6.Wins)
	assert.Equal(t, 3, p6.Losses)
}

// Test the nullable stat conventions on the running averages.
func TestAverageConventions(t *testing.T) {
	match := buildMatch(1, 0, blueTeam, redTeam, true)

	// p1: full stat line with a deathless game.
	match.Participants[0].Kills = intPtr(10)
	match.Participants[0].Deaths = intPtr(0)
	match.Participants[0].Assists = intPtr(5)
	match.Participants[0].TotalMinionsKilled = intPtr(180)
	match.Participants[0].NeutralMinionsKilled = intPtr(20)
	match.Participants[0].OpScore = floatPtr(9.5)

	// p2: kills present but deaths missing, CS missing one column.
	match.Participants[1].Kills = intPtr(4)
	match.Participants[1].TotalMinionsKilled = intPtr(100)

	second := buildMatch(2, time.Hour, blueTeam, redTeam, false)
	second.Participants[0].Kills = intPtr(2)
	second.Participants[0].Deaths = intPtr(4)
	second.Participants[0].Assists = intPtr(8)

	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates([]MatchHistory{match, second})

	p1 := result.Aggregates["p1"].ToModel(baseTime)
	require.NotNil(t, p1.AvgKills)
	assert.InDelta(t, 6.0, *p1.AvgKills, 1e-9)

	// Deathless game counts one death: (10+5)/1 = 15, then (2+8)/4 = 2.5.
	require.NotNil(t, p1.AvgKda)
	assert.InDelta(t, 8.75, *p1.AvgKda, 1e-9)

	// CS was only complete in the first match.
	require.NotNil(t, p1.AvgCs)
	assert.InDelta(t, 200.0, *p1.AvgCs, 1e-9)

	require.NotNil(t, p1.AvgOpScore)
	assert.InDelta(t, 9.5, *p1.AvgOpScore, 1e-9)

	p2 := result.Aggregates["p2"].ToModel(baseTime)

	// A missing sample is excluded from the denominator, not coerced to zero.
	require.NotNil(t, p2.AvgKills)
	assert.InDelta(t, 4.0, *p2.AvgKills, 1e-9)
	assert.Nil(t, p2.AvgDeaths)
	assert.Nil(t, p2.AvgCs)
	assert.Nil(t, p2.AvgKda)

	// A player with no processed matches never gets an aggregate.
	assert.NotContains(t, result.Aggregates, "someone-else")
}

// Test the cumulative counters.
func TestCumulativeCounters(t *testing.T) {
	first := buildMatch(1, 0, blueTeam, redTeam, true)
	first.Participants[0].PentaKills = intPtr(1)
	first.Participants[0].TripleKills = intPtr(2)
	first.Participants[0].IsMvp = true

	second := buildMatch(2, time.Hour, blueTeam, redTeam, false)
	second.Participants[0].QuadraKills = intPtr(1)
	second.Participants[0].IsAce = true

	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates([]MatchHistory{first, second})

	p1 := result.Aggregates["p1"]
	assert.Equal(t, 1, p1.MvpGames)
	assert.Equal(t, 1, p1.AceGames)
	assert.Equal(t, 1, p1.TotalPentaKills)
	assert.Equal(t, 1, p1.TotalQuadraKills)
	assert.Equal(t, 2, p1.TotalTripleKills)
}

// Test that invalid matches are skipped without touching any aggregate.
func TestInvalidMatchesSkipped(t *testing.T) {
	short := buildMatch(1, 0, blueTeam, redTeam, true)
	short.Participants = short.Participants[:9]

	noTeam := buildMatch(2, time.Hour, blueTeam, redTeam, true)
	noTeam.Participants[3].TeamId = nil

	lopsided := buildMatch(3, 2*time.Hour, blueTeam, redTeam, true)
	lopsided.Participants[0].TeamId = intPtr(200)

	valid := buildMatch(4, 3*time.Hour, blueTeam, redTeam, true)

	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates([]MatchHistory{short, noTeam, lopsided, valid})

	assert.Equal(t, 3, result.SkippedMatches)
	for _, agg := range result.Aggregates {
		assert.Equal(t, 1, agg.Matches())
	}
}

// Test that a row without a win flag is dropped while the other nine rows of
// the match still count.
func TestMissingWinFlagSkipsOnlyTheRow(t *testing.T) {
	match := buildMatch(1, 0, blueTeam, redTeam, true)
	match.Participants[2].Win = nil

	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates([]MatchHistory{match})

	assert.Equal(t, 0, result.SkippedMatches)
	assert.Equal(t, 1, result.SkippedParticipants)
	assert.NotContains(t, result.Aggregates, "p3")
	assert.Len(t, result.Aggregates, 9)
}

// Test that the rating moves the right way for both sides.
func TestRatingMonotonicity(t *testing.T) {
	engine := NewEngine(nil, nil)
	result := engine.ComputeAggregates(buildSeries([]bool{true, true, false}))

	history := make(map[string][]float64)
	for _, entry := range result.History {
		history[entry.Puuid] = append(history[entry.Puuid], entry.RatingAfter)
	}

	p1 := history["p1"]
	require.Len(t, p1, 3)
	assert.Greater(t, p1[0], DefaultInitialRating)
	assert.Greater(t, p1[1], p1[0])
	assert.Less(t, p1[2], p1[1])

	p6 := history["p6"]
	require.Len(t, p6, 3)
	assert.Less(t, p6[0], DefaultInitialRating)
	assert.Less(t, p6[1], p6[0])
	assert.Greater(t, p6[2], p6[1])

	// The final aggregate carries the last history value.
	require.NotNil(t, result.Aggregates["p1"].Rating)
	assert.InDelta(t, p1[2], *result.Aggregates["p1"].Rating, 1e-9)
}

// Test that replaying the same history twice produces identical numbers,
// regardless of the input slice order.
func TestReplayDeterminism(t *testing.T) {
	matches := buildSeries([]bool{true, false, true, true, false, true})

	shuffled := []MatchHistory{matches[4], matches[1], matches[5], matches[0], matches[3], matches[2]}

	engine := NewEngine(nil, nil)
	first := engine.ComputeAggregates(matches)
	second := engine.ComputeAggregates(shuffled)

	require.Equal(t, len(first.Aggregates), len(second.Aggregates))
	for puuid, agg := range first.Aggregates {
		other := second.Aggregates[puuid]
		require.NotNil(t, other)

		assert.Equal(t, agg.Wins, other.Wins)
		assert.Equal(t, agg.Losses, other.Losses)
		assert.Equal(t, agg.WinStreak, other.WinStreak)
		assert.Equal(t, agg.BestStreak, other.BestStreak)

		require.NotNil(t, agg.Rating)
		require.NotNil(t, other.Rating)
		assert.InDelta(t, *agg.Rating, *other.Rating, 1e-9)
	}

	assert.Equal(t, first.History, second.History)
}
