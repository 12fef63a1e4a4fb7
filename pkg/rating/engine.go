package rating

import (
	"riftrank/pkg/database/models"
	"slices"
	"time"
)

const (
	participantsPerMatch = 10
	participantsPerTeam  = 5
)

// Logger is the minimal logging surface the engine needs.
// The job logger from pkg/logger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// MatchHistory is one match with its full participant list, as loaded from
// the participant store.
type MatchHistory struct {
	MatchId      int64
	GameCreation time.Time
	Participants []models.MatchParticipant
}

// HistoryEntry is the rating of one player right after one match.
type HistoryEntry struct {
	Puuid       string
	MatchId     int64
	RatingAfter float64
}

// runningAvg accumulates one stat with SQL AVG semantics: a missing sample
// is excluded from both the numerator and the denominator.
type runningAvg struct {
	sum   float64
	count int
}

func (r *runningAvg) add(value float64) {
	r.sum += value
	r.count++
}

func (r *runningAvg) addInt(value *int) {
	if value == nil {
		return
	}
	r.add(float64(*value))
}

// average returns nil until the stat has at least one sample.
func (r *runningAvg) average() *float64 {
	if r.count == 0 {
		return nil
	}
	avg := r.sum / float64(r.count)
	return &avg
}

// Aggregate is the in-progress rating record of one player.
type Aggregate struct {
	Puuid  string
	Rating *float64

	Wins   int
	Losses int

	WinStreak  int
	LoseStreak int
	BestStreak int

	MvpGames         int
	AceGames         int
	TotalPentaKills  int
	TotalQuadraKills int
	TotalTripleKills int

	kills             runningAvg
	deaths            runningAvg
	assists           runningAvg
	cs                runningAvg
	goldEarned        runningAvg
	goldSpent         runningAvg
	damageToChampions runningAvg
	damageTaken       runningAvg
	heal              runningAvg
	visionScore       runningAvg
	ccTime            runningAvg
	turretKills       runningAvg
	neutralMinions    runningAvg
	champLevel        runningAvg
	opScore           runningAvg
	kda               runningAvg
}

// Matches returns how many matches were counted for the player.
func (a *Aggregate) Matches() int {
	return a.Wins + a.Losses
}

// ToModel converts the aggregate into the persisted rating row.
func (a *Aggregate) ToModel(now time.Time) *models.PlayerRating {
	return &models.PlayerRating{
		Puuid:                a.Puuid,
		Rating:               a.Rating,
		Wins:                 a.Wins,
		Losses:               a.Losses,
		WinStreak:            a.WinStreak,
		LoseStreak:           a.LoseStreak,
		BestStreak:           a.BestStreak,
		AvgKills:             a.kills.average(),
		AvgDeaths:            a.deaths.average(),
		AvgAssists:           a.assists.average(),
		AvgCs:                a.cs.average(),
		AvgGoldEarned:        a.goldEarned.average(),
		AvgGoldSpent:         a.goldSpent.average(),
		AvgDamageToChampions: a.damageToChampions.average(),
		AvgDamageTaken:       a.damageTaken.average(),
		AvgHeal:              a.heal.average(),
		AvgVisionScore:       a.visionScore.average(),
		AvgCcTime:            a.ccTime.average(),
		AvgTurretKills:       a.turretKills.average(),
		AvgNeutralMinions:    a.neutralMinions.average(),
		AvgChampLevel:        a.champLevel.average(),
		AvgOpScore:           a.opScore.average(),
		AvgKda:               a.kda.average(),
		MvpGames:             a.MvpGames,
		AceGames:             a.AceGames,
		TotalPentaKills:      a.TotalPentaKills,
		TotalQuadraKills:     a.TotalQuadraKills,
		TotalTripleKills:     a.TotalTripleKills,
		UpdatedAt:            now,
	}
}

// Result is the output of a full replay.
type Result struct {
	Aggregates map[string]*Aggregate
	History    []HistoryEntry

	SkippedMatches      int
	SkippedParticipants int
}

// Engine replays the immutable match history into per player aggregates.
type Engine struct {
	policy Policy
	logger Logger
}

// NewEngine creates an engine with the given policy.
// A nil policy falls back to the default Elo policy.
func NewEngine(policy Policy, logger Logger) *Engine {
	if policy == nil {
		policy = NewEloPolicy()
	}
	return &Engine{
		policy: policy,
		logger: logger,
	}
}

// ComputeAggregates replays every match in chronological order and returns
// the final aggregate per player plus the rating history.
// The replay is deterministic: matches are ordered by game creation with the
// match id as tiebreak, so repeated runs over the same history produce
// identical output.
func (e *Engine) ComputeAggregates(matches []MatchHistory) *Result {
	sorted := make([]MatchHistory, len(matches))
	copy(sorted, matches)
	slices.SortStableFunc(sorted, func(a, b MatchHistory) int {
		if c := a.GameCreation.Compare(b.GameCreation); c != 0 {
			return c
		}
		if a.MatchId < b.MatchId {
			return -1
		}
		if a.MatchId > b.MatchId {
			return 1
		}
		return 0
	})

	result := &Result{
		Aggregates: make(map[string]*Aggregate),
	}

	for _, match := range sorted {
		e.applyMatch(match, result)
	}

	return result
}

// applyMatch folds one match into the running aggregates.
func (e *Engine) applyMatch(match MatchHistory, result *Result) {
	if !e.validMatch(match) {
		result.SkippedMatches++
		return
	}

	// Snapshot the ratings before the match, so every participant is judged
	// against the opponents' pre-match strength.
	teamRatings := make(map[int][]float64, 2)
	for _, part := range match.Participants {
		teamRatings[*part.TeamId] = append(teamRatings[*part.TeamId], e.currentRating(result.Aggregates[part.Puuid]))
	}

	teamAverages := make(map[int]float64, 2)
	for teamId, ratings := range teamRatings {
		total := 0.0
		for _, r := range ratings {
			total += r
		}
		teamAverages[teamId] = total / float64(len(ratings))
	}

	for _, part := range match.Participants {
		if part.Win == nil {
			// One bad row never poisons the rest of the replay.
			result.SkippedParticipants++
			if e.logger != nil {
				e.logger.Errorf("match %d: participant %s has no win flag, skipping", match.MatchId, part.Puuid)
			}
			continue
		}

		agg := result.Aggregates[part.Puuid]
		if agg == nil {
			agg = &Aggregate{Puuid: part.Puuid}
			result.Aggregates[part.Puuid] = agg
		}

		e.applyParticipant(agg, part)

		// Rating update against the enemy team average.
		opponentAvg := e.policy.Initial()
		for teamId, avg := range teamAverages {
			if teamId != *part.TeamId {
				opponentAvg = avg
			}
		}

		current := e.currentRating(agg)
		updated := e.policy.Update(current, opponentAvg, *part.Win)
		agg.Rating = &updated

		result.History = append(result.History, HistoryEntry{
			Puuid:       part.Puuid,
			MatchId:     match.MatchId,
			RatingAfter: updated,
		})
	}
}

// validMatch applies the defensive participant gate: exactly 10 rows, 5 per
// team. Ingestion should never let anything else through.
func (e *Engine) validMatch(match MatchHistory) bool {
	if len(match.Participants) != participantsPerMatch {
		if e.logger != nil {
			e.logger.Errorf("match %d: expected %d participants, got %d, skipping", match.MatchId, participantsPerMatch, len(match.Participants))
		}
		return false
	}

	teamCounts := make(map[int]int, 2)
	for _, part := range match.Participants {
		if part.TeamId == nil {
			if e.logger != nil {
				e.logger.Errorf("match %d: participant %s has no team, skipping match", match.MatchId, part.Puuid)
			}
			return false
		}
		teamCounts[*part.TeamId]++
	}

	if len(teamCounts) != 2 {
		return false
	}
	for _, count := range teamCounts {
		if count != participantsPerTeam {
			return false
		}
	}

	return true
}

// currentRating returns the pre-match rating, falling back to the policy's
// initial value for unrated players.
func (e *Engine) currentRating(agg *Aggregate) float64 {
	if agg == nil || agg.Rating == nil {
		return e.policy.Initial()
	}
	return *agg.Rating
}

// applyParticipant folds the outcome, streaks, averages and counters of one
// row into the player aggregate. The caller already checked Win.
func (e *Engine) applyParticipant(agg *Aggregate, part models.MatchParticipant) {
	if *part.Win {
		agg.Wins++
		agg.WinStreak++
		agg.LoseStreak = 0
		agg.BestStreak = max(agg.BestStreak, agg.WinStreak)
	} else {
		agg.Losses++
		agg.LoseStreak++
		agg.WinStreak = 0
	}

	agg.kills.addInt(part.Kills)
	agg.deaths.addInt(part.Deaths)
	agg.assists.addInt(part.Assists)
	agg.goldEarned.addInt(part.GoldEarned)
	agg.goldSpent.addInt(part.GoldSpent)
	agg.damageToChampions.addInt(part.TotalDamageDealtToChampions)
	agg.damageTaken.addInt(part.TotalDamageTaken)
	agg.heal.addInt(part.TotalHeal)
	agg.visionScore.addInt(part.VisionScore)
	agg.ccTime.addInt(part.TimeCcingOthers)
	agg.turretKills.addInt(part.TurretKills)
	agg.neutralMinions.addInt(part.NeutralMinionsKilled)
	agg.champLevel.addInt(part.ChampLevel)

	// CS needs both columns, matching SQL addition of nullable columns.
	if part.TotalMinionsKilled != nil && part.NeutralMinionsKilled != nil {
		agg.cs.add(float64(*part.TotalMinionsKilled + *part.NeutralMinionsKilled))
	}

	if part.OpScore != nil {
		agg.opScore.add(*part.OpScore)
	}

	// Per match KDA counts a deathless game as one death, so a "perfect"
	// game contributes kills+assists instead of infinity.
	if part.Kills != nil && part.Deaths != nil && part.Assists != nil {
		agg.kda.add(float64(*part.Kills+*part.Assists) / float64(max(*part.Deaths, 1)))
	}

	if part.IsMvp {
		agg.MvpGames++
	}
	if part.IsAce {
		agg.AceGames++
	}
	if part.PentaKills != nil {
		agg.TotalPentaKills += *part.PentaKills
	}
	if part.QuadraKills != nil {
		agg.TotalQuadraKills += *part.QuadraKills
	}
	if part.TripleKills != nil {
		agg.TotalTripleKills += *part.TripleKills
	}
}
