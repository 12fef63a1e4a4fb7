package repositories

import (
	"context"
	"errors"
	"fmt"
	"riftrank/pkg/database/models"

	"gorm.io/gorm"
)

// ErrUnknownColumn is returned when a title points at a column that is not
// part of the ratings table allowlist.
var ErrUnknownColumn = errors.New("unknown rating column")

// rankableColumns is the allowlist of ratings columns that title queries may
// order by. The column name is interpolated into the query, so everything
// outside this set is rejected.
var rankableColumns = map[string]bool{
	"rating":                  true,
	"wins":                    true,
	"losses":                  true,
	"win_streak":              true,
	"lose_streak":             true,
	"best_streak":             true,
	"avg_kills":               true,
	"avg_deaths":              true,
	"avg_assists":             true,
	"avg_cs":                  true,
	"avg_gold_earned":         true,
	"avg_gold_spent":          true,
	"avg_damage_to_champions": true,
	"avg_damage_taken":        true,
	"avg_heal":                true,
	"avg_vision_score":        true,
	"avg_cc_time":             true,
	"avg_turret_kills":        true,
	"avg_neutral_minions":     true,
	"avg_champ_level":         true,
	"avg_op_score":            true,
	"avg_kda":                 true,
	"mvp_games":               true,
	"ace_games":               true,
	"total_penta_kills":       true,
	"total_quadra_kills":      true,
	"total_triple_kills":      true,
}

// RatingLeader is the top player of one ordered title query.
type RatingLeader struct {
	Puuid string
	Value float64
}

// RatingRepository is the public interface for accessing the ratings table.
type RatingRepository interface {
	GetLeaderboard(ctx context.Context, limit int) ([]models.PlayerRating, error)
	GetByPuuid(ctx context.Context, puuid string) (*models.PlayerRating, error)
	GetRatingHistory(ctx context.Context, puuid string, limit int) ([]models.RatingHistory, error)
	TopByColumn(ctx context.Context, column string, ascending bool) (*RatingLeader, error)
	WorstWinRate(ctx context.Context, minGames int) (*RatingLeader, error)
	TopWithZeroCounter(ctx context.Context, counterColumn string) (string, error)
}

// ratingRepository repository structure.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a rating repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// GetLeaderboard returns the rated players ordered by rating.
// Unrated players (null rating) never show up on the ladder.
func (rs *ratingRepository) GetLeaderboard(ctx context.Context, limit int) ([]models.PlayerRating, error) {
	var ratings []models.PlayerRating

	err := rs.db.WithContext(ctx).
		Where("rating IS NOT NULL").
		Order("rating DESC, puuid ASC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// GetByPuuid returns the rating row of a single player.
// A missing row is returned as (nil, nil).
func (rs *ratingRepository) GetByPuuid(ctx context.Context, puuid string) (*models.PlayerRating, error) {
	var rating models.PlayerRating

	err := rs.db.WithContext(ctx).
		Where("puuid = ?", puuid).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &rating, nil
}

// GetRatingHistory returns the most recent rating points of a player, newest
// first.
func (rs *ratingRepository) GetRatingHistory(ctx context.Context, puuid string, limit int) ([]models.RatingHistory, error) {
	var history []models.RatingHistory

	err := rs.db.WithContext(ctx).
		Where("puuid = ?", puuid).
		Order("match_id DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	return history, nil
}

// TopByColumn returns the player leading the given column, ignoring null
// values. The puuid breaks ties so repeated calls return the same holder.
func (rs *ratingRepository) TopByColumn(ctx context.Context, column string, ascending bool) (*RatingLeader, error) {
	if !rankableColumns[column] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var leaders []RatingLeader
	query := fmt.Sprintf(`
	SELECT
		puuid,
		%s AS value
	FROM
		ratings
	WHERE
		%s IS NOT NULL
	ORDER BY value %s, puuid ASC
	LIMIT 1
	`, column, column, direction)

	err := rs.db.WithContext(ctx).Raw(query).Scan(&leaders).Error
	if err != nil {
		return nil, err
	}
	if len(leaders) == 0 {
		return nil, nil
	}

	return &leaders[0], nil
}

// WorstWinRate returns the player with the lowest win rate among players
// with at least minGames games.
func (rs *ratingRepository) WorstWinRate(ctx context.Context, minGames int) (*RatingLeader, error) {
	var leaders []RatingLeader

	query := `
	SELECT
		puuid,
		wins::float8 / (wins + losses) AS value
	FROM
		ratings
	WHERE
		wins + losses >= ?
	ORDER BY value ASC, puuid ASC
	LIMIT 1
	`

	err := rs.db.WithContext(ctx).Raw(query, minGames).Scan(&leaders).Error
	if err != nil {
		return nil, err
	}
	if len(leaders) == 0 {
		return nil, nil
	}

	return &leaders[0], nil
}

// TopWithZeroCounter returns the puuid of the player with the most wins
// among players whose given counter never left zero.
// An empty string means nobody qualifies.
func (rs *ratingRepository) TopWithZeroCounter(ctx context.Context, counterColumn string) (string, error) {
	if !rankableColumns[counterColumn] {
		return "", fmt.Errorf("%w: %s", ErrUnknownColumn, counterColumn)
	}

	var puuids []string
	query := fmt.Sprintf(`
	SELECT
		puuid
	FROM
		ratings
	WHERE
		%s = 0
	ORDER BY wins DESC, puuid ASC
	LIMIT 1
	`, counterColumn)

	err := rs.db.WithContext(ctx).Raw(query).Scan(&puuids).Error
	if err != nil {
		return "", err
	}
	if len(puuids) == 0 {
		return "", nil
	}

	return puuids[0], nil
}
