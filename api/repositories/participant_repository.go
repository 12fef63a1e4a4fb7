package repositories

import (
	"context"
	"errors"
	"riftrank/pkg/database/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code for a relation that does not exist.
const undefinedTableCode = "42P01"

// ErrKillTableMissing signals that the deployment never imported timeline
// data, so the match_kills table does not exist. Callers degrade instead of
// failing.
var ErrKillTableMissing = errors.New("match_kills table does not exist")

// DuoParticipantRow is the minimal participant projection used by the duo
// aggregation.
type DuoParticipantRow struct {
	MatchId       int64
	Puuid         string
	ParticipantId *int
	TeamId        *int
	Win           *bool
}

// KillRow is a single kill event, identified by in-match participant seats.
type KillRow struct {
	MatchId             int64
	KillerParticipantId int
	VictimParticipantId int
}

// ParticipantRepository is the public interface for accessing the
// participant and kill tables.
type ParticipantRepository interface {
	GetDuoRows(ctx context.Context) ([]DuoParticipantRow, error)
	GetKillRows(ctx context.Context) ([]KillRow, error)
}

// participantRepository repository structure.
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a participant repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// GetDuoRows returns every participant row with the columns needed for the
// teammate aggregation.
func (ps *participantRepository) GetDuoRows(ctx context.Context) ([]DuoParticipantRow, error) {
	var rows []DuoParticipantRow

	err := ps.db.WithContext(ctx).
		Model(&models.MatchParticipant{}).
		Select("match_id, puuid, participant_id, team_id, win").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetKillRows returns every kill event.
// Returns ErrKillTableMissing when the kill table was never created.
func (ps *participantRepository) GetKillRows(ctx context.Context) ([]KillRow, error) {
	var rows []KillRow

	err := ps.db.WithContext(ctx).
		Model(&models.MatchKill{}).
		Select("match_id, killer_participant_id, victim_participant_id").
		Find(&rows).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
			return nil, ErrKillTableMissing
		}
		return nil, err
	}

	return rows, nil
}
