package jobs

import (
	"fmt"
	"log"
	"time"

	"riftrank/pkg/config"
	"riftrank/pkg/database"
	"riftrank/pkg/database/models"
	"riftrank/pkg/logger"
	"riftrank/pkg/rating"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Only full custom games count towards the ladder. Remakes are filtered by
// the minimum duration.
const (
	validGameType    = "CUSTOM_GAME"
	minMatchDuration = 300
)

// matchRow is the match projection loaded for the replay.
type matchRow struct {
	MatchId      int64
	GameCreation time.Time
}

// RecomputeRatings rebuilds the ratings and rating history tables from the
// full match history. The replay is deterministic, so rerunning it over an
// unchanged history writes the exact same rows.
func RecomputeRatings(cfg *config.Config) error {
	log.Println("Starting rating recompute.")

	jobLogger, err := logger.CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("couldn't create the logger: %w", err)
	}

	// Create a new connection pool.
	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	histories, err := loadMatchHistories(db)
	if err != nil {
		return fmt.Errorf("couldn't load the match history: %w", err)
	}

	jobLogger.Infof("Loaded %d qualifying matches.", len(histories))

	engine := rating.NewEngine(nil, jobLogger)
	result := engine.ComputeAggregates(histories)

	jobLogger.Infof(
		"Replay finished: %d players, %d history entries, %d skipped matches, %d skipped participants.",
		len(result.Aggregates), len(result.History), result.SkippedMatches, result.SkippedParticipants,
	)

	if err := persistResult(db, result); err != nil {
		jobLogger.Errorf("Persisting the recompute failed: %v", err)
		uploadLog(jobLogger)
		return fmt.Errorf("couldn't persist the recompute: %w", err)
	}

	jobLogger.Infof("Rating recompute finished.")
	uploadLog(jobLogger)

	log.Println("Finished rating recompute.")
	return nil
}

// loadMatchHistories loads every qualifying match with its participants,
// oldest first.
func loadMatchHistories(db *gorm.DB) ([]rating.MatchHistory, error) {
	var matches []matchRow

	err := db.Model(&models.Match{}).
		Select("match_id, game_creation").
		Where("game_type = ? AND duration >= ?", validGameType, minMatchDuration).
		Order("game_creation ASC, match_id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, nil
	}

	var participants []models.MatchParticipant
	err = db.Model(&models.MatchParticipant{}).
		Joins("JOIN matches ON matches.match_id = match_participants.match_id").
		Where("matches.game_type = ? AND matches.duration >= ?", validGameType, minMatchDuration).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	byMatch := make(map[int64][]models.MatchParticipant, len(matches))
	for _, participant := range participants {
		byMatch[participant.MatchId] = append(byMatch[participant.MatchId], participant)
	}

	histories := make([]rating.MatchHistory, 0, len(matches))
	for _, match := range matches {
		histories = append(histories, rating.MatchHistory{
			MatchId:      match.MatchId,
			GameCreation: match.GameCreation,
			Participants: byMatch[match.MatchId],
		})
	}

	return histories, nil
}

// persistResult swaps the derived tables for the freshly computed rows in a
// single transaction, so readers never see a half written ladder.
func persistResult(db *gorm.DB, result *rating.Result) error {
	now := time.Now()

	ratings := make([]*models.PlayerRating, 0, len(result.Aggregates))
	for _, aggregate := range result.Aggregates {
		ratings = append(ratings, aggregate.ToModel(now))
	}

	history := make([]models.RatingHistory, 0, len(result.History))
	for _, entry := range result.History {
		history = append(history, models.RatingHistory{
			Puuid:       entry.Puuid,
			MatchId:     entry.MatchId,
			RatingAfter: entry.RatingAfter,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM rating_history").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM ratings").Error; err != nil {
			return err
		}

		if len(ratings) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(ratings, 500).Error; err != nil {
				return err
			}
		}
		if len(history) > 0 {
			if err := tx.CreateInBatches(history, 1000).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// uploadLog ships the job log to the bucket. Losing a log never fails the
// job.
func uploadLog(jobLogger *logger.NewLogger) {
	objectKey := fmt.Sprintf("ratings/recompute-%s.log", time.Now().Format("2006-01-02-15-04-05"))
	if err := jobLogger.UploadToS3Bucket(objectKey); err != nil {
		log.Printf("Couldn't upload the job log: %v", err)
	}
}
