package repositories

import (
	"context"
	"riftrank/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository is the public interface for accessing the player table.
type PlayerRepository interface {
	GetPlayerByPuuid(ctx context.Context, puuid string) (*models.Player, error)
	GetPlayersByPuuids(ctx context.Context, puuids []string) (map[string]*models.Player, error)
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// GetPlayerByPuuid returns the profile of a single player.
// A missing row is returned as (nil, nil).
func (ps *playerRepository) GetPlayerByPuuid(ctx context.Context, puuid string) (*models.Player, error) {
	players, err := ps.GetPlayersByPuuids(ctx, []string{puuid})
	if err != nil {
		return nil, err
	}
	return players[puuid], nil
}

// GetPlayersByPuuids batch loads player profiles, keyed by puuid.
// Unknown puuids are simply absent from the result.
func (ps *playerRepository) GetPlayersByPuuids(ctx context.Context, puuids []string) (map[string]*models.Player, error) {
	result := make(map[string]*models.Player, len(puuids))
	if len(puuids) == 0 {
		return result, nil
	}

	var players []models.Player
	err := ps.db.WithContext(ctx).
		Where("puuid IN ?", puuids).
		Find(&players).Error
	if err != nil {
		return nil, err
	}

	for i := range players {
		result[players[i].Puuid] = &players[i]
	}

	return result, nil
}
