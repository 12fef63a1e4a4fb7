package playerservice

import (
	"context"
	"errors"

	"riftrank/api/dto"
	"riftrank/api/filters"
	"riftrank/api/repositories"
	"riftrank/pkg/messages"

	"gorm.io/gorm"
)

// ErrRatingNotFound is returned when the player has no rating row yet.
var ErrRatingNotFound = errors.New(messages.RatingNotFound)

// PlayerService serves per player rating data.
type PlayerService struct {
	db               *gorm.DB
	RatingRepository repositories.RatingRepository
	PlayerRepository repositories.PlayerRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	DB *gorm.DB
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:               deps.DB,
		RatingRepository: repositories.NewRatingRepository(deps.DB),
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
	}
}

// GetRating returns the full rating row of one player with the profile
// attached.
func (ps *PlayerService) GetRating(ctx context.Context, puuid string) (*dto.PlayerRatingDetail, error) {
	rating, err := ps.RatingRepository.GetByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}

	player, err := ps.PlayerRepository.GetPlayerByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}

	return dto.NewPlayerRatingDetail(rating, player), nil
}

// GetRatingHistory returns the latest rating points of one player.
func (ps *PlayerService) GetRatingHistory(ctx context.Context, filter *filters.RatingHistoryFilter) ([]*dto.RatingHistoryEntry, error) {
	history, err := ps.RatingRepository.GetRatingHistory(ctx, filter.Puuid, filter.Limit)
	if err != nil {
		return nil, err
	}

	return dto.NewRatingHistory(history), nil
}
