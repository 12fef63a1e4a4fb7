package leaderboardservice

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/filters"
	"riftrank/api/repositories"

	"gorm.io/gorm"
)

const (
	LeaderboardMemoryCacheDuration = 5 * time.Minute
	LeaderboardRedisCacheDuration  = 30 * time.Minute
)

type LeaderboardRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LeaderboardService serves the rating ladder.
type LeaderboardService struct {
	db               *gorm.DB
	memCache         cache.MemCache[[]*dto.LeaderboardEntry]
	redis            LeaderboardRedisClient
	RatingRepository repositories.RatingRepository
	PlayerRepository repositories.PlayerRepository
}

// LeaderboardServiceDeps is the dependency list for the leaderboard service.
type LeaderboardServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache[[]*dto.LeaderboardEntry]
	Redis    LeaderboardRedisClient
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(deps *LeaderboardServiceDeps) *LeaderboardService {
	return &LeaderboardService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		RatingRepository: repositories.NewRatingRepository(deps.DB),
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
	}
}

// GetLeaderboard returns the top rated players with their profiles.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, filter *filters.LeaderboardFilter) ([]*dto.LeaderboardEntry, error) {
	key := "leaderboard:limit_" + strconv.Itoa(filter.Limit)

	if mem := ls.memCache.Get(key); mem != nil {
		return mem, nil
	}

	if redisData := ls.getFromRedis(ctx, key); redisData != nil {
		ls.memCache.Set(key, redisData, LeaderboardMemoryCacheDuration)
		return redisData, nil
	}

	ratings, err := ls.RatingRepository.GetLeaderboard(ctx, filter.Limit)
	if err != nil {
		return nil, err
	}

	if len(ratings) == 0 {
		return []*dto.LeaderboardEntry{}, nil
	}

	puuids := make([]string, 0, len(ratings))
	for _, rating := range ratings {
		puuids = append(puuids, rating.Puuid)
	}

	players, err := ls.PlayerRepository.GetPlayersByPuuids(ctx, puuids)
	if err != nil {
		return nil, err
	}

	leaderboard := dto.NewLeaderboard(ratings, players)

	ls.populateCaches(ctx, key, leaderboard)

	return leaderboard, nil
}

// getFromRedis retrieves the leaderboard from the redis.
func (ls *LeaderboardService) getFromRedis(ctx context.Context, key string) []*dto.LeaderboardEntry {
	redisCtx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := ls.redis.Get(redisCtx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var leaderboard []*dto.LeaderboardEntry
	if err := json.Unmarshal([]byte(redisCached), &leaderboard); err != nil {
		return nil
	}

	return leaderboard
}

// populateCaches sets the mem cache and redis cache.
func (ls *LeaderboardService) populateCaches(ctx context.Context, key string, data []*dto.LeaderboardEntry) {
	ls.memCache.Set(key, data, LeaderboardMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ls.redis.Set(ctx, key, string(j), LeaderboardRedisCacheDuration)
	}
}
