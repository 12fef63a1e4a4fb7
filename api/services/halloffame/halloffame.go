package halloffameservice

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/repositories"
	"riftrank/pkg/database/models"

	"gorm.io/gorm"
)

const (
	hallOfFameCacheKey            = "halloffame"
	HallOfFameMemoryCacheDuration = 15 * time.Minute
	HallOfFameRedisCacheDuration  = time.Hour
)

type HallOfFameRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// HallOfFameService resolves every title to its current holder.
type HallOfFameService struct {
	db               *gorm.DB
	memCache         cache.MemCache[dto.HallOfFame]
	redis            HallOfFameRedisClient
	RatingRepository repositories.RatingRepository
	PlayerRepository repositories.PlayerRepository
}

// HallOfFameServiceDeps is the dependency list for the hall of fame service.
type HallOfFameServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache[dto.HallOfFame]
	Redis    HallOfFameRedisClient
}

// NewHallOfFameService creates a hall of fame service.
func NewHallOfFameService(deps *HallOfFameServiceDeps) *HallOfFameService {
	return &HallOfFameService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		RatingRepository: repositories.NewRatingRepository(deps.DB),
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
	}
}

// titleLeader is the intermediate result of one title query.
type titleLeader struct {
	puuid string
	value *float64
}

// GetHallOfFame returns the holder of every title.
// Each title resolves independently: a failing or empty title query yields a
// null entry instead of failing the whole board.
func (hs *HallOfFameService) GetHallOfFame(ctx context.Context) (dto.HallOfFame, error) {
	if mem := hs.memCache.Get(hallOfFameCacheKey); mem != nil {
		return mem, nil
	}

	if redisData := hs.getFromRedis(ctx); redisData != nil {
		hs.memCache.Set(hallOfFameCacheKey, redisData, HallOfFameMemoryCacheDuration)
		return redisData, nil
	}

	leaders := hs.resolveLeaders(ctx)

	// Batch load the profiles of every holder.
	puuids := make([]string, 0, len(leaders))
	for _, leader := range leaders {
		if leader != nil {
			puuids = append(puuids, leader.puuid)
		}
	}

	players, err := hs.PlayerRepository.GetPlayersByPuuids(ctx, puuids)
	if err != nil {
		return nil, err
	}

	result := make(dto.HallOfFame, len(leaders))
	for _, id := range AllTitleIds() {
		result[id] = newEntry(leaders[id], players)
	}

	hs.populateCaches(ctx, result)

	return result, nil
}

// resolveLeaders runs every title query concurrently and collects the
// winners. Failed queries leave their title nil.
func (hs *HallOfFameService) resolveLeaders(ctx context.Context) map[string]*titleLeader {
	leaders := make(map[string]*titleLeader, len(SimpleTitles)+3)

	var wg sync.WaitGroup
	var mu sync.Mutex

	setLeader := func(id string, leader *titleLeader) {
		mu.Lock()
		defer mu.Unlock()
		leaders[id] = leader
	}

	for _, title := range SimpleTitles {
		wg.Add(1)
		go func(title SimpleTitle) {
			defer wg.Done()

			top, err := hs.RatingRepository.TopByColumn(ctx, title.Column, title.Ascending)
			if err != nil || top == nil {
				setLeader(title.Id, nil)
				return
			}
			value := top.Value
			setLeader(title.Id, &titleLeader{puuid: top.Puuid, value: &value})
		}(title)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		top, err := hs.RatingRepository.WorstWinRate(ctx, MinWorstWinRateGames)
		if err != nil || top == nil {
			setLeader(TitleWorstWinRate, nil)
			return
		}
		rate := math.Round(top.Value*100) / 100
		setLeader(TitleWorstWinRate, &titleLeader{puuid: top.Puuid, value: &rate})
	}()

	for id, column := range map[string]string{
		TitleNeverMvp: "mvp_games",
		TitleNeverAce: "ace_games",
	} {
		wg.Add(1)
		go func(id, column string) {
			defer wg.Done()

			puuid, err := hs.RatingRepository.TopWithZeroCounter(ctx, column)
			if err != nil || puuid == "" {
				setLeader(id, nil)
				return
			}
			zero := 0.0
			setLeader(id, &titleLeader{puuid: puuid, value: &zero})
		}(id, column)
	}

	wg.Wait()

	return leaders
}

// newEntry joins a leader with its player profile.
func newEntry(leader *titleLeader, players map[string]*models.Player) *dto.HallOfFameEntry {
	if leader == nil {
		return nil
	}

	entry := &dto.HallOfFameEntry{Value: leader.value}
	if player := players[leader.puuid]; player != nil {
		entry.GameName = player.GameName
		entry.TagLine = player.TagLine
		entry.ProfileIcon = player.ProfileIcon
	}

	return entry
}

// getFromRedis retrieves the hall of fame from the redis.
func (hs *HallOfFameService) getFromRedis(ctx context.Context) dto.HallOfFame {
	redisCtx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := hs.redis.Get(redisCtx, hallOfFameCacheKey)
	if err != nil || redisCached == "" {
		return nil
	}

	var hallOfFame dto.HallOfFame
	if err := json.Unmarshal([]byte(redisCached), &hallOfFame); err != nil {
		return nil
	}

	return hallOfFame
}

// populateCaches sets the mem cache and redis cache.
func (hs *HallOfFameService) populateCaches(ctx context.Context, data dto.HallOfFame) {
	hs.memCache.Set(hallOfFameCacheKey, data, HallOfFameMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		hs.redis.Set(ctx, hallOfFameCacheKey, string(j), HallOfFameRedisCacheDuration)
	}
}
