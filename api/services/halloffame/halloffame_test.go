package halloffameservice

import (
	"context"
	"errors"
	"testing"

	"riftrank/api/dto"
	"riftrank/api/repositories"
	"riftrank/api/services/testutil"
	"riftrank/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService() (*HallOfFameService, *testutil.MockRatingRepository, *testutil.MockPlayerRepository, *testutil.MockMemCache[dto.HallOfFame], *testutil.MockRedisClient) {
	mockRatingRepo := new(testutil.MockRatingRepository)
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockMemCache := new(testutil.MockMemCache[dto.HallOfFame])
	mockRedis := new(testutil.MockRedisClient)

	service := &HallOfFameService{
		memCache:         mockMemCache,
		redis:            mockRedis,
		RatingRepository: mockRatingRepo,
		PlayerRepository: mockPlayerRepo,
	}

	return service, mockRatingRepo, mockPlayerRepo, mockMemCache, mockRedis
}

func strPtr(v string) *string { return &v }

// Simple test for asserting that everything is fine with the service
// creation.
func TestNewHallOfFameService(t *testing.T) {
	deps := &HallOfFameServiceDeps{
		DB:       new(gorm.DB),
		MemCache: new(testutil.MockMemCache[dto.HallOfFame]),
		Redis:    new(testutil.MockRedisClient),
	}

	service := NewHallOfFameService(deps)
	assert.NotNil(t, service)
	assert.NotNil(t, service.RatingRepository)
	assert.NotNil(t, service.PlayerRepository)
}

// The board always carries exactly the full title set, without duplicates.
func TestAllTitleIds(t *testing.T) {
	ids := AllTitleIds()
	assert.Len(t, ids, 37)

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "duplicated title id %s", id)
		seen[id] = true
	}

	assert.True(t, seen[TitleWorstWinRate])
	assert.True(t, seen[TitleNeverMvp])
	assert.True(t, seen[TitleNeverAce])
	assert.True(t, seen["most_kills"])
	assert.True(t, seen["hoarder"])
}

// Test the full board resolution on a cold cache.
func TestGetHallOfFame(t *testing.T) {
	service, mockRatingRepo, mockPlayerRepo, mockMemCache, mockRedis := setupTestService()

	mockMemCache.On("Get", hallOfFameCacheKey).Return(nil).Once()
	mockRedis.On("Get", mock.Anything, hallOfFameCacheKey).Return("", errors.New("cache miss")).Once()

	for _, title := range SimpleTitles {
		mockRatingRepo.On("TopByColumn", mock.Anything, title.Column, title.Ascending).
			Return(&repositories.RatingLeader{Puuid: "puuid-simple", Value: 4.2}, nil).Once()
	}
	mockRatingRepo.On("WorstWinRate", mock.Anything, MinWorstWinRateGames).
		Return(&repositories.RatingLeader{Puuid: "puuid-loser", Value: 0.2468}, nil).Once()
	mockRatingRepo.On("TopWithZeroCounter", mock.Anything, "mvp_games").
		Return("puuid-no-mvp", nil).Once()
	mockRatingRepo.On("TopWithZeroCounter", mock.Anything, "ace_games").
		Return("", nil).Once()

	mockPlayerRepo.On("GetPlayersByPuuids", mock.Anything, mock.Anything).
		Return(map[string]*models.Player{
			"puuid-simple": {Puuid: "puuid-simple", GameName: strPtr("Simple")},
			"puuid-loser":  {Puuid: "puuid-loser", GameName: strPtr("Loser")},
			"puuid-no-mvp": {Puuid: "puuid-no-mvp", GameName: strPtr("NoMvp")},
		}, nil).Once()

	mockMemCache.On("Set", hallOfFameCacheKey, mock.Anything, HallOfFameMemoryCacheDuration).Once()
	mockRedis.On("Set", mock.Anything, hallOfFameCacheKey, mock.Anything, HallOfFameRedisCacheDuration).
		Return(nil).Once()

	result, err := service.GetHallOfFame(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 37)

	mostKills := result["most_kills"]
	require.NotNil(t, mostKills)
	assert.Equal(t, "Simple", *mostKills.GameName)
	require.NotNil(t, mostKills.Value)
	assert.InDelta(t, 4.2, *mostKills.Value, 1e-9)

	// The win rate is rounded to two decimal places.
	worst := result[TitleWorstWinRate]
	require.NotNil(t, worst)
	assert.Equal(t, "Loser", *worst.GameName)
	require.NotNil(t, worst.Value)
	assert.InDelta(t, 0.25, *worst.Value, 1e-9)

	neverMvp := result[TitleNeverMvp]
	require.NotNil(t, neverMvp)
	require.NotNil(t, neverMvp.Value)
	assert.InDelta(t, 0.0, *neverMvp.Value, 1e-9)

	// Nobody qualifies, so the title stays null.
	assert.Nil(t, result[TitleNeverAce])

	testutil.VerifyAllMocks(t, mockRatingRepo, mockPlayerRepo, mockMemCache, mockRedis)
}

// A failing title query leaves its title null instead of failing the board.
func TestGetHallOfFameFailingTitle(t *testing.T) {
	service, mockRatingRepo, mockPlayerRepo, mockMemCache, mockRedis := setupTestService()

	mockMemCache.On("Get", hallOfFameCacheKey).Return(nil).Once()
	mockRedis.On("Get", mock.Anything, hallOfFameCacheKey).Return("", errors.New("cache miss")).Once()

	mockRatingRepo.On("TopByColumn", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database error"))
	mockRatingRepo.On("WorstWinRate", mock.Anything, MinWorstWinRateGames).
		Return(&repositories.RatingLeader{Puuid: "puuid-loser", Value: 0.3}, nil).Once()
	mockRatingRepo.On("TopWithZeroCounter", mock.Anything, mock.Anything).
		Return("", errors.New("database error"))

	mockPlayerRepo.On("GetPlayersByPuuids", mock.Anything, []string{"puuid-loser"}).
		Return(map[string]*models.Player{}, nil).Once()

	mockMemCache.On("Set", hallOfFameCacheKey, mock.Anything, HallOfFameMemoryCacheDuration).Once()
	mockRedis.On("Set", mock.Anything, hallOfFameCacheKey, mock.Anything, HallOfFameRedisCacheDuration).
		Return(nil).Once()

	result, err := service.GetHallOfFame(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 37)
	assert.Nil(t, result["most_kills"])
	assert.Nil(t, result[TitleNeverMvp])
	assert.NotNil(t, result[TitleWorstWinRate])
}

// A warm memory cache short-circuits everything else.
func TestGetHallOfFameFromMemCache(t *testing.T) {
	service, mockRatingRepo, _, mockMemCache, _ := setupTestService()

	cached := dto.HallOfFame{"most_kills": nil}
	mockMemCache.On("Get", hallOfFameCacheKey).Return(cached).Once()

	result, err := service.GetHallOfFame(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRatingRepo.AssertNotCalled(t, "TopByColumn")
}
