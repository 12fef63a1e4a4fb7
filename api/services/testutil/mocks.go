package testutil

import (
	"context"
	"testing"
	"time"

	"riftrank/api/repositories"
	"riftrank/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// Rating repository mock implementation.
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) GetLeaderboard(ctx context.Context, limit int) ([]models.PlayerRating, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.PlayerRating), args.Error(1)
}

func (m *MockRatingRepository) GetByPuuid(ctx context.Context, puuid string) (*models.PlayerRating, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerRating), args.Error(1)
}

func (m *MockRatingRepository) GetRatingHistory(ctx context.Context, puuid string, limit int) ([]models.RatingHistory, error) {
	args := m.Called(ctx, puuid, limit)
	return args.Get(0).([]models.RatingHistory), args.Error(1)
}

func (m *MockRatingRepository) TopByColumn(ctx context.Context, column string, ascending bool) (*repositories.RatingLeader, error) {
	args := m.Called(ctx, column, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.RatingLeader), args.Error(1)
}

func (m *MockRatingRepository) WorstWinRate(ctx context.Context, minGames int) (*repositories.RatingLeader, error) {
	args := m.Called(ctx, minGames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.RatingLeader), args.Error(1)
}

func (m *MockRatingRepository) TopWithZeroCounter(ctx context.Context, counterColumn string) (string, error) {
	args := m.Called(ctx, counterColumn)
	return args.Get(0).(string), args.Error(1)
}

// Participant repository mock implementation.
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) GetDuoRows(ctx context.Context) ([]repositories.DuoParticipantRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.DuoParticipantRow), args.Error(1)
}

func (m *MockParticipantRepository) GetKillRows(ctx context.Context) ([]repositories.KillRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.KillRow), args.Error(1)
}

// Player repository mock implementation.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetPlayerByPuuid(ctx context.Context, puuid string) (*models.Player, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayersByPuuids(ctx context.Context, puuids []string) (map[string]*models.Player, error) {
	args := m.Called(ctx, puuids)
	return args.Get(0).(map[string]*models.Player), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache[T any] struct {
	mock.Mock
}

func (m *MockMemCache[T]) Get(key string) T {
	args := m.Called(key)
	if args.Get(0) == nil {
		var zero T
		return zero
	}
	return args.Get(0).(T)
}

func (m *MockMemCache[T]) Set(key string, value T, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache[T]) Close() {
	m.Called()
}

// Redis client mock implementation.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
