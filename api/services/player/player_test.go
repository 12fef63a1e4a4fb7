package playerservice

import (
	"context"
	"errors"
	"testing"

	"riftrank/api/filters"
	"riftrank/api/services/testutil"
	"riftrank/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService() (*PlayerService, *testutil.MockRatingRepository, *testutil.MockPlayerRepository) {
	mockRatingRepo := new(testutil.MockRatingRepository)
	mockPlayerRepo := new(testutil.MockPlayerRepository)

	service := &PlayerService{
		RatingRepository: mockRatingRepo,
		PlayerRepository: mockPlayerRepo,
	}

	return service, mockRatingRepo, mockPlayerRepo
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// Simple test for asserting that everything is fine with the player service
// creation.
func TestNewPlayerService(t *testing.T) {
	service := NewPlayerService(&PlayerServiceDeps{DB: new(gorm.DB)})

	assert.NotNil(t, service)
	assert.NotNil(t, service.RatingRepository)
	assert.NotNil(t, service.PlayerRepository)
}

// Test getting the rating detail of a single player.
func TestGetRating(t *testing.T) {
	tests := []struct {
		name          string
		rating        *models.PlayerRating
		ratingError   error
		player        *models.Player
		expectedError error
	}{
		{
			name:   "rating with profile",
			rating: &models.PlayerRating{Puuid: "known", Rating: floatPtr(1050), Wins: 4, Losses: 2},
			player: &models.Player{Puuid: "known", GameName: strPtr("Known")},
		},
		{
			name:   "rating without profile",
			rating: &models.PlayerRating{Puuid: "known", Rating: floatPtr(1050)},
		},
		{
			name:          "no rating row",
			expectedError: ErrRatingNotFound,
		},
		{
			name:          "repository error",
			ratingError:   errors.New("database error"),
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRatingRepo, mockPlayerRepo := setupTestService()

			mockRatingRepo.On("GetByPuuid", mock.Anything, "known").
				Return(tt.rating, tt.ratingError).Once()
			if tt.rating != nil {
				mockPlayerRepo.On("GetPlayerByPuuid", mock.Anything, "known").
					Return(tt.player, nil).Once()
			}

			result, err := service.GetRating(context.Background(), "known")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, "known", result.Puuid)
			assert.Equal(t, tt.rating.Wins, result.Wins)

			if tt.player != nil {
				require.NotNil(t, result.Player)
				assert.Equal(t, "Known", *result.Player.GameName)
			} else {
				assert.Nil(t, result.Player)
			}

			testutil.VerifyAllMocks(t, mockRatingRepo, mockPlayerRepo)
		})
	}
}

// Test the rating history mapping.
func TestGetRatingHistory(t *testing.T) {
	service, mockRatingRepo, _ := setupTestService()

	history := []models.RatingHistory{
		{Puuid: "known", MatchId: 9, RatingAfter: 1032},
		{Puuid: "known", MatchId: 7, RatingAfter: 1016},
	}

	mockRatingRepo.On("GetRatingHistory", mock.Anything, "known", 50).
		Return(history, nil).Once()

	result, err := service.GetRatingHistory(context.Background(), &filters.RatingHistoryFilter{Puuid: "known", Limit: 50})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(9), result[0].MatchId)
	assert.InDelta(t, 1032, result[0].RatingAfter, 1e-9)
	assert.Equal(t, int64(7), result[1].MatchId)

	testutil.VerifyAllMocks(t, mockRatingRepo)
}
