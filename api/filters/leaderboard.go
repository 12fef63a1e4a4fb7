package filters

import (
	"fmt"
	"riftrank/pkg/messages"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 200
)

// Query parameters for the leaderboard endpoint.
type LeaderboardQueryParams struct {
	Limit int `form:"limit"`
}

// LeaderboardFilter is the validated leaderboard input.
type LeaderboardFilter struct {
	Limit int
}

// NewLeaderboardFilter validates the query parameters and applies the
// default limit.
func NewLeaderboardFilter(qp *LeaderboardQueryParams) (*LeaderboardFilter, error) {
	limit := qp.Limit
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}

	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf(messages.InvalidLimit, MaxLeaderboardLimit)
	}

	return &LeaderboardFilter{Limit: limit}, nil
}
