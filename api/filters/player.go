package filters

import (
	"fmt"
	"riftrank/pkg/messages"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// URI params for the player endpoints.
type PlayerURIParams struct {
	Puuid string `uri:"puuid" binding:"required"`
}

// Query parameters for the rating history endpoint.
type RatingHistoryQueryParams struct {
	Limit int `form:"limit"`
}

// RatingHistoryFilter is the validated rating history input.
type RatingHistoryFilter struct {
	Puuid string
	Limit int
}

// NewRatingHistoryFilter validates the params and applies the default limit.
func NewRatingHistoryFilter(pp *PlayerURIParams, qp *RatingHistoryQueryParams) (*RatingHistoryFilter, error) {
	limit := qp.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	if limit < 1 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf(messages.InvalidLimit, MaxHistoryLimit)
	}

	return &RatingHistoryFilter{
		Puuid: pp.Puuid,
		Limit: limit,
	}, nil
}
