package filters

import (
	"fmt"
	"riftrank/pkg/messages"
)

const (
	DefaultPartnerLimit = 5
	MaxPartnerLimit     = 20
)

// Query parameters for the duos endpoint.
type DuoQueryParams struct {
	PartnerLimit int `form:"partner_limit"`
}

// DuoFilter is the validated duos input.
type DuoFilter struct {
	PartnerLimit int
}

// NewDuoFilter validates the query parameters and applies the default
// partner limit.
func NewDuoFilter(qp *DuoQueryParams) (*DuoFilter, error) {
	limit := qp.PartnerLimit
	if limit == 0 {
		limit = DefaultPartnerLimit
	}

	if limit < 1 || limit > MaxPartnerLimit {
		return nil, fmt.Errorf(messages.InvalidPartnerLimit, MaxPartnerLimit)
	}

	return &DuoFilter{PartnerLimit: limit}, nil
}
