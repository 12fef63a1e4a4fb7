package messages

const (
	CouldNotFindId      = "couldn't find the %s Id"
	FiltersNotNil       = "filters can't be nil"
	InvalidLimit        = "limit must be between 1 and %d"
	InvalidPartnerLimit = "partnerLimit must be between 1 and %d"
	RatingNotFound      = "no rating found for the given player"
)
