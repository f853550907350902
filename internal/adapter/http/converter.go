// Package http provides the HTTP handler layer for the itinerary planner API.
package http

import (
	"time"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// SearchDefaults holds server-wide fallbacks applied when a request omits
// optional fields.
type SearchDefaults struct {
	MinLayoverMinutes int
	ResultLimit       int
}

// ToDomainCriteria converts a validated SearchItinerariesRequest to
// domain.SearchCriteria, filling omitted fields from defaults.
func ToDomainCriteria(req *SearchItinerariesRequest, defaults SearchDefaults) domain.SearchCriteria {
	minLayover := defaults.MinLayoverMinutes
	if req.MinLayoverMinutes != nil {
		minLayover = *req.MinLayoverMinutes
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaults.ResultLimit
	}

	return domain.SearchCriteria{
		Cities:            req.Cities,
		TravelDate:        req.TravelDate,
		MinLayoverMinutes: minLayover,
		EarliestDeparture: toWindowBound(req.EarliestDeparture),
		LatestArrival:     toWindowBound(req.LatestArrival),
		Limit:             limit,
	}
}

// toWindowBound parses an optional window bound that has already passed
// request validation. An empty or unparseable value means no bound.
func toWindowBound(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := parseWindowBound(value)
	if err != nil {
		return nil
	}
	return &t
}
