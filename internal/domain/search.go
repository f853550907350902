package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Search size bounds. The permutation space is N!, so the city count is kept
// small by contract.
const (
	MinCities = 3
	MaxCities = 5
)

// SearchCriteria defines the parameters for a multi-city itinerary search.
type SearchCriteria struct {
	// Cities are the IATA codes of the airports to visit, each exactly once
	Cities []string `json:"cities"`

	// TravelDate is the travel date in YYYY-MM-DD format, passed through to
	// the flight provider
	TravelDate string `json:"travelDate"`

	// MinLayoverMinutes is the minimum layover between consecutive legs
	MinLayoverMinutes int `json:"minLayoverMinutes"`

	// EarliestDeparture, if set, bounds the first leg's departure time
	EarliestDeparture *time.Time `json:"earliestDeparture,omitempty"`

	// LatestArrival, if set, bounds the last leg's arrival time
	LatestArrival *time.Time `json:"latestArrival,omitempty"`

	// Limit caps the number of ranked itineraries returned (0 = no cap)
	Limit int `json:"limit,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if len(s.Cities) < MinCities || len(s.Cities) > MaxCities {
		return fmt.Errorf("%w: between %d and %d cities required, got %d",
			ErrInvalidRequest, MinCities, MaxCities, len(s.Cities))
	}

	seen := make(map[string]bool, len(s.Cities))
	for _, city := range s.Cities {
		if !airportCodeRegex.MatchString(city) {
			return fmt.Errorf("%w: city must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, city)
		}
		if seen[city] {
			return fmt.Errorf("%w: duplicate city %q", ErrInvalidRequest, city)
		}
		seen[city] = true
	}

	if s.TravelDate == "" {
		return fmt.Errorf("%w: travelDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.TravelDate) {
		return fmt.Errorf("%w: travelDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.TravelDate)
	}
	if _, err := time.Parse("2006-01-02", s.TravelDate); err != nil {
		return fmt.Errorf("%w: travelDate is not a valid date: %s", ErrInvalidRequest, s.TravelDate)
	}

	if s.MinLayoverMinutes < 0 {
		return fmt.Errorf("%w: minLayoverMinutes must be non-negative, got %d", ErrInvalidRequest, s.MinLayoverMinutes)
	}

	if s.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidRequest, s.Limit)
	}

	if s.EarliestDeparture != nil && s.LatestArrival != nil &&
		s.LatestArrival.Before(*s.EarliestDeparture) {
		return fmt.Errorf("%w: latestArrival must not precede earliestDeparture", ErrInvalidRequest)
	}

	return nil
}

// Constraints builds the itinerary validator settings from the criteria.
func (s *SearchCriteria) Constraints() Constraints {
	return Constraints{
		MinLayover:        time.Duration(s.MinLayoverMinutes) * time.Minute,
		EarliestDeparture: s.EarliestDeparture,
		LatestArrival:     s.LatestArrival,
	}
}
