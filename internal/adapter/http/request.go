// Package http provides the HTTP handler layer for the itinerary planner API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchItinerariesRequest represents the request body for itinerary search.
type SearchItinerariesRequest struct {
	// Cities is the list of IATA airport codes to visit, 3 to 5 entries
	Cities []string `json:"cities"`

	// TravelDate is the travel date in YYYY-MM-DD format
	TravelDate string `json:"travelDate"`

	// MinLayoverMinutes is the minimum connection time between legs.
	// Defaults to the server-wide setting when omitted.
	MinLayoverMinutes *int `json:"minLayoverMinutes,omitempty"`

	// EarliestDeparture is an optional lower bound on the first leg's
	// departure, RFC 3339 or naive "2006-01-02T15:04:05"
	EarliestDeparture string `json:"earliestDeparture,omitempty"`

	// LatestArrival is an optional upper bound on the last leg's arrival
	LatestArrival string `json:"latestArrival,omitempty"`

	// Limit caps the number of returned itineraries. 0 means the server default.
	Limit int `json:"limit,omitempty"`
}

// City count bounds accepted by the API.
const (
	MinRequestCities = 3
	MaxRequestCities = 5
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Timestamp layouts accepted for the departure window bounds.
var windowLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// City codes are normalized to uppercase in place.
func (r *SearchItinerariesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateCities(errs)
	r.validateTravelDate(errs)
	r.validateMinLayover(errs)
	r.validateWindow(errs)
	r.validateLimit(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchItinerariesRequest) validateCities(errs *ValidationErrors) {
	if len(r.Cities) == 0 {
		errs.Add("cities", "cities is required")
		return
	}
	if len(r.Cities) < MinRequestCities {
		errs.Add("cities", fmt.Sprintf("at least %d cities are required", MinRequestCities))
		return
	}
	if len(r.Cities) > MaxRequestCities {
		errs.Add("cities", fmt.Sprintf("at most %d cities are allowed", MaxRequestCities))
		return
	}

	seen := make(map[string]bool, len(r.Cities))
	for i, city := range r.Cities {
		code := strings.ToUpper(strings.TrimSpace(city))
		if !airportCodePattern.MatchString(code) {
			errs.Add(fmt.Sprintf("cities[%d]", i),
				"city must be a valid 3-letter IATA airport code")
			continue
		}
		if seen[code] {
			errs.Add(fmt.Sprintf("cities[%d]", i),
				fmt.Sprintf("city %s appears more than once", code))
			continue
		}
		seen[code] = true
		r.Cities[i] = code
	}
}

func (r *SearchItinerariesRequest) validateTravelDate(errs *ValidationErrors) {
	if r.TravelDate == "" {
		errs.Add("travelDate", "travelDate is required")
		return
	}
	if !datePattern.MatchString(r.TravelDate) {
		errs.Add("travelDate", "travelDate must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.TravelDate); err != nil {
		errs.Add("travelDate", "travelDate is not a valid date")
	}
}

func (r *SearchItinerariesRequest) validateMinLayover(errs *ValidationErrors) {
	if r.MinLayoverMinutes != nil && *r.MinLayoverMinutes < 0 {
		errs.Add("minLayoverMinutes", "minLayoverMinutes must be a non-negative number")
	}
}

func (r *SearchItinerariesRequest) validateWindow(errs *ValidationErrors) {
	var earliest, latest *time.Time

	if r.EarliestDeparture != "" {
		t, err := parseWindowBound(r.EarliestDeparture)
		if err != nil {
			errs.Add("earliestDeparture", "earliestDeparture must be an RFC 3339 timestamp")
		} else {
			earliest = &t
		}
	}

	if r.LatestArrival != "" {
		t, err := parseWindowBound(r.LatestArrival)
		if err != nil {
			errs.Add("latestArrival", "latestArrival must be an RFC 3339 timestamp")
		} else {
			latest = &t
		}
	}

	if earliest != nil && latest != nil && latest.Before(*earliest) {
		errs.Add("latestArrival", "latestArrival must not be before earliestDeparture")
	}
}

func (r *SearchItinerariesRequest) validateLimit(errs *ValidationErrors) {
	if r.Limit < 0 {
		errs.Add("limit", "limit must be a non-negative number")
	}
}

// parseWindowBound parses a departure window bound, accepting RFC 3339 and
// naive timestamps (interpreted as UTC).
func parseWindowBound(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range windowLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
