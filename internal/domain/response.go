package domain

// SearchResponse represents the outcome of one itinerary search.
type SearchResponse struct {
	// SearchCriteria echoes the request parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Itineraries are the accepted candidates, cheapest first
	Itineraries []Itinerary `json:"itineraries"`
}

// SearchMetadata contains diagnostics about the search execution. An empty
// result set is a normal outcome; these fields let the caller explain why.
type SearchMetadata struct {
	// TotalItineraries is the number of ranked itineraries returned
	TotalItineraries int `json:"total_itineraries"`

	// OrdersConsidered is the number of city permutations examined
	OrdersConsidered int `json:"orders_considered"`

	// CandidatesEnumerated counts candidates produced before deduplication
	CandidatesEnumerated int `json:"candidates_enumerated"`

	// DuplicatesSkipped counts candidates dropped by canonical-key dedup
	DuplicatesSkipped int `json:"duplicates_skipped"`

	// CandidatesRejected counts deduplicated candidates that failed the
	// timing constraints
	CandidatesRejected int `json:"candidates_rejected"`

	// Routes holds per-route fetch diagnostics
	Routes []RouteDiagnostic `json:"routes"`

	// UncoveredRoutes lists routes with zero available flights
	UncoveredRoutes []Route `json:"uncovered_routes,omitempty"`

	// RecordsDropped is the total number of malformed records the provider
	// discarded across all routes
	RecordsDropped int `json:"records_dropped"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// RouteDiagnostic describes the fetch outcome for one route.
type RouteDiagnostic struct {
	// Route is the city pair
	Route Route `json:"route"`

	// Flights is the number of usable records fetched
	Flights int `json:"flights"`

	// Dropped is the number of malformed records discarded
	Dropped int `json:"dropped"`

	// Failed is true if the fetch itself failed after retries
	Failed bool `json:"failed,omitempty"`
}

// NewSearchResponse assembles a response, normalizing a nil itinerary slice to
// an empty one so callers always see a JSON array.
func NewSearchResponse(criteria SearchCriteria, itineraries []Itinerary, metadata SearchMetadata) *SearchResponse {
	if itineraries == nil {
		itineraries = []Itinerary{}
	}
	metadata.TotalItineraries = len(itineraries)

	return &SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Itineraries:    itineraries,
	}
}
