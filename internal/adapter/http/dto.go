package http

import (
	"time"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Itineraries    []ItineraryDTO    `json:"itineraries"`
}

// SearchCriteriaDTO echoes the effective search criteria in the response.
type SearchCriteriaDTO struct {
	Cities            []string `json:"cities"`
	TravelDate        string   `json:"travel_date"`
	MinLayoverMinutes int      `json:"min_layover_minutes"`
	EarliestDeparture string   `json:"earliest_departure,omitempty"`
	LatestArrival     string   `json:"latest_arrival,omitempty"`
	Limit             int      `json:"limit,omitempty"`
}

// MetadataDTO contains diagnostics about the search execution.
type MetadataDTO struct {
	TotalItineraries     int                  `json:"total_itineraries"`
	OrdersConsidered     int                  `json:"orders_considered"`
	CandidatesEnumerated int                  `json:"candidates_enumerated"`
	DuplicatesSkipped    int                  `json:"duplicates_skipped"`
	CandidatesRejected   int                  `json:"candidates_rejected"`
	RecordsDropped       int                  `json:"records_dropped"`
	Routes               []RouteDiagnosticDTO `json:"routes"`
	UncoveredRoutes      []string             `json:"uncovered_routes,omitempty"`
	SearchTimeMs         int64                `json:"search_time_ms"`
}

// RouteDiagnosticDTO describes the fetch outcome for one route pair.
type RouteDiagnosticDTO struct {
	Route   string `json:"route"`
	Flights int    `json:"flights"`
	Dropped int    `json:"dropped,omitempty"`
	Failed  bool   `json:"failed,omitempty"`
}

// ItineraryDTO is one ranked itinerary in the response.
type ItineraryDTO struct {
	Cities     []string `json:"cities"`
	TotalPrice PriceDTO `json:"total_price"`
	Departure  string   `json:"departure"`
	Arrival    string   `json:"arrival"`
	Legs       []LegDTO `json:"legs"`
}

// LegDTO is a single flight within an itinerary.
type LegDTO struct {
	ID          string   `json:"id"`
	Airline     string   `json:"airline"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Departure   string   `json:"departure"`
	Arrival     string   `json:"arrival"`
	Price       PriceDTO `json:"price"`
}

// PriceDTO carries an exact decimal amount as a string.
type PriceDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ToSearchResponseDTO converts a domain SearchResponse to a SearchResponseDTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Cities:            resp.SearchCriteria.Cities,
			TravelDate:        resp.SearchCriteria.TravelDate,
			MinLayoverMinutes: resp.SearchCriteria.MinLayoverMinutes,
			EarliestDeparture: formatOptionalTime(resp.SearchCriteria.EarliestDeparture),
			LatestArrival:     formatOptionalTime(resp.SearchCriteria.LatestArrival),
			Limit:             resp.SearchCriteria.Limit,
		},
		Metadata: MetadataDTO{
			TotalItineraries:     resp.Metadata.TotalItineraries,
			OrdersConsidered:     resp.Metadata.OrdersConsidered,
			CandidatesEnumerated: resp.Metadata.CandidatesEnumerated,
			DuplicatesSkipped:    resp.Metadata.DuplicatesSkipped,
			CandidatesRejected:   resp.Metadata.CandidatesRejected,
			RecordsDropped:       resp.Metadata.RecordsDropped,
			Routes:               make([]RouteDiagnosticDTO, len(resp.Metadata.Routes)),
			SearchTimeMs:         resp.Metadata.SearchTimeMs,
		},
		Itineraries: make([]ItineraryDTO, len(resp.Itineraries)),
	}

	for i, diag := range resp.Metadata.Routes {
		dto.Metadata.Routes[i] = RouteDiagnosticDTO{
			Route:   diag.Route.String(),
			Flights: diag.Flights,
			Dropped: diag.Dropped,
			Failed:  diag.Failed,
		}
	}
	for _, route := range resp.Metadata.UncoveredRoutes {
		dto.Metadata.UncoveredRoutes = append(dto.Metadata.UncoveredRoutes, route.String())
	}
	for i := range resp.Itineraries {
		dto.Itineraries[i] = ToItineraryDTO(&resp.Itineraries[i])
	}

	return dto
}

// ToItineraryDTO converts a domain Itinerary to an ItineraryDTO.
func ToItineraryDTO(it *domain.Itinerary) ItineraryDTO {
	total := it.TotalPrice()
	dto := ItineraryDTO{
		Cities:     it.Cities(),
		TotalPrice: toPriceDTO(total),
		Departure:  it.Departure().Format(time.RFC3339),
		Arrival:    it.Arrival().Format(time.RFC3339),
		Legs:       make([]LegDTO, len(it.Legs)),
	}

	for i, leg := range it.Legs {
		dto.Legs[i] = LegDTO{
			ID:          leg.ID,
			Airline:     leg.Airline,
			Origin:      leg.Origin,
			Destination: leg.Destination,
			Departure:   leg.Departure.Format(time.RFC3339),
			Arrival:     leg.Arrival.Format(time.RFC3339),
			Price:       toPriceDTO(leg.Price),
		}
	}

	return dto
}

func toPriceDTO(p domain.PriceInfo) PriceDTO {
	return PriceDTO{
		Amount:   p.Amount.String(),
		Currency: p.Currency,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
