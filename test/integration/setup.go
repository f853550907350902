// Package integration provides helpers and integration tests for the
// itinerary planner. Integration tests verify that components work together
// correctly, including HTTP handlers, the planner, and providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/tripweaver/multicity-itinerary-planner/internal/adapter/http"
	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/retry"
	"github.com/tripweaver/multicity-itinerary-planner/internal/usecase"
)

// TestDefaults are the server-wide search defaults used across integration tests.
var TestDefaults = httpAdapter.SearchDefaults{MinLayoverMinutes: 90, ResultLimit: 10}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server with the given planner.
func NewTestServer(planner usecase.ItineraryPlanner) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(planner, TestDefaults)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Cities            []string `json:"cities"`
	TravelDate        string   `json:"travelDate"`
	MinLayoverMinutes *int     `json:"minLayoverMinutes,omitempty"`
	EarliestDeparture string   `json:"earliestDeparture,omitempty"`
	LatestArrival     string   `json:"latestArrival,omitempty"`
	Limit             int      `json:"limit,omitempty"`
}

// TravelDate is the fixed travel date used across integration tests.
const TravelDate = "2026-05-10"

// TravelDay is TravelDate as a time value.
var TravelDay = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Cities:     []string{"NYC", "AUS", "CHI"},
		TravelDate: TravelDate,
	}
}

// CreatePlanner creates a planner with the given provider, a single fetch
// attempt, and default timeouts.
func CreatePlanner(provider domain.FlightProvider) usecase.ItineraryPlanner {
	return CreatePlannerWithConfig(provider, nil)
}

// CreatePlannerWithConfig creates a planner with custom configuration.
// Retries are disabled unless the config sets them explicitly, so tests with
// failing providers stay fast.
func CreatePlannerWithConfig(provider domain.FlightProvider, config *usecase.Config) usecase.ItineraryPlanner {
	if config == nil {
		config = &usecase.Config{}
	}
	if config.Retry == nil {
		config.Retry = &retry.Config{MaxAttempts: 1}
	}
	return usecase.NewItineraryPlanner(provider, config)
}

// DefaultSearchCriteria returns valid search criteria for testing the planner directly.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Cities:            []string{"NYC", "AUS", "CHI"},
		TravelDate:        TravelDate,
		MinLayoverMinutes: 90,
	}
}
