package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// mockPlanner is a mock implementation of ItineraryPlanner for testing.
type mockPlanner struct {
	planFunc func(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
}

func (m *mockPlanner) Plan(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, criteria)
	}
	return domain.NewSearchResponse(criteria, nil, domain.SearchMetadata{SearchTimeMs: 100}), nil
}

var testDefaults = SearchDefaults{MinLayoverMinutes: 90, ResultLimit: 10}

// setupTestHandler creates a test Echo instance and ItineraryHandler.
func setupTestHandler(planner *mockPlanner) *echo.Echo {
	e := echo.New()
	h := NewItineraryHandler(planner, testDefaults)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"cities":     []string{"NYC", "AUS", "CHI"},
		"travelDate": "2026-05-10",
	}
}

func TestSearchItineraries_Success(t *testing.T) {
	itinerary := domain.Itinerary{Legs: []domain.FlightRecord{
		{
			ID:          "leg-1",
			Origin:      "NYC",
			Destination: "AUS",
			Departure:   time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
			Arrival:     time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
			Price:       domain.PriceInfo{Amount: decimal.NewFromInt(100), Currency: "USD"},
			Airline:     "Delta",
		},
		{
			ID:          "leg-2",
			Origin:      "AUS",
			Destination: "CHI",
			Departure:   time.Date(2026, 5, 10, 11, 0, 0, 0, time.UTC),
			Arrival:     time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
			Price:       domain.PriceInfo{Amount: decimal.NewFromInt(50), Currency: "USD"},
			Airline:     "United",
		},
	}}

	planner := &mockPlanner{
		planFunc: func(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			return domain.NewSearchResponse(criteria, []domain.Itinerary{itinerary}, domain.SearchMetadata{
				OrdersConsidered:     6,
				CandidatesEnumerated: 2,
				SearchTimeMs:         150,
			}), nil
		},
	}

	rec := makeRequest(setupTestHandler(planner), http.MethodPost, "/api/v1/itineraries/search", validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Itineraries, 1)
	assert.Equal(t, []string{"NYC", "AUS", "CHI"}, resp.Itineraries[0].Cities)
	assert.Equal(t, "150", resp.Itineraries[0].TotalPrice.Amount)
	assert.Equal(t, 1, resp.Metadata.TotalItineraries)
	assert.Equal(t, 6, resp.Metadata.OrdersConsidered)
}

func TestSearchItineraries_DefaultsApplied(t *testing.T) {
	var got domain.SearchCriteria
	planner := &mockPlanner{
		planFunc: func(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			got = criteria
			return domain.NewSearchResponse(criteria, nil, domain.SearchMetadata{}), nil
		},
	}

	rec := makeRequest(setupTestHandler(planner), http.MethodPost, "/api/v1/itineraries/search", validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 90, got.MinLayoverMinutes, "server default fills omitted layover")
	assert.Equal(t, 10, got.Limit, "server default fills omitted limit")
}

func TestSearchItineraries_ExplicitLayoverWins(t *testing.T) {
	var got domain.SearchCriteria
	planner := &mockPlanner{
		planFunc: func(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
			got = criteria
			return domain.NewSearchResponse(criteria, nil, domain.SearchMetadata{}), nil
		},
	}

	body := validBody()
	body["minLayoverMinutes"] = 0
	rec := makeRequest(setupTestHandler(planner), http.MethodPost, "/api/v1/itineraries/search", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 0, got.MinLayoverMinutes, "explicit zero is not replaced by the default")
}

func TestSearchItineraries_MalformedBody(t *testing.T) {
	e := setupTestHandler(&mockPlanner{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries/search",
		bytes.NewBufferString(`{ not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchItineraries_ValidationErrorDetails(t *testing.T) {
	body := validBody()
	body["cities"] = []string{"NYC", "AUS"}

	rec := makeRequest(setupTestHandler(&mockPlanner{}), http.MethodPost, "/api/v1/itineraries/search", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "validation_error", detail.Code)
	assert.Contains(t, detail.Details, "cities")
}

func TestSearchItineraries_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "provider unavailable", err: domain.ErrProviderUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "cancelled", err: context.Canceled, wantStatus: http.StatusGatewayTimeout},
		{name: "domain validation", err: domain.ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mockPlanner{
				planFunc: func(context.Context, domain.SearchCriteria) (*domain.SearchResponse, error) {
					return nil, tt.err
				},
			}

			rec := makeRequest(setupTestHandler(planner), http.MethodPost, "/api/v1/itineraries/search", validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	rec := makeRequest(setupTestHandler(&mockPlanner{}), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
