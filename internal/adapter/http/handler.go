// Package http provides the HTTP handler layer for the itinerary planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripweaver/multicity-itinerary-planner/internal/adapter/http/response"
	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary search endpoints.
type ItineraryHandler struct {
	planner  usecase.ItineraryPlanner
	defaults SearchDefaults
}

// NewItineraryHandler creates a new ItineraryHandler with the given planner.
func NewItineraryHandler(planner usecase.ItineraryPlanner, defaults SearchDefaults) *ItineraryHandler {
	return &ItineraryHandler{
		planner:  planner,
		defaults: defaults,
	}
}

// SearchItineraries handles POST /api/v1/itineraries/search
//
// @Summary Search for multi-city itineraries
// @Description Find the cheapest itineraries visiting every requested city exactly once
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body SearchItinerariesRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/search [post]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	var req SearchItinerariesRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req, h.defaults)

	result, err := h.planner.Plan(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrProviderUnavailable) {
		return response.ServiceUnavailable(c)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
