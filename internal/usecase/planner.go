package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/retry"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 30 * time.Second
	DefaultRouteTimeout  = 10 * time.Second
)

// ItineraryPlanner defines the interface for multi-city itinerary searches.
type ItineraryPlanner interface {
	// Plan fetches flight data for every ordered city pair, builds the flight
	// table, and runs the construction pipeline: enumerate, dedupe, validate,
	// rank. An empty result set is a normal outcome, not an error.
	Plan(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
}

// itineraryPlanner implements ItineraryPlanner with a scatter-gather fetch
// over route pairs followed by the pure in-memory construction pipeline.
type itineraryPlanner struct {
	provider      domain.FlightProvider
	globalTimeout time.Duration
	routeTimeout  time.Duration
	retryConfig   retry.Config
	clock         timeutil.Clock
}

// Config contains configuration options for the planner.
type Config struct {
	GlobalTimeout time.Duration
	RouteTimeout  time.Duration
	Retry         *retry.Config
}

// DefaultConfig returns the default planner configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		RouteTimeout:  DefaultRouteTimeout,
	}
}

// NewItineraryPlanner creates a planner backed by the given flight provider.
// If config is nil, defaults are used.
func NewItineraryPlanner(provider domain.FlightProvider, config *Config) ItineraryPlanner {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.RouteTimeout > 0 {
			cfg.RouteTimeout = config.RouteTimeout
		}
		if config.Retry != nil {
			cfg.Retry = config.Retry
		}
	}

	retryConfig := retry.RouteFetchConfig.WithRetryIf(domain.IsRetryable)
	if cfg.Retry != nil {
		retryConfig = *cfg.Retry
	}

	return &itineraryPlanner{
		provider:      provider,
		globalTimeout: cfg.GlobalTimeout,
		routeTimeout:  cfg.RouteTimeout,
		retryConfig:   retryConfig,
		clock:         timeutil.NewRealClock(),
	}
}

// routeOutcome holds the fetch result for a single route pair.
type routeOutcome struct {
	Route  domain.Route
	Result domain.FetchResult
	Err    error
}

// Plan implements ItineraryPlanner.
func (p *itineraryPlanner) Plan(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	start := p.clock.Now()

	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if p.provider == nil {
		return nil, domain.ErrProviderUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.globalTimeout)
	defer cancel()

	table, metadata, err := p.buildFlightTable(ctx, criteria)
	if err != nil {
		return nil, err
	}

	itineraries := p.construct(criteria, table, &metadata)

	metadata.SearchTimeMs = p.clock.Now().Sub(start).Milliseconds()
	return domain.NewSearchResponse(criteria, itineraries, metadata), nil
}

// buildFlightTable fetches every ordered city pair concurrently and merges the
// results into one table. All outcomes pass through the single merge point
// before construction, so cross-route duplicates cannot slip past dedup.
func (p *itineraryPlanner) buildFlightTable(ctx context.Context, criteria domain.SearchCriteria) (*domain.FlightTable, domain.SearchMetadata, error) {
	routes := orderedPairs(criteria.Cities)

	outcomes := make(chan routeOutcome, len(routes))
	var wg sync.WaitGroup

	for _, route := range routes {
		wg.Add(1)
		go func(route domain.Route) {
			defer wg.Done()
			p.fetchRoute(ctx, route, criteria.TravelDate, outcomes)
		}(route)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	table := domain.NewFlightTable()
	metadata := domain.SearchMetadata{
		Routes: make([]domain.RouteDiagnostic, 0, len(routes)),
	}
	failed := 0

	for outcome := range outcomes {
		diag := domain.RouteDiagnostic{
			Route:   outcome.Route,
			Flights: len(outcome.Result.Records),
			Dropped: outcome.Result.Dropped,
			Failed:  outcome.Err != nil,
		}
		metadata.Routes = append(metadata.Routes, diag)
		metadata.RecordsDropped += outcome.Result.Dropped

		if outcome.Err != nil {
			failed++
		}
		if len(outcome.Result.Records) == 0 {
			metadata.UncoveredRoutes = append(metadata.UncoveredRoutes, outcome.Route)
			continue
		}
		table.Add(outcome.Result.Records...)
	}

	if failed == len(routes) {
		return nil, metadata, domain.ErrProviderUnavailable
	}

	sortRouteDiagnostics(metadata.Routes)
	sortRoutes(metadata.UncoveredRoutes)
	return table, metadata, nil
}

// fetchRoute queries the provider for one route with retry, a per-route
// timeout, and panic recovery, so a single misbehaving fetch cannot take down
// the whole search.
func (p *itineraryPlanner) fetchRoute(ctx context.Context, route domain.Route, date string, outcomes chan<- routeOutcome) {
	ctx, cancel := context.WithTimeout(ctx, p.routeTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			outcomes <- routeOutcome{
				Route: route,
				Err:   domain.NewProviderError(p.provider.Name(), route, fmt.Errorf("provider panic: %v", r)),
			}
		}
	}()

	result, err := retry.DoWithResult(ctx, func() (domain.FetchResult, error) {
		return p.provider.Fetch(ctx, route.Origin, route.Destination, date)
	}, p.retryConfig)

	outcomes <- routeOutcome{Route: route, Result: result, Err: err}
}

// construct runs the pure pipeline over the merged table: enumerate candidates,
// drop canonical-key duplicates, validate timing constraints, rank by price,
// then apply the result limit.
func (p *itineraryPlanner) construct(criteria domain.SearchCriteria, table *domain.FlightTable, metadata *domain.SearchMetadata) []domain.Itinerary {
	metadata.OrdersConsidered = factorial(len(criteria.Cities))

	dedup := NewDeduplicator()
	constraints := criteria.Constraints()

	var accepted []domain.Itinerary
	for it := range Enumerate(criteria.Cities, table) {
		metadata.CandidatesEnumerated++
		if !dedup.FirstSeen(&it) {
			continue
		}
		if !constraints.Accepts(&it) {
			metadata.CandidatesRejected++
			continue
		}
		accepted = append(accepted, it)
	}
	metadata.DuplicatesSkipped = dedup.Skipped()

	ranked := RankItineraries(accepted)
	if criteria.Limit > 0 && len(ranked) > criteria.Limit {
		ranked = ranked[:criteria.Limit]
	}
	return ranked
}

// orderedPairs returns every ordered (origin, destination) pair of distinct
// cities. All pairs are fetched, not just consecutive ones, because every
// pair is consecutive in some permutation.
func orderedPairs(cities []string) []domain.Route {
	pairs := make([]domain.Route, 0, len(cities)*(len(cities)-1))
	for _, origin := range cities {
		for _, destination := range cities {
			if origin == destination {
				continue
			}
			pairs = append(pairs, domain.Route{Origin: origin, Destination: destination})
		}
	}
	return pairs
}

// factorial returns n! for the small n this planner accepts.
func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

func sortRouteDiagnostics(diags []domain.RouteDiagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		return diags[i].Route.String() < diags[j].Route.String()
	})
}

func sortRoutes(routes []domain.Route) {
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].String() < routes[j].String()
	})
}

// Ensure itineraryPlanner implements ItineraryPlanner at compile time.
var _ ItineraryPlanner = (*itineraryPlanner)(nil)
