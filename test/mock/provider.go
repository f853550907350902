// Package mock provides test doubles for the itinerary planner.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It serves canned records per route and supports configurable delays and
// errors for testing timeouts and partial failures.
type Provider struct {
	name      string
	records   map[domain.Route][]domain.FlightRecord
	dropped   map[domain.Route]int
	routeErrs map[domain.Route]error
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:      name,
		records:   make(map[domain.Route][]domain.FlightRecord),
		dropped:   make(map[domain.Route]int),
		routeErrs: make(map[domain.Route]error),
	}
}

// WithRecords adds flight records, keyed by each record's route.
func (p *Provider) WithRecords(records ...domain.FlightRecord) *Provider {
	for _, r := range records {
		p.records[r.RouteOf()] = append(p.records[r.RouteOf()], r)
	}
	return p
}

// WithDropped configures the dropped-record count reported for a route.
func (p *Provider) WithDropped(origin, destination string, n int) *Provider {
	p.dropped[domain.Route{Origin: origin, Destination: destination}] = n
	return p
}

// WithRouteError configures a fetch error for a single route.
func (p *Provider) WithRouteError(origin, destination string, err error) *Provider {
	p.routeErrs[domain.Route{Origin: origin, Destination: destination}] = err
	return p
}

// WithError configures the provider to fail every fetch with the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Fetch implements domain.FlightProvider.Fetch.
// It respects context cancellation, applies the configured delay, and returns
// the configured records or error for the route.
func (p *Provider) Fetch(ctx context.Context, origin, destination, _ string) (domain.FetchResult, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.FetchResult{}, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return domain.FetchResult{}, ctx.Err()
	}

	if p.err != nil {
		return domain.FetchResult{}, p.err
	}

	route := domain.Route{Origin: origin, Destination: destination}
	if err := p.routeErrs[route]; err != nil {
		return domain.FetchResult{}, err
	}

	return domain.FetchResult{
		Records: p.records[route],
		Dropped: p.dropped[route],
	}, nil
}

// CallCount returns the number of times Fetch was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// Record builds a flight record on the given travel day with hour:minute
// times and an exact decimal price.
func Record(airline, origin, destination string, day time.Time, depH, depM, arrH, arrM int, amount string) domain.FlightRecord {
	return domain.FlightRecord{
		ID:          airline + "-" + origin + "-" + destination,
		Origin:      origin,
		Destination: destination,
		Departure:   time.Date(day.Year(), day.Month(), day.Day(), depH, depM, 0, 0, time.UTC),
		Arrival:     time.Date(day.Year(), day.Month(), day.Day(), arrH, arrM, 0, 0, time.UTC),
		Price:       domain.PriceInfo{Amount: decimal.RequireFromString(amount), Currency: "USD"},
		Airline:     airline,
	}
}

// FullCoverage returns records for every ordered city pair at several
// staggered departure slots, so that every visiting order has at least one
// feasible combination under layover minimums up to two hours.
func FullCoverage(cities []string, day time.Time) []domain.FlightRecord {
	var records []domain.FlightRecord
	for _, origin := range cities {
		for _, destination := range cities {
			if origin == destination {
				continue
			}
			for _, hour := range []int{6, 10, 14, 18} {
				records = append(records,
					Record("Delta", origin, destination, day, hour, 0, hour+1, 0, "100"))
			}
		}
	}
	return records
}
