package domain

import (
	"context"
	"sync"
)

// FetchResult is the outcome of one route fetch from a provider.
type FetchResult struct {
	// Records are the well-formed flight records for the route
	Records []FlightRecord

	// Dropped counts records the provider discarded because their time or
	// price fields could not be parsed
	Dropped int
}

// FlightProvider is the contract for the external flight-data collaborator.
// Implementations own fetching, normalization, and retry; the planner core
// only ever sees well-formed records.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Fetch returns the flights serving (origin, destination) on the given
	// YYYY-MM-DD date. A route with no coverage yields an empty result, not
	// an error; errors mean the fetch itself failed.
	Fetch(ctx context.Context, origin, destination, date string) (FetchResult, error)
}

// ProviderRegistry holds the available flight providers by name.
// It is safe for concurrent use.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]FlightProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]FlightProvider),
	}
}

// Register adds a provider. A provider with the same name replaces the
// previous registration. Nil providers are ignored.
func (r *ProviderRegistry) Register(p FlightProvider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider with the given name, or nil if not registered.
func (r *ProviderRegistry) Get(name string) FlightProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns all registered providers.
func (r *ProviderRegistry) GetAll() []FlightProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]FlightProvider, 0, len(r.providers))
	for _, p := range r.providers {
		all = append(all, p)
	}
	return all
}

// Names returns the names of all registered providers.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
