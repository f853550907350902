package googleflights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Google Flights feed provider.
const ProviderName = "googleflights"

// Adapter serves flight records for a route from per-route JSON feed files
// named {ORIGIN}_{DESTINATION}_{DATE}.json under a data directory.
type Adapter struct {
	dataDir string
	log     *logger.Logger
}

// NewAdapter creates an adapter reading feeds from dataDir.
func NewAdapter(dataDir string) *Adapter {
	return NewAdapterWithLogger(dataDir, logger.Nop())
}

// NewAdapterWithLogger creates an adapter with an explicit logger.
func NewAdapterWithLogger(dataDir string, log *logger.Logger) *Adapter {
	return &Adapter{dataDir: dataDir, log: log}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Fetch implements domain.FlightProvider. A missing feed file means the route
// has no coverage and yields an empty result, not an error. Read failures are
// retryable; a malformed feed is not.
func (a *Adapter) Fetch(ctx context.Context, origin, destination, date string) (domain.FetchResult, error) {
	route := domain.Route{Origin: origin, Destination: destination}

	if err := ctx.Err(); err != nil {
		return domain.FetchResult{}, domain.NewProviderError(ProviderName, route, err)
	}

	path := a.feedPath(origin, destination, date)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.Debug().Str("route", route.String()).Str("path", path).
				Msg("no feed file for route")
			return domain.FetchResult{}, nil
		}
		return domain.FetchResult{}, domain.NewRetryableProviderError(ProviderName, route, err)
	}

	var feed FlightFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return domain.FetchResult{}, domain.NewProviderError(ProviderName, route,
			fmt.Errorf("malformed feed: %w", err))
	}
	if feed.Status != "" && feed.Status != "success" {
		return domain.FetchResult{}, domain.NewRetryableProviderError(ProviderName, route,
			fmt.Errorf("feed status %q", feed.Status))
	}

	records, dropped, err := normalize(feed.Flights, origin, destination, date)
	if err != nil {
		return domain.FetchResult{}, domain.NewProviderError(ProviderName, route, err)
	}
	for _, d := range dropped {
		a.log.Warn().Str("route", route.String()).Int("listing", d.Index).
			Err(d.Reason).Msg("dropped unparseable feed listing")
	}

	return domain.FetchResult{Records: records, Dropped: len(dropped)}, nil
}

// feedPath builds the fixture path for a route and travel date.
func (a *Adapter) feedPath(origin, destination, date string) string {
	return filepath.Join(a.dataDir, fmt.Sprintf("%s_%s_%s.json", origin, destination, date))
}
