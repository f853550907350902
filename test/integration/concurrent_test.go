package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/multicity-itinerary-planner/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that multiple concurrent
// search requests are handled correctly without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithRecords(mock.FullCoverage([]string{"NYC", "AUS", "CHI"}, TravelDay)...)

	ts := NewTestServer(CreatePlanner(provider))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(DefaultSearchRequest())
		}(i)
	}

	wg.Wait()

	// Every request should succeed and see the same itinerary set
	first, err := results[0].ParseSearchResponse()
	require.NoError(t, err)
	require.NotEmpty(t, first.Itineraries)

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		resp, err := results[i].ParseSearchResponse()
		require.NoError(t, err)
		assert.Len(t, resp.Itineraries, len(first.Itineraries), "request %d result count", i)
		assert.Equal(t, first.Itineraries[0].TotalPrice, resp.Itineraries[0].TotalPrice,
			"request %d should rank the same itinerary first", i)
	}
}

// TestConcurrent_ProviderCallCountAccuracy tests that route fetches are
// counted accurately under concurrent access. Each search for three cities
// fetches six ordered routes.
func TestConcurrent_ProviderCallCountAccuracy(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithRecords(mock.FullCoverage([]string{"NYC", "AUS", "CHI"}, TravelDay)...)

	ts := NewTestServer(CreatePlanner(provider))

	numRequests := 50
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ts.SearchRequest(DefaultSearchRequest())
		}()
	}

	wg.Wait()

	assert.Equal(t, numRequests*6, provider.CallCount())
}

// TestConcurrent_NoRaceCondition is designed to be run with -race. It mixes
// request shapes so different code paths execute concurrently.
func TestConcurrent_NoRaceCondition(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithRecords(mock.FullCoverage([]string{"NYC", "AUS", "CHI", "DEN"}, TravelDay)...)

	ts := NewTestServer(CreatePlanner(provider))

	relaxed := 30
	requests := []SearchRequestBody{
		DefaultSearchRequest(),
		{Cities: []string{"NYC", "AUS", "CHI", "DEN"}, TravelDate: TravelDate},
		{Cities: []string{"DEN", "CHI", "AUS"}, TravelDate: TravelDate, MinLayoverMinutes: &relaxed, Limit: 2},
		{Cities: []string{"NYC", "AUS"}, TravelDate: TravelDate}, // rejected by validation
	}

	numGoroutines := 50
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_ = ts.SearchRequest(requests[idx%len(requests)])
		}(i)
	}

	wg.Wait()
}

// TestConcurrent_MixedSuccessAndFailure runs concurrent searches against a
// provider where one route always fails; every request should still succeed
// with a consistent partial result.
func TestConcurrent_MixedSuccessAndFailure(t *testing.T) {
	provider := mock.NewProvider("mock").
		WithRecords(mock.FullCoverage([]string{"NYC", "AUS", "CHI"}, TravelDay)...).
		WithRouteError("CHI", "NYC", stubError{})

	ts := NewTestServer(CreatePlanner(provider))

	numRequests := 20
	var wg sync.WaitGroup
	successCount := 0
	var mu sync.Mutex

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.SearchRequest(DefaultSearchRequest())
			if resp.Code != http.StatusOK {
				return
			}
			if searchResp, err := resp.ParseSearchResponse(); err == nil && len(searchResp.Itineraries) > 0 {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, numRequests, successCount, "partial coverage should still yield results for every request")
}
