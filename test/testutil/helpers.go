// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// FeedListing is one raw fare row for a generated route feed file.
type FeedListing struct {
	Airline   string `json:"airline"`
	Price     string `json:"price"`
	Departure string `json:"departure_time"`
	Arrival   string `json:"arrival_time"`
	Stops     int    `json:"stops"`
}

// WriteRouteFeed writes a provider feed file for the given route and date
// into dir, using the {ORIGIN}_{DESTINATION}_{DATE}.json naming convention.
func WriteRouteFeed(t *testing.T, dir, origin, destination, date string, listings []FeedListing) {
	t.Helper()

	feed := map[string]interface{}{
		"status":  "success",
		"flights": listings,
	}
	data, err := json.Marshal(feed)
	if err != nil {
		t.Fatalf("Failed to marshal feed for %s-%s: %v", origin, destination, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.json", origin, destination, date))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write feed file %s: %v", path, err)
	}
}

// Listing builds a non-stop feed listing with ISO timestamps on the given
// date at hour:minute precision.
func Listing(airline, price, date string, depH, depM, arrH, arrM int) FeedListing {
	return FeedListing{
		Airline:   airline,
		Price:     price,
		Departure: fmt.Sprintf("%sT%02d:%02d:00Z", date, depH, depM),
		Arrival:   fmt.Sprintf("%sT%02d:%02d:00Z", date, arrH, arrM),
		Stops:     0,
	}
}
