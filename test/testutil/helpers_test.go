package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2026-05-10T10:50:00Z")
	assert.Equal(t, time.Date(2026, 5, 10, 10, 50, 0, 0, time.UTC), parsed)
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-05-10")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.May, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
}

func TestPtr(t *testing.T) {
	s := Ptr("hello")
	require.NotNil(t, s)
	assert.Equal(t, "hello", *s)

	n := IntPtr(90)
	require.NotNil(t, n)
	assert.Equal(t, 90, *n)
}

func TestWriteRouteFeed(t *testing.T) {
	dir := t.TempDir()
	listings := []FeedListing{
		Listing("Delta", "$54", "2026-05-10", 8, 0, 9, 30),
	}

	WriteRouteFeed(t, dir, "NYC", "AUS", "2026-05-10", listings)

	data, err := os.ReadFile(filepath.Join(dir, "NYC_AUS_2026-05-10.json"))
	require.NoError(t, err)

	var feed struct {
		Status  string        `json:"status"`
		Flights []FeedListing `json:"flights"`
	}
	require.NoError(t, json.Unmarshal(data, &feed))

	assert.Equal(t, "success", feed.Status)
	require.Len(t, feed.Flights, 1)
	assert.Equal(t, "Delta", feed.Flights[0].Airline)
	assert.Equal(t, "2026-05-10T08:00:00Z", feed.Flights[0].Departure)
	assert.Equal(t, "2026-05-10T09:30:00Z", feed.Flights[0].Arrival)
	assert.Zero(t, feed.Flights[0].Stops)
}
