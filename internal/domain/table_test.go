package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// tableFlight builds a minimal record for table tests.
func tableFlight(id, origin, destination string) FlightRecord {
	return FlightRecord{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Departure:   time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
		Arrival:     time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		Price:       PriceInfo{Amount: decimal.NewFromInt(100), Currency: "USD"},
		Airline:     "Delta",
	}
}

func TestFlightTable_AddAndLookup(t *testing.T) {
	table := NewFlightTable()
	table.Add(
		tableFlight("1", "NYC", "AUS"),
		tableFlight("2", "NYC", "AUS"),
		tableFlight("3", "AUS", "NYC"),
	)

	nycAus := table.Lookup("NYC", "AUS")
	assert.Len(t, nycAus, 2)
	// Insertion order is preserved; it becomes the enumeration order.
	assert.Equal(t, "1", nycAus[0].ID)
	assert.Equal(t, "2", nycAus[1].ID)

	assert.Len(t, table.Lookup("AUS", "NYC"), 1)
	assert.Empty(t, table.Lookup("NYC", "CHI"))
}

func TestFlightTable_HasCoverage(t *testing.T) {
	table := NewFlightTable()
	table.Add(tableFlight("1", "NYC", "AUS"))

	assert.True(t, table.HasCoverage("NYC", "AUS"))
	assert.False(t, table.HasCoverage("AUS", "NYC"))
}

func TestFlightTable_LenAndRoutes(t *testing.T) {
	table := NewFlightTable()
	assert.Zero(t, table.Len())
	assert.Empty(t, table.Routes())

	table.Add(
		tableFlight("1", "NYC", "AUS"),
		tableFlight("2", "NYC", "AUS"),
		tableFlight("3", "AUS", "CHI"),
	)

	assert.Equal(t, 3, table.Len())
	routes := table.Routes()
	assert.Len(t, routes, 2)
	assert.Contains(t, routes, Route{Origin: "NYC", Destination: "AUS"})
	assert.Contains(t, routes, Route{Origin: "AUS", Destination: "CHI"})
}
