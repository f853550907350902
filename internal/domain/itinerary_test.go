package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// leg builds a flight record with hour-level times on the reference travel day.
func leg(t *testing.T, airline, origin, destination string, depHour, arrHour int, amount string) FlightRecord {
	t.Helper()
	return FlightRecord{
		Origin:      origin,
		Destination: destination,
		Departure:   time.Date(2026, 5, 10, depHour, 0, 0, 0, time.UTC),
		Arrival:     time.Date(2026, 5, 10, arrHour, 0, 0, 0, time.UTC),
		Price:       price(t, amount),
		Airline:     airline,
	}
}

func TestItinerary_TotalPrice(t *testing.T) {
	it := Itinerary{Legs: []FlightRecord{
		leg(t, "Delta", "NYC", "AUS", 8, 11, "54.00"),
		leg(t, "United", "AUS", "CHI", 13, 16, "120.50"),
		leg(t, "Southwest", "CHI", "BNA", 18, 20, "33.25"),
	}}

	total := it.TotalPrice()
	assert.True(t, total.Amount.Equal(decimal.RequireFromString("207.75")),
		"expected exactly 207.75, got %s", total.Amount)
	assert.Equal(t, "USD", total.Currency)
}

func TestItinerary_Cities(t *testing.T) {
	it := Itinerary{Legs: []FlightRecord{
		leg(t, "Delta", "NYC", "AUS", 8, 11, "100"),
		leg(t, "United", "AUS", "CHI", 13, 16, "100"),
	}}

	assert.Equal(t, []string{"NYC", "AUS", "CHI"}, it.Cities())

	empty := Itinerary{}
	assert.Nil(t, empty.Cities())
}

func TestItinerary_DepartureAndArrival(t *testing.T) {
	it := Itinerary{Legs: []FlightRecord{
		leg(t, "Delta", "NYC", "AUS", 8, 11, "100"),
		leg(t, "United", "AUS", "CHI", 13, 16, "100"),
	}}

	assert.Equal(t, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC), it.Departure())
	assert.Equal(t, time.Date(2026, 5, 10, 16, 0, 0, 0, time.UTC), it.Arrival())

	empty := Itinerary{}
	assert.True(t, empty.Departure().IsZero())
	assert.True(t, empty.Arrival().IsZero())
}

func TestItinerary_CanonicalKey(t *testing.T) {
	base := []FlightRecord{
		leg(t, "Delta", "NYC", "AUS", 8, 11, "100"),
		leg(t, "United", "AUS", "CHI", 13, 16, "50"),
	}

	a := Itinerary{Legs: base}

	t.Run("same legs produce the same key", func(t *testing.T) {
		b := Itinerary{Legs: []FlightRecord{base[0], base[1]}}
		assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())
	})

	t.Run("price does not disambiguate", func(t *testing.T) {
		cheaper := base[0]
		cheaper.Price = price(t, "1.00")
		b := Itinerary{Legs: []FlightRecord{cheaper, base[1]}}
		assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())
	})

	t.Run("airline disambiguates", func(t *testing.T) {
		other := base[0]
		other.Airline = "American"
		b := Itinerary{Legs: []FlightRecord{other, base[1]}}
		assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
	})

	t.Run("departure time disambiguates", func(t *testing.T) {
		other := base[0]
		other.Departure = other.Departure.Add(time.Minute)
		b := Itinerary{Legs: []FlightRecord{other, base[1]}}
		assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
	})

	t.Run("leg order disambiguates", func(t *testing.T) {
		b := Itinerary{Legs: []FlightRecord{base[1], base[0]}}
		assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
	})
}
