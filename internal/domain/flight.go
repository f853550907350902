// Package domain contains the core business entities and rules for the
// multi-city itinerary planner. These entities are provider-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightRecord represents a single non-stop flight serving one city pair.
// Records are produced by the provider collaborator and never mutated afterwards.
type FlightRecord struct {
	// ID is a unique identifier for this record (generated internally)
	ID string `json:"id"`

	// Origin is the IATA code of the departure airport (e.g., "NYC")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "AUS")
	Destination string `json:"destination"`

	// Departure is the scheduled departure time
	Departure time.Time `json:"departure"`

	// Arrival is the scheduled arrival time
	Arrival time.Time `json:"arrival"`

	// Price is the fare for this flight
	Price PriceInfo `json:"price"`

	// Airline is the operating airline name (e.g., "Delta")
	Airline string `json:"airline"`
}

// PriceInfo contains pricing information for a flight.
// Amount is an exact decimal so that summing leg prices across an itinerary
// never accumulates binary floating-point error.
type PriceInfo struct {
	// Amount is the fare amount
	Amount decimal.Decimal `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Add returns the sum of two prices. The currency of the receiver wins; an
// empty receiver currency takes the other side's.
func (p PriceInfo) Add(other PriceInfo) PriceInfo {
	currency := p.Currency
	if currency == "" {
		currency = other.Currency
	}
	return PriceInfo{
		Amount:   p.Amount.Add(other.Amount),
		Currency: currency,
	}
}

// Route identifies an ordered (origin, destination) city pair.
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// String returns the route in "ORIGIN-DESTINATION" form.
func (r Route) String() string {
	return r.Origin + "-" + r.Destination
}

// RouteOf returns the route served by a flight record.
func (f *FlightRecord) RouteOf() Route {
	return Route{Origin: f.Origin, Destination: f.Destination}
}
