package domain

import (
	"strings"
	"time"
)

// Itinerary is an ordered sequence of flight legs visiting every requested city
// exactly once. An itinerary over N cities has N-1 legs; leg i departs from the
// arrival city of leg i-1.
type Itinerary struct {
	// Legs are the flights in travel order
	Legs []FlightRecord `json:"legs"`
}

// TotalPrice returns the exact sum of all leg prices.
func (it *Itinerary) TotalPrice() PriceInfo {
	var total PriceInfo
	for _, leg := range it.Legs {
		total = total.Add(leg.Price)
	}
	return total
}

// Cities returns the visited city codes in order: the origin of every leg
// followed by the final leg's destination.
func (it *Itinerary) Cities() []string {
	if len(it.Legs) == 0 {
		return nil
	}
	cities := make([]string, 0, len(it.Legs)+1)
	for _, leg := range it.Legs {
		cities = append(cities, leg.Origin)
	}
	return append(cities, it.Legs[len(it.Legs)-1].Destination)
}

// Departure returns the departure time of the first leg.
func (it *Itinerary) Departure() time.Time {
	if len(it.Legs) == 0 {
		return time.Time{}
	}
	return it.Legs[0].Departure
}

// Arrival returns the arrival time of the last leg.
func (it *Itinerary) Arrival() time.Time {
	if len(it.Legs) == 0 {
		return time.Time{}
	}
	return it.Legs[len(it.Legs)-1].Arrival
}

// canonicalKeySep separates fields and legs inside a canonical key. It may not
// appear in airline names or airport codes.
const canonicalKeySep = "|"

// CanonicalKey returns the deduplication identity of the itinerary: the ordered
// per-leg tuple of (airline, origin, destination, departure, arrival).
//
// Price is deliberately not part of the key: two fares on the same physical
// flight are the same itinerary, and the first-seen candidate wins.
func (it *Itinerary) CanonicalKey() string {
	var b strings.Builder
	for i, leg := range it.Legs {
		if i > 0 {
			b.WriteString(canonicalKeySep)
		}
		b.WriteString(leg.Airline)
		b.WriteString(canonicalKeySep)
		b.WriteString(leg.Origin)
		b.WriteString(canonicalKeySep)
		b.WriteString(leg.Destination)
		b.WriteString(canonicalKeySep)
		b.WriteString(leg.Departure.Format(time.RFC3339Nano))
		b.WriteString(canonicalKeySep)
		b.WriteString(leg.Arrival.Format(time.RFC3339Nano))
	}
	return b.String()
}
