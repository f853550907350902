package domain

import "time"

// Constraints holds the timing rules an itinerary candidate must satisfy.
// The zero value accepts any candidate whose layovers are non-negative.
type Constraints struct {
	// MinLayover is the minimum gap between one leg's arrival and the next
	// leg's departure. The boundary is inclusive: a layover of exactly
	// MinLayover passes.
	MinLayover time.Duration `json:"minLayover"`

	// EarliestDeparture, if set, is the earliest allowed departure time of the
	// first leg (inclusive).
	EarliestDeparture *time.Time `json:"earliestDeparture,omitempty"`

	// LatestArrival, if set, is the latest allowed arrival time of the last
	// leg (inclusive).
	LatestArrival *time.Time `json:"latestArrival,omitempty"`
}

// Accepts reports whether the candidate satisfies every constraint.
// Checks run in order: earliest departure, latest arrival, then each
// consecutive layover. The function is pure.
func (c *Constraints) Accepts(it *Itinerary) bool {
	if len(it.Legs) == 0 {
		return false
	}

	if c.EarliestDeparture != nil && it.Departure().Before(*c.EarliestDeparture) {
		return false
	}

	if c.LatestArrival != nil && it.Arrival().After(*c.LatestArrival) {
		return false
	}

	for i := 0; i < len(it.Legs)-1; i++ {
		layover := it.Legs[i+1].Departure.Sub(it.Legs[i].Arrival)
		if layover < c.MinLayover {
			return false
		}
	}

	return true
}
