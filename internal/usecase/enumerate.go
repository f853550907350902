// Package usecase contains the itinerary construction engine and the planner
// that orchestrates it: permutation enumeration, canonical-key deduplication,
// constraint validation, and price ranking.
package usecase

import (
	"iter"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// Enumerate returns a lazy sequence of itinerary candidates for the given
// cities. Every permutation of the city list is one visit order; for each
// order the candidates are the Cartesian product of the per-leg flight
// choices in the table.
//
// An order with any uncovered leg contributes nothing: the check runs per leg
// before the product is materialized, which is the dominant pruning step when
// route coverage is sparse. Fewer than two cities yields an empty sequence.
func Enumerate(cities []string, table *domain.FlightTable) iter.Seq[domain.Itinerary] {
	return func(yield func(domain.Itinerary) bool) {
		if len(cities) < 2 {
			return
		}
		order := make([]string, len(cities))
		copy(order, cities)
		permute(order, 0, func() bool {
			return emitOrder(order, table, yield)
		})
	}
}

// permute generates every permutation of order[k:] in place and calls visit
// once per complete permutation. Returning false from visit aborts the
// remaining permutations; permute reports whether generation ran to the end.
func permute(order []string, k int, visit func() bool) bool {
	if k == len(order)-1 {
		return visit()
	}
	for i := k; i < len(order); i++ {
		order[k], order[i] = order[i], order[k]
		ok := permute(order, k+1, visit)
		order[k], order[i] = order[i], order[k]
		if !ok {
			return false
		}
	}
	return true
}

// emitOrder yields every flight combination for one city order, or nothing if
// any leg has no coverage. Reports whether enumeration should continue.
func emitOrder(order []string, table *domain.FlightTable, yield func(domain.Itinerary) bool) bool {
	legCount := len(order) - 1
	options := make([][]domain.FlightRecord, legCount)
	for i := 0; i < legCount; i++ {
		choices := table.Lookup(order[i], order[i+1])
		if len(choices) == 0 {
			// Infeasible order; skip before building the product.
			return true
		}
		options[i] = choices
	}

	// Odometer over the per-leg choice indexes.
	idx := make([]int, legCount)
	for {
		legs := make([]domain.FlightRecord, legCount)
		for i, j := range idx {
			legs[i] = options[i][j]
		}
		if !yield(domain.Itinerary{Legs: legs}) {
			return false
		}

		pos := legCount - 1
		for ; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < len(options[pos]) {
				break
			}
			idx[pos] = 0
		}
		if pos < 0 {
			return true
		}
	}
}
