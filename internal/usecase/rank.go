package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
)

// RankItineraries sorts itineraries by total price ascending. The sort is
// stable, so equally priced itineraries keep their discovery order. Totals
// are exact decimal sums; the input slice is not mutated.
func RankItineraries(itineraries []domain.Itinerary) []domain.Itinerary {
	if len(itineraries) <= 1 {
		result := make([]domain.Itinerary, len(itineraries))
		copy(result, itineraries)
		return result
	}

	type candidate struct {
		itinerary domain.Itinerary
		total     decimal.Decimal
	}

	candidates := make([]candidate, len(itineraries))
	for i, it := range itineraries {
		candidates[i] = candidate{itinerary: it, total: it.TotalPrice().Amount}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].total.LessThan(candidates[j].total)
	})

	result := make([]domain.Itinerary, len(candidates))
	for i, c := range candidates {
		result[i] = c.itinerary
	}
	return result
}
