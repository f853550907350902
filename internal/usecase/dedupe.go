package usecase

import "github.com/tripweaver/multicity-itinerary-planner/internal/domain"

// Deduplicator collapses itinerary candidates that share a canonical key, so
// the same physical itinerary reached through different enumeration paths is
// counted once. A deduplicator is scoped to a single search run and is not
// safe for concurrent use.
type Deduplicator struct {
	seen    map[string]struct{}
	skipped int
}

// NewDeduplicator creates an empty deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// FirstSeen reports whether the candidate's canonical key has not been seen
// before, recording the key. Only first-seen candidates should pass on to
// validation.
func (d *Deduplicator) FirstSeen(it *domain.Itinerary) bool {
	key := it.CanonicalKey()
	if _, dup := d.seen[key]; dup {
		d.skipped++
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Skipped returns how many duplicate candidates were dropped so far.
func (d *Deduplicator) Skipped() int {
	return d.skipped
}
