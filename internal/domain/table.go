package domain

// FlightTable maps each (origin, destination) pair to the flights serving it.
// A table is built once per search run from provider output and is read-only
// during itinerary construction.
type FlightTable struct {
	flights map[Route][]FlightRecord
}

// NewFlightTable creates an empty flight table.
func NewFlightTable() *FlightTable {
	return &FlightTable{
		flights: make(map[Route][]FlightRecord),
	}
}

// Add appends flight records to their routes. Records keep their insertion
// order, which later becomes the enumeration (and rank tie-break) order.
func (t *FlightTable) Add(records ...FlightRecord) {
	for _, r := range records {
		route := r.RouteOf()
		t.flights[route] = append(t.flights[route], r)
	}
}

// Lookup returns the flights serving a route. The returned slice must not be
// modified by callers.
func (t *FlightTable) Lookup(origin, destination string) []FlightRecord {
	return t.flights[Route{Origin: origin, Destination: destination}]
}

// HasCoverage reports whether at least one flight serves the route.
func (t *FlightTable) HasCoverage(origin, destination string) bool {
	return len(t.flights[Route{Origin: origin, Destination: destination}]) > 0
}

// Routes returns all routes with at least one flight.
func (t *FlightTable) Routes() []Route {
	routes := make([]Route, 0, len(t.flights))
	for route := range t.flights {
		routes = append(routes, route)
	}
	return routes
}

// Len returns the total number of flight records in the table.
func (t *FlightTable) Len() int {
	total := 0
	for _, records := range t.flights {
		total += len(records)
	}
	return total
}
