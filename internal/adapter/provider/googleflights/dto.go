package googleflights

// FlightFeed is the top-level shape of a per-route feed file.
type FlightFeed struct {
	Status  string          `json:"status"`
	Flights []FlightListing `json:"flights"`
}

// FlightListing is one raw fare row as it appears in the feed. Price is a
// display string like "$54" and the time fields mix clock-and-date wording
// with ISO timestamps.
type FlightListing struct {
	Airline   string `json:"airline"`
	Price     string `json:"price"`
	Departure string `json:"departure_time"`
	Arrival   string `json:"arrival_time"`
	Stops     int    `json:"stops"`
}
