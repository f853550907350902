package googleflights

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/multicity-itinerary-planner/internal/domain"
	"github.com/tripweaver/multicity-itinerary-planner/internal/infrastructure/timeutil"
)

// DefaultCurrency is assumed for feed prices, which carry no currency marker.
const DefaultCurrency = "USD"

// droppedListing records a feed row that could not be normalized, with the
// reason, so the adapter can surface it in logs and route diagnostics.
type droppedListing struct {
	Index  int
	Reason error
}

// normalize converts raw feed listings into flight records for the given
// route. Connecting flights (stops > 0) are filtered out silently. Listings
// with unparseable prices or times are dropped and reported, never guessed at.
// The travel date supplies the year (and for bare clock times the full date)
// when a listing's timestamps omit them; an unparseable travel date fails the
// whole feed.
func normalize(listings []FlightListing, origin, destination, travelDate string) ([]domain.FlightRecord, []droppedListing, error) {
	day, err := time.Parse("2006-01-02", travelDate)
	if err != nil {
		return nil, nil, fmt.Errorf("travel date %q: %w", travelDate, err)
	}

	records := make([]domain.FlightRecord, 0, len(listings))
	var dropped []droppedListing

	for i, listing := range listings {
		if listing.Stops != 0 {
			continue
		}
		record, err := normalizeListing(listing, origin, destination, day)
		if err != nil {
			dropped = append(dropped, droppedListing{Index: i, Reason: err})
			continue
		}
		records = append(records, record)
	}

	return records, dropped, nil
}

// normalizeListing converts a single feed row into a flight record.
func normalizeListing(listing FlightListing, origin, destination string, travelDate time.Time) (domain.FlightRecord, error) {
	amount, err := parsePrice(listing.Price)
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("price %q: %w", listing.Price, err)
	}

	departure, err := timeutil.ParseFlightTime(listing.Departure, travelDate)
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("departure time: %w", err)
	}

	arrival, err := timeutil.ParseFlightTime(listing.Arrival, travelDate)
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("arrival time: %w", err)
	}

	airline := strings.TrimSpace(listing.Airline)
	if airline == "" {
		return domain.FlightRecord{}, fmt.Errorf("missing airline name")
	}

	return domain.FlightRecord{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		Price:       domain.PriceInfo{Amount: amount, Currency: DefaultCurrency},
		Airline:     airline,
	}, nil
}

// parsePrice parses a display price like "$54", "$1,250.50" or "54" into an
// exact decimal amount.
func parsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty price")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %s", amount)
	}
	return amount, nil
}
