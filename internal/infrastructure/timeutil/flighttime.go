package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts the upstream flight feed has been observed to use for departure and
// arrival fields, besides ISO 8601. The feed omits the year, so the travel
// date supplies it.
var clockDateLayouts = []string{
	"3:04 PM on Mon, Jan 2",
	"3:04 PM Mon, Jan 2",
}

// ParseFlightTime parses a flight time string in any of the feed's formats:
// RFC 3339, ISO 8601 without zone, "3:04 PM on Mon, Jan 2",
// "3:04 PM Mon, Jan 2", or a bare "3:04 PM" (which takes the travel date).
// travelDate supplies the year, and for bare clock times the full date.
func ParseFlightTime(value string, travelDate time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)

	if strings.Contains(value, "T") {
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("unparseable ISO flight time %q", value)
	}

	for _, layout := range clockDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(travelDate.Year(), t.Month(), t.Day(),
				t.Hour(), t.Minute(), 0, 0, travelDate.Location()), nil
		}
	}

	if t, err := time.Parse("3:04 PM", value); err == nil {
		return time.Date(travelDate.Year(), travelDate.Month(), travelDate.Day(),
			t.Hour(), t.Minute(), 0, 0, travelDate.Location()), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized flight time format %q", value)
}
