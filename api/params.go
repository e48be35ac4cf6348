package api

import (
	"daybook/day"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

func parseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q: %w", s, errBadRequest)
	}
	return d, nil
}

// parseClock accepts HH:MM or HH:MM:SS. "24:00" means the end of the day.
func parseClock(s string) (civil.Time, error) {
	if s == "24:00" || s == "24:00:00" {
		return day.EndOfDay, nil
	}
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.TimeOf(t), nil
		}
	}
	return civil.Time{}, fmt.Errorf("invalid time %q: %w", s, errBadRequest)
}
