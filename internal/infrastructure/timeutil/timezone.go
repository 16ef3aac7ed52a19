package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// Timezone names.
const (
	UTC = "UTC"

	// IST is Indian Standard Time, used when rendering tickets.
	IST = "Asia/Kolkata"
)

// istFallback is used when the tz database is unavailable on the host.
var istFallback = time.FixedZone("IST", 5*60*60+30*60)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// India returns the IST location, falling back to a fixed +05:30 zone.
func India() *time.Location {
	loc, err := GetLocation(IST)
	if err != nil {
		return istFallback
	}
	return loc
}

// FormatBookedAt renders a booking timestamp in IST, e.g. "02 Nov 2026, 14:05 IST".
func FormatBookedAt(t time.Time) string {
	return t.In(India()).Format("02 Jan 2006, 15:04") + " IST"
}
