// Package usecase contains the business logic for trip planning: duration
// scoring, constraint filtering and ranking, and the expanding date-window
// search loop.
package usecase

import (
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// TripDuration returns the elapsed duration of a flight record.
//
// For a round trip this is the span from the outbound departure instant to
// the return-leg arrival instant - the full time away, not just time in the
// air. For a one-way record it is the outbound flight time.
//
// The second return value is false for malformed records (missing instants
// or a negative span); such records are excluded from ranking rather than
// treated as errors.
func TripDuration(record domain.FlightRecord) (time.Duration, bool) {
	if !record.HasTimingData() {
		return 0, false
	}

	var span time.Duration
	if record.RoundTrip {
		span = record.Return.Arrival.DateTime.Sub(record.Outbound.Departure.DateTime)
	} else {
		span = record.Outbound.Arrival.DateTime.Sub(record.Outbound.Departure.DateTime)
	}

	if span < 0 {
		return 0, false
	}
	return span, true
}

// DeviationHours returns |actual - target| in hours (fractional).
func DeviationHours(actual, target time.Duration) float64 {
	dev := actual.Hours() - target.Hours()
	if dev < 0 {
		dev = -dev
	}
	return dev
}
