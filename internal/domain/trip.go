package domain

import "time"

// DefaultNonstopPenaltyHours is the ranking penalty, in hours of deviation,
// applied to non-nonstop records when the caller prefers nonstop flights.
// It breaks near-ties in favor of nonstop options without overriding a
// materially better duration match.
const DefaultNonstopPenaltyHours = 2.0

// TripConstraint is the normalized request shape the ranking pipeline
// consumes.
type TripConstraint struct {
	// TargetDuration is the desired total trip duration
	TargetDuration time.Duration

	// NonstopPreferred softly prefers nonstop records in ranking
	NonstopPreferred bool

	// MaxDuration is a hard cap on total trip duration; zero means no cap
	MaxDuration time.Duration

	// NonstopPenaltyHours overrides DefaultNonstopPenaltyHours when
	// positive
	NonstopPenaltyHours float64
}

// NonstopPenalty returns the effective nonstop ranking penalty in hours.
func (c TripConstraint) NonstopPenalty() float64 {
	if c.NonstopPenaltyHours > 0 {
		return c.NonstopPenaltyHours
	}
	return DefaultNonstopPenaltyHours
}

// RankedTrip is a FlightRecord augmented with its scored trip duration.
// It is transient: produced and consumed within a single planning call.
type RankedTrip struct {
	FlightRecord

	// ActualDuration is the elapsed trip duration (outbound departure to
	// final arrival)
	ActualDuration time.Duration `json:"actualDuration"`

	// ActualDurationLabel is ActualDuration formatted for display
	ActualDurationLabel string `json:"actualDurationLabel"`

	// DeviationHours is |actual - target| in hours
	DeviationHours float64 `json:"deviationHours"`
}

// PlanResult is the terminal outcome of one planning invocation.
type PlanResult struct {
	// Trips is the ranked result page (best match first)
	Trips []RankedTrip `json:"flights"`

	// TotalOptions is the total number of qualifying trips found
	TotalOptions int `json:"total_options"`

	// TargetDuration is the requested trip length for display,
	// e.g. "3 days"
	TargetDuration string `json:"target_duration"`

	// DaysSearched is the number of departure dates tried (1-indexed)
	DaysSearched int `json:"days_searched"`

	// EarliestDeparture is the departure date of the first qualifying
	// trip in YYYY-MM-DD format, empty when the search was exhausted
	EarliestDeparture string `json:"earliest_departure,omitempty"`
}

// Found reports whether the search produced any qualifying trip.
func (r *PlanResult) Found() bool {
	return r.TotalOptions > 0
}
