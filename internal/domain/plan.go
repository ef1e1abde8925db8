package domain

import (
	"fmt"
	"time"
)

// Duration units accepted for trip lengths.
const (
	UnitDays  = "days"
	UnitHours = "hours"
)

// DefaultDayBudget is the number of successive departure dates the planner
// will try before giving up.
const DefaultDayBudget = 30

// PlanCriteria defines the parameters for a trip-duration planning request.
// The planner searches successive departure dates for round trips whose
// elapsed duration best matches the requested trip length.
type PlanCriteria struct {
	// Origins is the set of candidate departure airports (IATA codes)
	Origins []string `json:"origins"`

	// Destinations is the set of candidate arrival airports (IATA codes),
	// or [AnyDestination]
	Destinations []string `json:"destinations"`

	// DepartureDate is the earliest departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// TripLength is the desired trip duration in TripLengthUnit units
	TripLength float64 `json:"tripLength"`

	// TripLengthUnit is "days" or "hours" (default: days)
	TripLengthUnit string `json:"tripLengthUnit"`

	// NonstopPreferred softly prefers nonstop flights in ranking
	NonstopPreferred bool `json:"nonstopPreferred"`

	// MaxDuration is an optional hard cap on total trip duration in
	// MaxDurationUnit units; zero means no cap
	MaxDuration float64 `json:"maxTripDuration,omitempty"`

	// MaxDurationUnit is "days" or "hours" (default: days)
	MaxDurationUnit string `json:"maxTripDurationUnit,omitempty"`

	// DayBudget is the maximum number of departure dates to try
	// (default: 30)
	DayBudget int `json:"dayBudget,omitempty"`
}

// validUnits defines the allowed duration units.
var validUnits = map[string]bool{
	UnitDays:  true,
	UnitHours: true,
}

// Validate checks if the plan criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *PlanCriteria) Validate() error {
	if err := validateAirportSet("origins", p.Origins, false); err != nil {
		return err
	}
	if err := validateAirportSet("destinations", p.Destinations, true); err != nil {
		return err
	}
	if err := validateDate("departureDate", p.DepartureDate, true); err != nil {
		return err
	}

	if p.TripLength <= 0 {
		return fmt.Errorf("%w: tripLength must be positive, got %v", ErrInvalidRequest, p.TripLength)
	}
	if !validUnits[p.TripLengthUnit] {
		return fmt.Errorf("%w: tripLengthUnit must be one of: days, hours; got %q", ErrInvalidRequest, p.TripLengthUnit)
	}

	if p.MaxDuration < 0 {
		return fmt.Errorf("%w: maxTripDuration must be non-negative, got %v", ErrInvalidRequest, p.MaxDuration)
	}
	if p.MaxDuration > 0 && !validUnits[p.MaxDurationUnit] {
		return fmt.Errorf("%w: maxTripDurationUnit must be one of: days, hours; got %q", ErrInvalidRequest, p.MaxDurationUnit)
	}

	if p.DayBudget < 0 {
		return fmt.Errorf("%w: dayBudget must be non-negative, got %d", ErrInvalidRequest, p.DayBudget)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *PlanCriteria) SetDefaults() {
	if p.TripLengthUnit == "" {
		p.TripLengthUnit = UnitDays
	}
	if p.MaxDuration > 0 && p.MaxDurationUnit == "" {
		p.MaxDurationUnit = UnitDays
	}
	if p.DayBudget == 0 {
		p.DayBudget = DefaultDayBudget
	}
}

// TargetDuration returns the requested trip length normalized to a
// duration.
func (p *PlanCriteria) TargetDuration() time.Duration {
	return toDuration(p.TripLength, p.TripLengthUnit)
}

// MaxTripDuration returns the hard duration cap and whether one is set.
func (p *PlanCriteria) MaxTripDuration() (time.Duration, bool) {
	if p.MaxDuration <= 0 {
		return 0, false
	}
	return toDuration(p.MaxDuration, p.MaxDurationUnit), true
}

// TargetLabel renders the requested trip length for display,
// e.g. "3 days".
func (p *PlanCriteria) TargetLabel() string {
	return fmt.Sprintf("%v %s", p.TripLength, p.TripLengthUnit)
}

// toDuration converts a value in the given unit to a time.Duration.
// Unknown units are treated as hours.
func toDuration(value float64, unit string) time.Duration {
	hours := value
	if unit == UnitDays {
		hours = value * 24
	}
	return time.Duration(hours * float64(time.Hour))
}
