// Package http provides the HTTP handler layer for the trip planning API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// SearchFlightsRequest represents the request body for a direct flight
// search.
type SearchFlightsRequest struct {
	// Origins is the set of departure airports (IATA codes, e.g., ["DEN"])
	Origins []string `json:"origins"`

	// Destinations is the set of arrival airports, or ["ANY"]
	Destinations []string `json:"destinations"`

	// TripType is round-trip, one-way, or day-trip (default: round-trip)
	TripType string `json:"tripType,omitempty"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format (round trips)
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers,omitempty"`
}

// PlanTripRequest represents the request body for the trip planner.
type PlanTripRequest struct {
	// Origins is the set of departure airports (IATA codes)
	Origins []string `json:"origins"`

	// Destinations is the set of arrival airports, or ["ANY"]
	Destinations []string `json:"destinations"`

	// DepartureDate is the earliest departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// TripLength is the desired trip duration
	TripLength float64 `json:"tripLength"`

	// TripLengthUnit is days or hours (default: days)
	TripLengthUnit string `json:"tripLengthUnit,omitempty"`

	// NonstopPreferred softly prefers nonstop flights
	NonstopPreferred bool `json:"nonstopPreferred,omitempty"`

	// MaxTripDuration is an optional hard cap on trip duration
	MaxTripDuration float64 `json:"maxTripDuration,omitempty"`

	// MaxTripDurationUnit is days or hours (default: days)
	MaxTripDurationUnit string `json:"maxTripDurationUnit,omitempty"`

	// DayBudget overrides how many departure dates to try (default: 30)
	DayBudget int `json:"dayBudget,omitempty"`
}

// BlackoutRangeRequest carries the query parameters of the blackout
// period listing endpoint.
type BlackoutRangeRequest struct {
	// Start is the range start in YYYY-MM-DD format
	Start string `query:"start"`

	// End is the range end in YYYY-MM-DD format
	End string `query:"end"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid trip types.
var validTripTypes = map[string]bool{
	domain.TripTypeRoundTrip: true,
	domain.TripTypeOneWay:    true,
	domain.TripTypeDayTrip:   true,
	"":                       true, // Empty defaults to round-trip
}

// Valid duration units.
var validUnits = map[string]bool{
	domain.UnitDays:  true,
	domain.UnitHours: true,
	"":               true, // Empty defaults to days
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport codes are normalized to uppercase in place.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirports(errs, "origins", r.Origins, false)
	validateAirports(errs, "destinations", r.Destinations, true)

	if !validTripTypes[r.TripType] {
		errs.Add("tripType", "tripType must be one of: round-trip, one-way, day-trip")
	}

	validateDateField(errs, "departureDate", r.DepartureDate, true)
	returnRequired := r.TripType == domain.TripTypeRoundTrip || r.TripType == ""
	validateDateField(errs, "returnDate", r.ReturnDate, returnRequired)

	if r.Passengers < 0 || r.Passengers > 9 {
		errs.Add("passengers", "passengers must be between 1 and 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the plan request and returns any validation errors.
// Airport codes are normalized to uppercase in place.
func (r *PlanTripRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirports(errs, "origins", r.Origins, false)
	validateAirports(errs, "destinations", r.Destinations, true)
	validateDateField(errs, "departureDate", r.DepartureDate, true)

	if r.TripLength <= 0 {
		errs.Add("tripLength", "tripLength must be a positive number")
	}
	if !validUnits[r.TripLengthUnit] {
		errs.Add("tripLengthUnit", "tripLengthUnit must be one of: days, hours")
	}

	if r.MaxTripDuration < 0 {
		errs.Add("maxTripDuration", "maxTripDuration must be a non-negative number")
	}
	if !validUnits[r.MaxTripDurationUnit] {
		errs.Add("maxTripDurationUnit", "maxTripDurationUnit must be one of: days, hours")
	}

	if r.DayBudget < 0 {
		errs.Add("dayBudget", "dayBudget must be a non-negative number")
	}
	if r.DayBudget > 90 {
		errs.Add("dayBudget", "dayBudget cannot exceed 90")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the blackout range query parameters.
func (r *BlackoutRangeRequest) Validate() error {
	errs := &ValidationErrors{}

	validateDateField(errs, "start", r.Start, true)
	validateDateField(errs, "end", r.End, true)

	if !errs.HasErrors() && r.End < r.Start {
		errs.Add("end", "end must not be before start")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAirports validates and uppercases a list of IATA codes in
// place. When allowAny is true the sentinel "ANY" is accepted.
func validateAirports(errs *ValidationErrors, field string, codes []string, allowAny bool) {
	if len(codes) == 0 {
		errs.Add(field, field+" is required")
		return
	}

	for i, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		codes[i] = normalized

		if allowAny && normalized == domain.AnyDestination {
			continue
		}
		if !airportCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("%s[%d]", field, i),
				"must be a valid 3-letter IATA airport code")
		}
	}
}

// validateDateField validates a YYYY-MM-DD date string.
func validateDateField(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}
