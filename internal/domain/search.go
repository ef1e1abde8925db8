package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Trip types accepted by the direct search endpoint.
const (
	TripTypeRoundTrip = "round-trip"
	TripTypeOneWay    = "one-way"
	TripTypeDayTrip   = "day-trip"
)

// SearchCriteria defines the parameters for a direct flight search request.
type SearchCriteria struct {
	// Origins is the set of candidate departure airports (IATA codes)
	Origins []string `json:"origins"`

	// Destinations is the set of candidate arrival airports (IATA codes),
	// or [AnyDestination]
	Destinations []string `json:"destinations"`

	// TripType is one of round-trip, one-way, or day-trip
	TripType string `json:"tripType"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format, required for
	// round trips
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validTripTypes defines the allowed trip types.
var validTripTypes = map[string]bool{
	TripTypeRoundTrip: true,
	TripTypeOneWay:    true,
	TripTypeDayTrip:   true,
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if err := validateAirportSet("origins", s.Origins, false); err != nil {
		return err
	}
	if err := validateAirportSet("destinations", s.Destinations, true); err != nil {
		return err
	}

	if !validTripTypes[s.TripType] {
		return fmt.Errorf("%w: tripType must be one of: round-trip, one-way, day-trip; got %q", ErrInvalidRequest, s.TripType)
	}

	if err := validateDate("departureDate", s.DepartureDate, true); err != nil {
		return err
	}

	returnRequired := s.TripType == TripTypeRoundTrip
	if err := validateDate("returnDate", s.ReturnDate, returnRequired); err != nil {
		return err
	}

	if s.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if s.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.TripType == "" {
		s.TripType = TripTypeRoundTrip
	}
	if s.Passengers == 0 {
		s.Passengers = 1
	}
}

// ProviderQuery converts the criteria into the dated query the provider
// port consumes. Day trips return on the departure date; one-way searches
// carry no return date.
func (s *SearchCriteria) ProviderQuery() ProviderQuery {
	q := ProviderQuery{
		Origins:       s.Origins,
		Destinations:  s.Destinations,
		DepartureDate: s.DepartureDate,
		Adults:        s.Passengers,
	}

	switch s.TripType {
	case TripTypeOneWay:
		// No return date
	case TripTypeDayTrip:
		q.ReturnDate = s.DepartureDate
	default:
		q.ReturnDate = s.ReturnDate
	}

	return q
}

// validateAirportSet validates a non-empty list of IATA codes.
// When allowAny is true the single sentinel value "ANY" is also accepted.
func validateAirportSet(field string, codes []string, allowAny bool) error {
	if len(codes) == 0 {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}

	for _, code := range codes {
		if allowAny && code == AnyDestination {
			continue
		}
		if !airportCodeRegex.MatchString(code) {
			return fmt.Errorf("%w: %s must contain valid 3-letter IATA codes, got %q", ErrInvalidRequest, field, code)
		}
	}
	return nil
}

// validateDate validates a YYYY-MM-DD date string.
func validateDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
		}
		return nil
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}
