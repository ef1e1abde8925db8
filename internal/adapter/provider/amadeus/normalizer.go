package amadeus

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/trip-duration-search-system/internal/blackout"
	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// eurToUSDRate is the rough conversion applied so every record reaches the
// planner in a single currency. The sandbox API prices some routes in EUR.
const eurToUSDRate = 1.1

// passEligibleClasses are the restrictive economy booking classes the
// loyalty pass typically books into.
var passEligibleClasses = map[string]bool{
	"V": true, "Q": true, "X": true, "N": true, "O": true, "S": true,
}

// Fallback price ceilings for the eligibility heuristic: when the fare
// codes are inconclusive, fares below these are usually pass-bookable.
const (
	passEligibleRoundTripCeiling = 100.0
	passEligibleOneWayCeiling    = 50.0
)

// airlineNames maps IATA airline codes to display names.
var airlineNames = map[string]string{
	"F9": "Frontier Airlines",
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"NK": "Spirit Airlines",
	"AS": "Alaska Airlines",
}

// normalize converts a batch of upstream offers into domain records.
// Offers that cannot be parsed are skipped; conversion never fails the
// whole batch.
func normalize(offers []Offer, origin, destination string) []domain.FlightRecord {
	records := make([]domain.FlightRecord, 0, len(offers))
	for _, offer := range offers {
		record, err := normalizeOffer(offer, origin, destination)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

// normalizeOffer converts a single offer into a domain record.
func normalizeOffer(offer Offer, origin, destination string) (domain.FlightRecord, error) {
	if len(offer.Itineraries) == 0 {
		return domain.FlightRecord{}, fmt.Errorf("offer %s has no itineraries", offer.ID)
	}

	price, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return domain.FlightRecord{}, fmt.Errorf("offer %s has invalid price %q", offer.ID, offer.Price.Total)
	}
	currency := offer.Price.Currency

	// Normalize to USD before the record reaches the planner; the core
	// never converts currency.
	if currency == "EUR" {
		price *= eurToUSDRate
		currency = "USD"
	}

	outbound, err := normalizeItinerary(offer.Itineraries[0])
	if err != nil {
		return domain.FlightRecord{}, err
	}

	roundTrip := len(offer.Itineraries) > 1

	record := domain.FlightRecord{
		ID:          uuid.New().String(),
		Origin:      origin,
		Destination: destination,
		Airline: domain.AirlineInfo{
			Code: offer.Itineraries[0].Segments[0].CarrierCode,
			Name: airlineName(offer.Itineraries[0].Segments[0].CarrierCode),
		},
		FlightNumber:   flightNumber(offer.Itineraries[0].Segments[0]),
		Outbound:       outbound,
		RoundTrip:      roundTrip,
		Price:          domain.PriceInfo{Amount: round2(price), Currency: currency},
		SeatsRemaining: offer.NumberOfBookableSeats,
		PassEligible:   isPassEligible(offer, price),
	}

	returnDate := ""
	if roundTrip {
		ret, err := normalizeItinerary(offer.Itineraries[1])
		if err != nil {
			return domain.FlightRecord{}, err
		}
		record.Return = &ret
		returnDate = ret.Departure.DateTime.Format("2006-01-02")
	}

	record.Blackout = blackout.CheckFlight(outbound.Departure.DateTime.Format("2006-01-02"), returnDate)

	return record, nil
}

// normalizeItinerary converts one direction of travel.
func normalizeItinerary(itin OfferItinerary) (domain.Itinerary, error) {
	if len(itin.Segments) == 0 {
		return domain.Itinerary{}, fmt.Errorf("itinerary has no segments")
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	departure, err := parseInstant(first.Departure.At)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("parse departure instant: %w", err)
	}
	arrival, err := parseInstant(last.Arrival.At)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("parse arrival instant: %w", err)
	}

	minutes, err := parseISODuration(itin.Duration)
	if err != nil {
		// Fall back to the instant difference when the duration string
		// is malformed.
		minutes = int(arrival.Sub(departure).Minutes())
	}

	return domain.Itinerary{
		Departure: domain.FlightPoint{AirportCode: first.Departure.IataCode, DateTime: departure},
		Arrival:   domain.FlightPoint{AirportCode: last.Arrival.IataCode, DateTime: arrival},
		Duration:  domain.NewDurationInfo(minutes),
		Stops:     len(itin.Segments) - 1,
		Aircraft:  last.Aircraft.Code,
	}, nil
}

// parseInstant parses the upstream departure/arrival instant, which
// usually carries no zone ("2025-06-15T14:30:00") but may be RFC3339.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// parseISODuration converts an ISO-8601 duration like "PT2H30M" to total
// minutes.
func parseISODuration(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok {
		return 0, fmt.Errorf("invalid ISO duration %q", s)
	}

	hours, minutes := 0, 0
	if h, tail, found := strings.Cut(rest, "H"); found {
		n, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO duration %q", s)
		}
		hours = n
		rest = tail
	}
	if m, _, found := strings.Cut(rest, "M"); found {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO duration %q", s)
		}
		minutes = n
	}

	return hours*60 + minutes, nil
}

// flightNumber joins the carrier code and segment number, e.g. "F9-1234".
func flightNumber(seg OfferSegment) string {
	return seg.CarrierCode + "-" + seg.Number
}

// airlineName resolves an airline code to a display name, falling back to
// the code itself.
func airlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}

// isPassEligible classifies an offer's loyalty-pass eligibility.
//
// The pass books into the most restrictive economy classes on the pass
// carrier. When the fare codes are inconclusive, a low total price is used
// as a heuristic fallback. This is a classification aid, not a booking
// guarantee.
func isPassEligible(offer Offer, price float64) bool {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return false
	}
	if offer.Itineraries[0].Segments[0].CarrierCode != carrierFilter {
		return false
	}
	if len(offer.TravelerPricings) == 0 {
		return false
	}

	for _, pricing := range offer.TravelerPricings {
		for _, fare := range pricing.FareDetailsBySegment {
			if !strings.EqualFold(fare.Cabin, "ECONOMY") {
				continue
			}
			if passEligibleClasses[fare.Class] {
				return true
			}
			for class := range passEligibleClasses {
				if strings.HasPrefix(fare.FareBasis, class) {
					return true
				}
			}
		}
	}

	if len(offer.Itineraries) > 1 {
		return price < passEligibleRoundTripCeiling
	}
	return price < passEligibleOneWayCeiling
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
