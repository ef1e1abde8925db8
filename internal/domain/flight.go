// Package domain contains the core business entities and rules for the trip
// planning system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"strconv"
	"time"
)

// FlightRecord is a single priced itinerary returned by a flight provider.
// A record is either one-way (Return is nil) or round-trip (Return is set
// and RoundTrip is true). Records are immutable once they reach the
// planning pipeline.
type FlightRecord struct {
	// ID is a unique identifier for this record (generated internally)
	ID string `json:"id"`

	// Origin is the IATA code of the departure airport (e.g., "DEN")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "MCO")
	Destination string `json:"destination"`

	// Airline contains information about the operating airline
	Airline AirlineInfo `json:"airline"`

	// FlightNumber is the airline's flight number for the outbound
	// itinerary (e.g., "F9-1234")
	FlightNumber string `json:"flightNumber"`

	// Outbound is the outbound itinerary
	Outbound Itinerary `json:"outbound"`

	// Return is the return itinerary, present only for round trips
	Return *Itinerary `json:"return,omitempty"`

	// RoundTrip is true when the record covers both directions
	RoundTrip bool `json:"isRoundTrip"`

	// Price is the total price for the whole record (both directions
	// for a round trip), normalized to a single currency upstream
	Price PriceInfo `json:"price"`

	// SeatsRemaining is the number of bookable seats, when known
	SeatsRemaining int `json:"seatsRemaining,omitempty"`

	// PassEligible reports whether the fare qualifies for loyalty-pass
	// redemption (heuristic classification, not a booking guarantee)
	PassEligible bool `json:"gowildEligible"`

	// Blackout describes loyalty-pass blackout restrictions affecting
	// the record's travel dates
	Blackout BlackoutInfo `json:"blackoutDates"`
}

// Itinerary is one direction of travel, comprising one or more legs.
type Itinerary struct {
	// Departure is the first leg's departure point and instant
	Departure FlightPoint `json:"departure"`

	// Arrival is the last leg's arrival point and instant
	Arrival FlightPoint `json:"arrival"`

	// Duration is the total scheduled flight time for this direction
	Duration DurationInfo `json:"duration"`

	// Stops is the number of intermediate stops (0 = nonstop)
	Stops int `json:"stops"`

	// Aircraft is the aircraft type code, when known (e.g., "320")
	Aircraft string `json:"aircraft,omitempty"`

	// BookingClass is the cabin/booking class (e.g., "Economy")
	BookingClass string `json:"bookingClass,omitempty"`
}

// FlightPoint represents a point in a journey (departure or arrival).
type FlightPoint struct {
	// AirportCode is the IATA airport code (e.g., "DEN")
	AirportCode string `json:"airportCode"`

	// DateTime is the scheduled departure or arrival instant
	DateTime time.Time `json:"dateTime"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "F9")
	Code string `json:"code"`

	// Name is the full airline name (e.g., "Frontier Airlines")
	Name string `json:"name"`
}

// PriceInfo contains pricing information for a record.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// DurationInfo contains flight duration information.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// BlackoutInfo describes loyalty-pass blackout restrictions on a record.
type BlackoutInfo struct {
	// HasBlackout is true when either travel date falls in a blackout period
	HasBlackout bool `json:"has_blackout"`

	// DepartureBlackout is true when the departure date is restricted
	DepartureBlackout bool `json:"departure_blackout"`

	// ReturnBlackout is true when the return date is restricted
	ReturnBlackout bool `json:"return_blackout"`

	// DepartureReason names the blackout period covering the departure date
	DepartureReason string `json:"departure_reason,omitempty"`

	// ReturnReason names the blackout period covering the return date
	ReturnReason string `json:"return_reason,omitempty"`

	// Message is a human-readable summary of the restriction
	Message string `json:"message,omitempty"`
}

// HasTimingData reports whether the record carries the instants required to
// compute its elapsed trip duration. Round trips additionally require both
// return-leg instants.
func (f *FlightRecord) HasTimingData() bool {
	if f.Outbound.Departure.DateTime.IsZero() || f.Outbound.Arrival.DateTime.IsZero() {
		return false
	}
	if f.RoundTrip {
		if f.Return == nil {
			return false
		}
		if f.Return.Departure.DateTime.IsZero() || f.Return.Arrival.DateTime.IsZero() {
			return false
		}
	}
	return true
}

// MaxStops returns the larger stop count across the record's itineraries.
func (f *FlightRecord) MaxStops() int {
	stops := f.Outbound.Stops
	if f.Return != nil && f.Return.Stops > stops {
		stops = f.Return.Stops
	}
	return stops
}

// Nonstop reports whether every itinerary in the record is nonstop.
// A round trip is nonstop only when both directions are nonstop.
func (f *FlightRecord) Nonstop() bool {
	return f.MaxStops() == 0
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    FormatMinutes(totalMinutes),
	}
}

// FormatMinutes renders a minute count as "Xh Ym", "Xh", or "Ym".
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
