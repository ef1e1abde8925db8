// Package mock provides test doubles for the trip planning system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-date responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors, a default record set, and
// per-date-pair record sets so planner tests can control exactly which
// departure date produces a match.
type Provider struct {
	name    string
	records []domain.FlightRecord
	byDates map[string][]domain.FlightRecord
	err     error
	delay   time.Duration

	mu      sync.Mutex
	queries []domain.ProviderQuery
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:    name,
		byDates: make(map[string][]domain.FlightRecord),
	}
}

// WithRecords configures the records returned for any query that has no
// date-specific response.
func (p *Provider) WithRecords(records []domain.FlightRecord) *Provider {
	p.records = records
	return p
}

// WithRecordsFor configures the records returned for one exact
// departure/return date pair. Pass an empty returnDate for one-way queries.
func (p *Provider) WithRecordsFor(departureDate, returnDate string, records []domain.FlightRecord) *Provider {
	p.byDates[dateKey(departureDate, returnDate)] = records
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider.Search.
// It respects context cancellation, applies the configured delay, records
// the query, and returns the date-specific records when configured,
// otherwise the default set.
func (p *Provider) Search(ctx context.Context, query domain.ProviderQuery) ([]domain.FlightRecord, error) {
	p.mu.Lock()
	p.queries = append(p.queries, query)
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	if records, ok := p.byDates[dateKey(query.DepartureDate, query.ReturnDate)]; ok {
		return records, nil
	}
	return p.records, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

// Queries returns a copy of every query received, in arrival order.
func (p *Provider) Queries() []domain.ProviderQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ProviderQuery, len(p.queries))
	copy(out, p.queries)
	return out
}

// DepartureDates returns the distinct departure dates queried so far, in
// first-seen order. Useful for asserting how far the planner expanded.
func (p *Provider) DepartureDates() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[string]struct{}, len(p.queries))
	var dates []string
	for _, q := range p.queries {
		if _, ok := seen[q.DepartureDate]; ok {
			continue
		}
		seen[q.DepartureDate] = struct{}{}
		dates = append(dates, q.DepartureDate)
	}
	return dates
}

// Reset clears the recorded queries.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = nil
}

// dateKey builds the per-date-pair lookup key.
func dateKey(departureDate, returnDate string) string {
	return departureDate + "|" + returnDate
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// Records builds a record slice from the given records.
func Records(records ...domain.FlightRecord) []domain.FlightRecord {
	return records
}

// RoundTripRecord builds a round-trip record departing at the given
// instant with the given elapsed trip duration. The outbound and return
// flight times are fixed so only the trip duration varies between records.
func RoundTripRecord(id string, departure time.Time, tripDuration time.Duration, price float64) domain.FlightRecord {
	outboundArrival := departure.Add(3 * time.Hour)
	returnArrival := departure.Add(tripDuration)
	returnDeparture := returnArrival.Add(-3 * time.Hour)

	return domain.FlightRecord{
		ID:          id,
		Origin:      "DEN",
		Destination: "MCO",
		Airline: domain.AirlineInfo{
			Code: "F9",
			Name: "Frontier Airlines",
		},
		FlightNumber: "F9-100",
		Outbound: domain.Itinerary{
			Departure: domain.FlightPoint{AirportCode: "DEN", DateTime: departure},
			Arrival:   domain.FlightPoint{AirportCode: "MCO", DateTime: outboundArrival},
			Duration:  domain.NewDurationInfo(180),
			Stops:     0,
		},
		Return: &domain.Itinerary{
			Departure: domain.FlightPoint{AirportCode: "MCO", DateTime: returnDeparture},
			Arrival:   domain.FlightPoint{AirportCode: "DEN", DateTime: returnArrival},
			Duration:  domain.NewDurationInfo(180),
			Stops:     0,
		},
		RoundTrip:    true,
		Price:        domain.PriceInfo{Amount: price, Currency: "USD"},
		PassEligible: true,
	}
}

// OneWayRecord builds a one-way record with the given flight times.
func OneWayRecord(id string, departure, arrival time.Time, price float64) domain.FlightRecord {
	return domain.FlightRecord{
		ID:          id,
		Origin:      "DEN",
		Destination: "LAS",
		Airline: domain.AirlineInfo{
			Code: "F9",
			Name: "Frontier Airlines",
		},
		FlightNumber: "F9-200",
		Outbound: domain.Itinerary{
			Departure: domain.FlightPoint{AirportCode: "DEN", DateTime: departure},
			Arrival:   domain.FlightPoint{AirportCode: "LAS", DateTime: arrival},
			Duration:  domain.NewDurationInfo(int(arrival.Sub(departure).Minutes())),
			Stops:     0,
		},
		Price: domain.PriceInfo{Amount: price, Currency: "USD"},
	}
}

// WithStops returns a copy of the record with the given stop count on
// every itinerary.
func WithStops(record domain.FlightRecord, stops int) domain.FlightRecord {
	record.Outbound.Stops = stops
	if record.Return != nil {
		ret := *record.Return
		ret.Stops = stops
		record.Return = &ret
	}
	return record
}
