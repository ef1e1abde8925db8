package domain

import "context"

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=domain

// FlightProvider is the port to an external flight-search source.
// Implementations fan a query out across every origin/destination pair and
// aggregate the converted records; a pair that fails upstream is skipped,
// not fatal.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search returns all flight records matching the query.
	// An empty slice with a nil error means the search succeeded but no
	// fares were available.
	Search(ctx context.Context, query ProviderQuery) ([]FlightRecord, error)
}

// ProviderQuery is one dated request to a flight provider.
// Dates use the YYYY-MM-DD calendar form the upstream APIs speak.
type ProviderQuery struct {
	// Origins is the set of candidate departure airports
	Origins []string

	// Destinations is the set of candidate arrival airports, or
	// [AnyDestination] to let the provider pick popular routes
	Destinations []string

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string

	// ReturnDate is the return date in YYYY-MM-DD format; empty means
	// one-way
	ReturnDate string

	// Adults is the number of adult passengers (default 1)
	Adults int
}

// AnyDestination is the sentinel destination meaning "anywhere the
// provider flies".
const AnyDestination = "ANY"
