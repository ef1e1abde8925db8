package amadeus

import (
	"context"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// popularDestinations is the route fan-out used for "ANY" destination
// searches, capped to bound upstream request volume.
var popularDestinations = []string{
	"MCO", "LAS", "MIA", "PHX", "ATL", "LAX", "DFW", "ORD", "DEN", "SEA",
}

// maxAnyDestinations bounds the number of routes an "ANY" search fans out
// to per origin.
const maxAnyDestinations = 10

// Adapter implements domain.FlightProvider against the Amadeus API.
type Adapter struct {
	client *Client
	log    *logger.Logger
}

// NewAdapter creates an Adapter around the given client.
func NewAdapter(client *Client, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{client: client, log: log}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider. It fans the query out across
// every origin/destination route, converts the offers for each, and
// aggregates the results. A route that fails upstream contributes zero
// records and is logged; it never aborts the remaining routes.
func (a *Adapter) Search(ctx context.Context, query domain.ProviderQuery) ([]domain.FlightRecord, error) {
	destinations := query.Destinations
	if len(destinations) == 1 && destinations[0] == domain.AnyDestination {
		destinations = anyDestinations(query.Origins)
	}

	adults := query.Adults
	if adults < 1 {
		adults = 1
	}

	var all []domain.FlightRecord
	for _, origin := range query.Origins {
		for _, destination := range destinations {
			if origin == destination {
				continue
			}

			// Honor cancellation between routes
			if err := ctx.Err(); err != nil {
				return all, err
			}

			offers, err := a.client.FlightOffers(ctx, origin, destination, query.DepartureDate, query.ReturnDate, adults)
			if err != nil {
				a.log.Warn().
					Err(err).
					Str("origin", origin).
					Str("destination", destination).
					Str("departure_date", query.DepartureDate).
					Msg("Route search failed, skipping")
				continue
			}

			all = append(all, normalize(offers, origin, destination)...)
		}
	}

	return all, nil
}

// anyDestinations expands the "ANY" sentinel into popular destinations,
// excluding the caller's origins.
func anyDestinations(origins []string) []string {
	originSet := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		originSet[o] = struct{}{}
	}

	out := make([]string, 0, maxAnyDestinations)
	for _, d := range popularDestinations {
		if _, ok := originSet[d]; ok {
			continue
		}
		out = append(out, d)
		if len(out) == maxAnyDestinations {
			break
		}
	}
	return out
}

// Ensure Adapter implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
