package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
)

// FlightSearchUseCase defines the interface for direct flight searches
// (one-way, round-trip, or day-trip on fixed dates).
type FlightSearchUseCase interface {
	// Search queries the flight provider and returns the matching records.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error)
}

// flightSearch implements FlightSearchUseCase against a single provider.
type flightSearch struct {
	provider domain.FlightProvider
	log      *logger.Logger
}

// NewFlightSearch creates a FlightSearchUseCase backed by the given
// provider. A nil log disables logging.
func NewFlightSearch(provider domain.FlightProvider, log *logger.Logger) FlightSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &flightSearch{provider: provider, log: log}
}

// Search implements FlightSearchUseCase.
func (uc *flightSearch) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	if uc.provider == nil {
		return nil, domain.ErrNoProviders
	}

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	records, err := uc.provider.Search(ctx, criteria.ProviderQuery())
	if err != nil {
		uc.log.Error().Err(err).Str("provider", uc.provider.Name()).Msg("Flight search failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	return domain.NewSearchResponse(criteria, records, domain.SearchMetadata{
		SearchTimeMs: time.Since(start).Milliseconds(),
	}), nil
}

// Ensure flightSearch implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearch)(nil)
