package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/timeutil"
)

// DefaultMaxResults is the page size of the caller-visible trip list.
const DefaultMaxResults = 20

// TripPlannerUseCase defines the interface for trip-duration planning.
type TripPlannerUseCase interface {
	// Plan searches successive departure dates for round trips whose
	// elapsed duration best matches the requested trip length, stopping
	// at the first departure date that yields qualifying trips or when
	// the day budget is exhausted.
	Plan(ctx context.Context, criteria domain.PlanCriteria) (*domain.PlanResult, error)
}

// Config contains tuning options for the planner.
type Config struct {
	// DayBudget is the default number of successive departure dates to
	// try when the criteria leave it unset (default: domain.DefaultDayBudget)
	DayBudget int

	// WindowRadiusDays is the return-date tolerance on each side of the
	// target return date (default: 2)
	WindowRadiusDays int

	// NonstopPenaltyHours is the ranking penalty for non-nonstop trips
	// when nonstop is preferred (default: domain.DefaultNonstopPenaltyHours)
	NonstopPenaltyHours float64

	// MaxResults is the page size of the returned trip list (default: 20)
	MaxResults int
}

// DefaultConfig returns the default planner configuration.
func DefaultConfig() Config {
	return Config{
		DayBudget:           domain.DefaultDayBudget,
		WindowRadiusDays:    DefaultWindowRadiusDays,
		NonstopPenaltyHours: domain.DefaultNonstopPenaltyHours,
		MaxResults:          DefaultMaxResults,
	}
}

// tripPlanner implements TripPlannerUseCase.
type tripPlanner struct {
	provider domain.FlightProvider
	cfg      Config
	log      *logger.Logger
}

// NewTripPlanner creates a TripPlannerUseCase backed by the given provider.
// If cfg is nil, defaults are used. A nil log disables planner logging.
func NewTripPlanner(provider domain.FlightProvider, cfg *Config, log *logger.Logger) TripPlannerUseCase {
	c := DefaultConfig()
	if cfg != nil {
		if cfg.DayBudget > 0 {
			c.DayBudget = cfg.DayBudget
		}
		if cfg.WindowRadiusDays > 0 {
			c.WindowRadiusDays = cfg.WindowRadiusDays
		}
		if cfg.NonstopPenaltyHours > 0 {
			c.NonstopPenaltyHours = cfg.NonstopPenaltyHours
		}
		if cfg.MaxResults > 0 {
			c.MaxResults = cfg.MaxResults
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &tripPlanner{
		provider: provider,
		cfg:      c,
		log:      log,
	}
}

// searchPhase is the planner's state-machine phase.
type searchPhase int

const (
	// phaseSearching means more departure dates remain to try.
	phaseSearching searchPhase = iota

	// phaseFound means the last ranking pass produced qualifying trips.
	phaseFound

	// phaseExhausted means the day budget ran out with no match.
	phaseExhausted
)

// searchState is the planner's per-invocation accumulator. The record list
// is append-only: every iteration ranks all records seen so far, so later
// iterations consider strictly more candidates.
type searchState struct {
	phase       searchPhase
	offset      int
	accumulated []domain.FlightRecord
	ranked      []domain.RankedTrip
}

// Plan implements TripPlannerUseCase.
func (uc *tripPlanner) Plan(ctx context.Context, criteria domain.PlanCriteria) (*domain.PlanResult, error) {
	if uc.provider == nil {
		return nil, domain.ErrNoProviders
	}

	if criteria.DayBudget == 0 {
		criteria.DayBudget = uc.cfg.DayBudget
	}
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	start, err := timeutil.ParseDate(criteria.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departureDate: %v", domain.ErrInvalidRequest, err)
	}

	maxDuration, _ := criteria.MaxTripDuration()
	constraint := domain.TripConstraint{
		TargetDuration:      criteria.TargetDuration(),
		NonstopPreferred:    criteria.NonstopPreferred,
		MaxDuration:         maxDuration,
		NonstopPenaltyHours: uc.cfg.NonstopPenaltyHours,
	}

	st := &searchState{phase: phaseSearching}

	for st.phase == phaseSearching {
		// Abandoning at an iteration boundary leaves no partial state:
		// the accumulator is append-only.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		departure := timeutil.AddDays(start, st.offset)
		pairs := ExpandWindow(departure, constraint.TargetDuration, uc.cfg.WindowRadiusDays)

		uc.log.Debug().
			Str("departure_date", timeutil.FormatDate(departure)).
			Int("day", st.offset+1).
			Int("day_budget", criteria.DayBudget).
			Msg("Searching departure date")

		batch := uc.collectPairs(ctx, criteria, pairs)
		st.accumulated = append(st.accumulated, batch...)
		st.ranked = RankTrips(st.accumulated, constraint)

		switch {
		case len(st.ranked) > 0:
			st.phase = phaseFound
		case st.offset+1 >= criteria.DayBudget:
			st.phase = phaseExhausted
		default:
			st.offset++
		}
	}

	result := &domain.PlanResult{
		Trips:          pageOf(st.ranked, uc.cfg.MaxResults),
		TotalOptions:   len(st.ranked),
		TargetDuration: criteria.TargetLabel(),
		DaysSearched:   st.offset + 1,
	}

	if st.phase == phaseFound {
		result.EarliestDeparture = timeutil.FormatDate(timeutil.AddDays(start, st.offset))
		uc.log.Info().
			Int("total_options", result.TotalOptions).
			Int("days_searched", result.DaysSearched).
			Str("earliest_departure", result.EarliestDeparture).
			Msg("Found matching trips")
	} else {
		uc.log.Info().
			Int("days_searched", result.DaysSearched).
			Msg("Search exhausted without a match")
	}

	return result, nil
}

// pairResult holds the outcome of one date-pair provider query.
type pairResult struct {
	records []domain.FlightRecord
	err     error
}

// collectPairs queries the provider for every date pair concurrently and
// joins before returning. A failed pair contributes zero records; it never
// aborts the remaining pairs. Results are folded in pair order so the
// accumulator grows deterministically for a deterministic provider.
func (uc *tripPlanner) collectPairs(ctx context.Context, criteria domain.PlanCriteria, pairs []DatePair) []domain.FlightRecord {
	results := make([]pairResult, len(pairs))

	var wg sync.WaitGroup
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair DatePair) {
			defer wg.Done()
			// One misbehaving provider call must not take down the search
			defer func() {
				if r := recover(); r != nil {
					results[i] = pairResult{err: fmt.Errorf("provider panic: %v", r)}
				}
			}()

			records, err := uc.provider.Search(ctx, domain.ProviderQuery{
				Origins:       criteria.Origins,
				Destinations:  criteria.Destinations,
				DepartureDate: pair.DepartureDate,
				ReturnDate:    pair.ReturnDate,
				Adults:        1,
			})
			results[i] = pairResult{records: records, err: err}
		}(i, pair)
	}
	wg.Wait()

	var batch []domain.FlightRecord
	for i, res := range results {
		if res.err != nil {
			uc.log.Warn().
				Err(res.err).
				Str("departure_date", pairs[i].DepartureDate).
				Str("return_date", pairs[i].ReturnDate).
				Msg("Date-pair search failed, treating as empty")
			continue
		}
		batch = append(batch, res.records...)
	}
	return batch
}

// pageOf returns the first limit trips, or all of them if fewer.
func pageOf(trips []domain.RankedTrip, limit int) []domain.RankedTrip {
	if limit <= 0 || len(trips) <= limit {
		page := make([]domain.RankedTrip, len(trips))
		copy(page, trips)
		return page
	}
	page := make([]domain.RankedTrip, limit)
	copy(page, trips[:limit])
	return page
}

// Ensure tripPlanner implements TripPlannerUseCase at compile time.
var _ TripPlannerUseCase = (*tripPlanner)(nil)
