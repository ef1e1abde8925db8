package usecase

import (
	"sort"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// scoredTrip pairs a ranked trip with its composite sort key.
type scoredTrip struct {
	trip domain.RankedTrip
	key  float64
}

// RankTrips scores, filters, and orders flight records against the
// caller's constraint. The result is best match first:
//
//  1. Records with missing timing data are dropped.
//  2. Records whose actual duration exceeds the hard cap (when set) are
//     dropped and can never reappear downstream.
//  3. The composite sort key is deviation from the target duration, plus a
//     fixed penalty for non-nonstop records when nonstop is preferred.
//  4. Price breaks remaining ties, cheapest first.
//
// Sorting is stable, so records with identical keys and prices keep their
// input order; the output is deterministic for a fixed input and
// constraint. Truncation to a caller-visible page is the orchestrator's
// job.
func RankTrips(records []domain.FlightRecord, constraint domain.TripConstraint) []domain.RankedTrip {
	penalty := constraint.NonstopPenalty()

	scored := make([]scoredTrip, 0, len(records))
	for _, record := range records {
		actual, ok := TripDuration(record)
		if !ok {
			continue
		}
		if constraint.MaxDuration > 0 && actual > constraint.MaxDuration {
			continue
		}

		deviation := DeviationHours(actual, constraint.TargetDuration)

		key := deviation
		if constraint.NonstopPreferred && !record.Nonstop() {
			key += penalty
		}

		scored = append(scored, scoredTrip{
			trip: domain.RankedTrip{
				FlightRecord:        record,
				ActualDuration:      actual,
				ActualDurationLabel: domain.FormatMinutes(int(actual.Minutes())),
				DeviationHours:      deviation,
			},
			key: key,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].key != scored[j].key {
			return scored[i].key < scored[j].key
		}
		return scored[i].trip.Price.Amount < scored[j].trip.Price.Amount
	})

	ranked := make([]domain.RankedTrip, len(scored))
	for i, s := range scored {
		ranked[i] = s.trip
	}
	return ranked
}
