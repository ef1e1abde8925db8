package usecase

import (
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/timeutil"
)

// DefaultWindowRadiusDays is the return-date tolerance on each side of the
// target return date. Exact-duration round trips are rare in real fare
// data; a two-day radius balances coverage against upstream request volume
// (five queries per departure date).
const DefaultWindowRadiusDays = 2

// DatePair is one (departure, return) calendar date combination to query
// the flight provider for.
type DatePair struct {
	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string

	// ReturnDate is the return date in YYYY-MM-DD format
	ReturnDate string
}

// ExpandWindow builds the date-pair grid for one departure date: the target
// return date (departure + target duration) plus every calendar date within
// radiusDays on either side, each paired with the same departure date.
//
// A non-positive radius falls back to DefaultWindowRadiusDays, yielding
// five pairs. The function is pure - it never issues requests.
func ExpandWindow(departure time.Time, target time.Duration, radiusDays int) []DatePair {
	if radiusDays <= 0 {
		radiusDays = DefaultWindowRadiusDays
	}

	departureDate := timeutil.FormatDate(departure)
	targetReturn := departure.Add(target)

	pairs := make([]DatePair, 0, 2*radiusDays+1)
	for offset := -radiusDays; offset <= radiusDays; offset++ {
		pairs = append(pairs, DatePair{
			DepartureDate: departureDate,
			ReturnDate:    timeutil.FormatDate(timeutil.AddDays(targetReturn, offset)),
		})
	}
	return pairs
}
