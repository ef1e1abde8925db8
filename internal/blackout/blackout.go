// Package blackout holds the loyalty-pass blackout calendar and lookups
// against it. Blackout periods follow the published GoWild pass terms:
// major holidays, peak travel seasons, and special event weekends.
// All lookups are pure functions of calendar dates.
package blackout

import (
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// Period is one contiguous blackout date range, inclusive on both ends.
type Period struct {
	// Start is the first blacked-out date
	Start time.Time `json:"start"`

	// End is the last blacked-out date
	End time.Time `json:"end"`

	// Description names the restriction (e.g., "Thanksgiving Week")
	Description string `json:"description"`
}

// rawPeriod is the table entry form before date parsing.
type rawPeriod struct {
	start, end, description string
}

// Blackout date ranges for 2025 and 2026.
var rawPeriods = []rawPeriod{
	// 2025
	{"2025-01-01", "2025-01-02", "New Year's Day"},
	{"2025-01-17", "2025-01-20", "MLK Weekend"},
	{"2025-02-14", "2025-02-17", "Presidents Day Weekend"},
	{"2025-03-07", "2025-03-23", "Spring Break Peak"},
	{"2025-04-17", "2025-04-21", "Easter Weekend"},
	{"2025-05-23", "2025-05-26", "Memorial Day Weekend"},
	{"2025-06-20", "2025-08-17", "Summer Peak Season"},
	{"2025-08-29", "2025-09-01", "Labor Day Weekend"},
	{"2025-11-22", "2025-11-30", "Thanksgiving Week"},
	{"2025-12-19", "2026-01-04", "Christmas & New Year's"},

	// 2026
	{"2026-01-16", "2026-01-19", "MLK Weekend"},
	{"2026-02-13", "2026-02-16", "Presidents Day Weekend"},
	{"2026-03-06", "2026-03-22", "Spring Break Peak"},
	{"2026-04-03", "2026-04-06", "Easter Weekend"},
	{"2026-05-22", "2026-05-25", "Memorial Day Weekend"},
	{"2026-06-19", "2026-08-16", "Summer Peak Season"},
	{"2026-08-28", "2026-08-31", "Labor Day Weekend"},
	{"2026-11-21", "2026-11-29", "Thanksgiving Week"},
	{"2026-12-18", "2027-01-03", "Christmas & New Year's"},
}

// periods is the parsed blackout table, built once at init.
var periods []Period

func init() {
	periods = make([]Period, 0, len(rawPeriods))
	for _, p := range rawPeriods {
		start, err := time.Parse("2006-01-02", p.start)
		if err != nil {
			panic("blackout: invalid table start date " + p.start)
		}
		end, err := time.Parse("2006-01-02", p.end)
		if err != nil {
			panic("blackout: invalid table end date " + p.end)
		}
		periods = append(periods, Period{Start: start, End: end, Description: p.description})
	}
}

// Periods returns a copy of the full blackout table.
func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods)
	return out
}

// IsBlackoutDate reports whether a YYYY-MM-DD date falls inside a blackout
// period, and the period's description when it does. Malformed dates are
// treated as unrestricted.
func IsBlackoutDate(date string) (bool, string) {
	check, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false, ""
	}

	for _, p := range periods {
		if !check.Before(p.Start) && !check.After(p.End) {
			return true, p.Description
		}
	}
	return false, ""
}

// CheckFlight reports whether a flight is affected by blackout dates.
// For round trips both the departure and return dates are checked;
// returnDate may be empty for one-way flights.
func CheckFlight(departureDate, returnDate string) domain.BlackoutInfo {
	info := domain.BlackoutInfo{}

	if blackout, reason := IsBlackoutDate(departureDate); blackout {
		info.HasBlackout = true
		info.DepartureBlackout = true
		info.DepartureReason = reason
	}

	if returnDate != "" {
		if blackout, reason := IsBlackoutDate(returnDate); blackout {
			info.HasBlackout = true
			info.ReturnBlackout = true
			info.ReturnReason = reason
		}
	}

	switch {
	case info.DepartureBlackout && info.ReturnBlackout:
		info.Message = "GoWild blackout: " + info.DepartureReason + " (departure) and " + info.ReturnReason + " (return)"
	case info.DepartureBlackout:
		info.Message = "GoWild blackout: " + info.DepartureReason
	case info.ReturnBlackout:
		info.Message = "GoWild blackout: " + info.ReturnReason
	}

	return info
}

// NextAvailableDate finds the first non-blackout date strictly after the
// given date, searching up to 90 days ahead. The second return value is
// false when no date qualifies within the horizon or the input is
// malformed.
func NextAvailableDate(after string) (string, bool) {
	current, err := time.Parse("2006-01-02", after)
	if err != nil {
		return "", false
	}

	for i := 0; i < 90; i++ {
		current = current.AddDate(0, 0, 1)
		date := current.Format("2006-01-02")
		if blackout, _ := IsBlackoutDate(date); !blackout {
			return date, true
		}
	}
	return "", false
}

// PeriodsInRange returns every blackout period overlapping the inclusive
// date range. Malformed bounds yield an empty result.
func PeriodsInRange(startDate, endDate string) []Period {
	rangeStart, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil
	}
	rangeEnd, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil
	}

	var affected []Period
	for _, p := range periods {
		if !p.Start.After(rangeEnd) && !p.End.Before(rangeStart) {
			affected = append(affected, p)
		}
	}
	return affected
}
