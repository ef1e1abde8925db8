package http

import (
	"github.com/trip-planner/trip-duration-search-system/internal/domain"
)

// toSearchCriteria converts a validated search request into domain
// criteria. Defaults are applied by the use case.
func toSearchCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origins:       req.Origins,
		Destinations:  req.Destinations,
		TripType:      req.TripType,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
	}
}

// toPlanCriteria converts a validated plan request into domain criteria.
func toPlanCriteria(req *PlanTripRequest) domain.PlanCriteria {
	return domain.PlanCriteria{
		Origins:          req.Origins,
		Destinations:     req.Destinations,
		DepartureDate:    req.DepartureDate,
		TripLength:       req.TripLength,
		TripLengthUnit:   req.TripLengthUnit,
		NonstopPreferred: req.NonstopPreferred,
		MaxDuration:      req.MaxTripDuration,
		MaxDurationUnit:  req.MaxTripDurationUnit,
		DayBudget:        req.DayBudget,
	}
}
