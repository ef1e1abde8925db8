package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/trip-duration-search-system/internal/adapter/http/response"
	"github.com/trip-planner/trip-duration-search-system/internal/blackout"
	"github.com/trip-planner/trip-duration-search-system/internal/domain"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/cache"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
	"github.com/trip-planner/trip-duration-search-system/internal/usecase"
)

// TripHandler handles HTTP requests for flight searches and trip planning.
type TripHandler struct {
	searchUC usecase.FlightSearchUseCase
	planUC   usecase.TripPlannerUseCase
	cache    *cache.ResponseCache
	log      *logger.Logger
}

// NewTripHandler creates a new TripHandler. A nil cache disables response
// caching; a nil log disables handler logging.
func NewTripHandler(searchUC usecase.FlightSearchUseCase, planUC usecase.TripPlannerUseCase, responseCache *cache.ResponseCache, log *logger.Logger) *TripHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &TripHandler{
		searchUC: searchUC,
		planUC:   planUC,
		cache:    responseCache,
		log:      log,
	}
}

// Health handles the health check endpoint.
//
//	@Summary		Health check
//	@Description	Returns the service health status
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	response.HealthResponse
//	@Router			/health [get]
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// SearchFlights handles direct flight searches on fixed dates.
//
//	@Summary		Search flights
//	@Description	Searches flights for fixed departure and return dates
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchFlightsRequest	true	"Search criteria"
//	@Success		200		{object}	domain.SearchResponse
//	@Failure		400		{object}	response.ErrorDetail
//	@Failure		503		{object}	response.ErrorDetail
//	@Router			/api/v1/flights/search [post]
func (h *TripHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		var verrs *ValidationErrors
		if errors.As(err, &verrs) {
			return response.ValidationError(c, verrs.ToMap())
		}
		return response.BadRequest(c, err.Error())
	}

	key := cache.Key(req.Origins, req.Destinations,
		"search", req.TripType, req.DepartureDate, req.ReturnDate,
		strconv.Itoa(req.Passengers))
	if cached, ok := h.cacheGet(key); ok {
		if result, ok := cached.(*domain.SearchResponse); ok {
			// Copy before flagging the hit; the cached object is shared
			// across concurrent requests and must stay immutable.
			hit := *result
			hit.Metadata.CacheHit = true
			h.log.Debug().Str("cache_key", key).Msg("Serving search from cache")
			return response.SearchResults(c, &hit)
		}
	}

	result, err := h.searchUC.Search(c.Request().Context(), toSearchCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	h.cacheSet(key, result)
	return response.SearchResults(c, result)
}

// PlanTrip handles the trip-duration planner endpoint. It widens the
// search across departure dates until a qualifying trip is found or the
// day budget runs out.
//
//	@Summary		Plan a trip by duration
//	@Description	Finds round trips whose elapsed duration best matches the requested trip length, expanding across departure dates
//	@Tags			trips
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlanTripRequest	true	"Planning criteria"
//	@Success		200		{object}	domain.PlanResult
//	@Failure		400		{object}	response.ErrorDetail
//	@Failure		503		{object}	response.ErrorDetail
//	@Failure		504		{object}	response.ErrorDetail
//	@Router			/api/v1/trips/plan [post]
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var req PlanTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		var verrs *ValidationErrors
		if errors.As(err, &verrs) {
			return response.ValidationError(c, verrs.ToMap())
		}
		return response.BadRequest(c, err.Error())
	}

	key := cache.Key(req.Origins, req.Destinations,
		"plan", req.DepartureDate,
		fmt.Sprintf("%g%s", req.TripLength, req.TripLengthUnit),
		strconv.FormatBool(req.NonstopPreferred),
		fmt.Sprintf("%g%s", req.MaxTripDuration, req.MaxTripDurationUnit),
		strconv.Itoa(req.DayBudget))
	if cached, ok := h.cacheGet(key); ok {
		if result, ok := cached.(*domain.PlanResult); ok {
			h.log.Debug().Str("cache_key", key).Msg("Serving plan from cache")
			return response.OK(c, result)
		}
	}

	result, err := h.planUC.Plan(c.Request().Context(), toPlanCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	h.cacheSet(key, result)
	return response.OK(c, result)
}

// BlackoutsResponse is the blackout listing payload.
type BlackoutsResponse struct {
	Periods []blackout.Period `json:"periods"`
	Total   int               `json:"total"`
}

// Blackouts lists loyalty-pass blackout periods. With start and end query
// parameters only the periods overlapping that range are returned.
//
//	@Summary		List blackout periods
//	@Description	Lists loyalty-pass blackout periods, optionally limited to a date range
//	@Tags			blackouts
//	@Produce		json
//	@Param			start	query		string	false	"Range start (YYYY-MM-DD)"
//	@Param			end		query		string	false	"Range end (YYYY-MM-DD)"
//	@Success		200		{object}	BlackoutsResponse
//	@Failure		400		{object}	response.ErrorDetail
//	@Router			/api/v1/blackouts [get]
func (h *TripHandler) Blackouts(c echo.Context) error {
	var req BlackoutRangeRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if req.Start == "" && req.End == "" {
		periods := blackout.Periods()
		return response.OK(c, &BlackoutsResponse{Periods: periods, Total: len(periods)})
	}

	if err := req.Validate(); err != nil {
		var verrs *ValidationErrors
		if errors.As(err, &verrs) {
			return response.ValidationError(c, verrs.ToMap())
		}
		return response.BadRequest(c, err.Error())
	}

	periods := blackout.PeriodsInRange(req.Start, req.End)
	if periods == nil {
		periods = []blackout.Period{}
	}
	return response.OK(c, &BlackoutsResponse{Periods: periods, Total: len(periods)})
}

// CacheClearResponse is the cache clear payload.
type CacheClearResponse struct {
	Message string `json:"message"`
}

// CacheClear drops every cached response.
//
//	@Summary		Clear the response cache
//	@Tags			cache
//	@Produce		json
//	@Success		200	{object}	CacheClearResponse
//	@Router			/api/v1/cache/clear [post]
func (h *TripHandler) CacheClear(c echo.Context) error {
	if h.cache != nil {
		h.cache.Clear()
	}
	return response.OK(c, &CacheClearResponse{Message: "Cache cleared"})
}

// CacheStats reports response cache entry counts.
//
//	@Summary		Response cache statistics
//	@Tags			cache
//	@Produce		json
//	@Success		200	{object}	cache.Stats
//	@Router			/api/v1/cache/stats [get]
func (h *TripHandler) CacheStats(c echo.Context) error {
	if h.cache == nil {
		return response.OK(c, cache.Stats{})
	}
	return response.OK(c, h.cache.Stats())
}

// cacheGet looks up a cached response, tolerating a nil cache.
func (h *TripHandler) cacheGet(key string) (any, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

// cacheSet stores a response, tolerating a nil cache.
func (h *TripHandler) cacheSet(key string, value any) {
	if h.cache != nil {
		h.cache.Set(key, value)
	}
}

// handleError maps domain errors to HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNoProviders), errors.Is(err, domain.ErrProviderUnavailable):
		h.log.Error().Err(err).Msg("Provider unavailable")
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, http.ErrHandlerTimeout):
		h.log.Warn().Err(err).Msg("Request timed out")
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		h.log.Warn().Err(err).Msg("Request cancelled")
		return response.RequestCancelled(c)
	default:
		h.log.Error().Err(err).Msg("Unexpected error")
		return response.InternalServerError(c)
	}
}
