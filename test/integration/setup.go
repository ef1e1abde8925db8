// Package integration provides helpers and integration tests for the trip
// planning system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/trip-duration-search-system/internal/adapter/http"
	"github.com/trip-planner/trip-duration-search-system/internal/domain"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/cache"
	"github.com/trip-planner/trip-duration-search-system/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
	Cache   *cache.ResponseCache
}

// NewTestServer creates a new test server backed by the given provider,
// using default use case configuration and a fresh response cache.
func NewTestServer(provider domain.FlightProvider) *TestServer {
	return NewTestServerWithConfig(provider, nil)
}

// NewTestServerWithConfig creates a test server with custom planner
// configuration.
func NewTestServerWithConfig(provider domain.FlightProvider, cfg *usecase.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	responseCache := cache.New(time.Minute)
	searchUC := usecase.NewFlightSearch(provider, nil)
	planUC := usecase.NewTripPlanner(provider, cfg, nil)

	handler := httpAdapter.NewTripHandler(searchUC, planUC, responseCache, nil)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Cache:   responseCache,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a flight search request.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// PlanRequest posts a trip planning request.
func (ts *TestServer) PlanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/plan",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// BlackoutsRequest makes a blackout listing request with an optional
// query string (e.g., "?start=2025-11-01&end=2025-12-01").
func (ts *TestServer) BlackoutsRequest(query string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/blackouts" + query,
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParsePlanResult parses the response body as a PlanResult.
func (r *Response) ParsePlanResult() (*domain.PlanResult, error) {
	var resp domain.PlanResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origins       []string `json:"origins"`
	Destinations  []string `json:"destinations"`
	TripType      string   `json:"tripType,omitempty"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	Passengers    int      `json:"passengers,omitempty"`
}

// PlanRequestBody is a helper struct for building plan request bodies.
type PlanRequestBody struct {
	Origins          []string `json:"origins"`
	Destinations     []string `json:"destinations"`
	DepartureDate    string   `json:"departureDate"`
	TripLength       float64  `json:"tripLength"`
	TripLengthUnit   string   `json:"tripLengthUnit,omitempty"`
	NonstopPreferred bool     `json:"nonstopPreferred,omitempty"`
	MaxTripDuration  float64  `json:"maxTripDuration,omitempty"`
	DayBudget        int      `json:"dayBudget,omitempty"`
}

// DefaultSearchRequest returns a valid round-trip search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origins:       []string{"DEN"},
		Destinations:  []string{"MCO"},
		DepartureDate: "2025-06-15",
		ReturnDate:    "2025-06-18",
		Passengers:    1,
	}
}

// DefaultPlanRequest returns a valid plan request body targeting a
// three-day trip.
func DefaultPlanRequest() PlanRequestBody {
	return PlanRequestBody{
		Origins:       []string{"DEN"},
		Destinations:  []string{"MCO"},
		DepartureDate: "2025-06-15",
		TripLength:    3,
		DayBudget:     5,
	}
}
