// Package amadeus implements the flight provider port against the Amadeus
// Self-Service flight-offers API. It owns the OAuth2 token lifecycle,
// per-route searches with retry, and conversion of upstream offers into
// domain flight records.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/logger"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/retry"
	"github.com/trip-planner/trip-duration-search-system/internal/infrastructure/timeutil"
)

const (
	// tokenPath is the OAuth2 client-credentials grant endpoint.
	tokenPath = "/v1/security/oauth2/token"

	// offersPath is the flight-offers-search endpoint.
	offersPath = "/v2/shopping/flight-offers"

	// maxOffersPerRoute is requested per route so enough carrier-specific
	// results survive upstream filtering.
	maxOffersPerRoute = 250

	// carrierFilter restricts results to the loyalty-pass carrier.
	carrierFilter = "F9"

	// tokenExpirySlack refreshes the token slightly before it expires.
	tokenExpirySlack = 30 * time.Second
)

// errTransient marks upstream failures worth retrying (network errors,
// 5xx responses).
var errTransient = errors.New("transient amadeus error")

// Config holds the client's connection settings.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

// Client is a minimal Amadeus REST client, safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	clock      timeutil.Clock
	log        *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Client from config. Returns an error when the
// credentials are missing.
func NewClient(cfg Config, clock timeutil.Clock, log *logger.Logger) (*Client, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("amadeus: API credentials not provided")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("amadeus: base URL not provided")
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		clock:      clock,
		log:        log,
	}, nil
}

// FlightOffers searches one origin/destination route for the given dates.
// An empty returnDate searches one-way. Transient upstream failures are
// retried with backoff before an error is reported.
func (c *Client) FlightOffers(ctx context.Context, origin, destination, departureDate, returnDate string, adults int) ([]Offer, error) {
	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", departureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("max", strconv.Itoa(maxOffersPerRoute))
	params.Set("includedAirlineCodes", carrierFilter)
	if returnDate != "" {
		params.Set("returnDate", returnDate)
	}

	var offers []Offer
	err := retry.Do(ctx, func() error {
		var err error
		offers, err = c.fetchOffers(ctx, params)
		return err
	}, retryConfig())

	return offers, err
}

// retryConfig retries only transient failures.
func retryConfig() retry.Config {
	cfg := retry.ProviderConfig
	cfg.RetryIf = func(err error) bool {
		return errors.Is(err, errTransient)
	}
	return cfg
}

// fetchOffers performs one flight-offers request.
func (c *Client) fetchOffers(ctx context.Context, params url.Values) ([]Offer, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + offersPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build offers request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read offers response: %v", errTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Token may have been revoked upstream; drop it so the retry
		// re-authenticates.
		c.invalidateToken()
		return nil, fmt.Errorf("%w: unauthorized", errTransient)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", errTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("amadeus: offers request failed with status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed offersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("amadeus: decode offers response: %w", err)
	}
	return parsed.Data, nil
}

// token returns a valid access token, requesting a new one when the cached
// token is missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.clock.Now().Add(tokenExpirySlack).Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", errTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read token response: %v", errTransient, err)
	}

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("%w: token endpoint status %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus: token request failed with status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("amadeus: decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", errors.New("amadeus: token response missing access_token")
	}

	c.accessToken = parsed.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)

	c.log.Debug().Int("expires_in", parsed.ExpiresIn).Msg("Obtained Amadeus access token")
	return c.accessToken, nil
}

// invalidateToken drops the cached token so the next call re-authenticates.
func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.tokenExpiry = time.Time{}
}

// truncate limits response bodies quoted in error messages.
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
