// Package seatsaero is the transport client for the seats.aero Partner
// API: cached award search, live search, trip detail, and a reachability
// probe.
package seatsaero

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aeropoints/awardsearch/internal/ratelimit"
	"github.com/aeropoints/awardsearch/pkg/logger"
)

const (
	defaultBaseURL = "https://seats.aero"
	partnerAPIPath = "/partnerapi"
	userAgent      = "AeroPoints/1.0"

	// The key management console hands out this literal before a real
	// key is generated; treat it the same as no key at all.
	placeholderAPIKey = "your-api-key-here"

	cachedSearchTimeout = 15 * time.Second
	liveSearchTimeout   = 45 * time.Second
	tripDetailTimeout   = 30 * time.Second
	probeTimeout        = 10 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Limiter *ratelimit.EndpointLimiter
	Logger  logger.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.EndpointLimiter
	log        logger.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		// Timeouts are per call via context; the client itself has none.
		httpClient: &http.Client{},
		limiter:    cfg.Limiter,
		log:        log,
	}
}

// IsConfigured reports whether a usable API key is present.
func (c *Client) IsConfigured() bool {
	return c.apiKey != "" && c.apiKey != placeholderAPIKey
}

// SearchCached runs the cached availability search. Errors propagate to
// the caller, which decides whether to fall back to live search.
func (c *Client) SearchCached(ctx context.Context, p SearchParams) (*SearchResponse, error) {
	if !c.IsConfigured() {
		return &SearchResponse{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cachedSearchTimeout)
	defer cancel()

	if err := c.wait(ctx, "search"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("origin_airport", p.Origin)
	q.Set("destination_airport", p.Destination)
	q.Set("cabin", p.Cabin)
	q.Set("start_date", p.StartDate)
	q.Set("end_date", p.EndDate)

	body, err := c.get(ctx, "search", "/search?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &APIError{Op: "search", Err: err}
	}
	return &resp, nil
}

// SearchLive runs the live availability search: slower, but not bound to
// the cached snapshot.
func (c *Client) SearchLive(ctx context.Context, p SearchParams, passengers int) (*SearchResponse, error) {
	if !c.IsConfigured() {
		return &SearchResponse{}, nil
	}
	if passengers <= 0 {
		passengers = 1
	}

	ctx, cancel := context.WithTimeout(ctx, liveSearchTimeout)
	defer cancel()

	if err := c.wait(ctx, "live"); err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"origin_airport":      p.Origin,
		"destination_airport": p.Destination,
		"cabin":               p.Cabin,
		"start_date":          p.StartDate,
		"end_date":            p.EndDate,
		"passengers":          passengers,
		"include_filtered":    false,
	}

	body, err := c.post(ctx, "live", "/live/search", reqBody)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &APIError{Op: "live", Err: err}
	}
	return &resp, nil
}

// FetchTrips fetches the full itineraries behind one availability record.
// A 404 means the availability expired; it is returned as ErrNotFound.
func (c *Client) FetchTrips(ctx context.Context, availabilityID string) ([]Trip, error) {
	if !c.IsConfigured() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, tripDetailTimeout)
	defer cancel()

	if err := c.wait(ctx, "trips"); err != nil {
		return nil, err
	}

	path := "/trips/" + url.PathEscape(availabilityID) + "?include_filtered=true"
	body, err := c.get(ctx, "trips", path)
	if err != nil {
		return nil, err
	}

	var env tripsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Op: "trips", Err: err}
	}
	return env.Data, nil
}

// FetchLiveTrips issues a live search scoped to one route/date/program and
// decodes the results as trips. Some cached availabilities carry no trip
// detail; this is the fallback path for those.
func (c *Client) FetchLiveTrips(ctx context.Context, p SearchParams, source string) ([]Trip, error) {
	if !c.IsConfigured() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, liveSearchTimeout)
	defer cancel()

	if err := c.wait(ctx, "live"); err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"origin_airport":      p.Origin,
		"destination_airport": p.Destination,
		"cabin":               p.Cabin,
		"start_date":          p.StartDate,
		"end_date":            p.EndDate,
	}
	if source != "" {
		reqBody["source"] = source
	}

	body, err := c.post(ctx, "live", "/live/search", reqBody)
	if err != nil {
		return nil, err
	}

	var env tripsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Op: "live", Err: err}
	}
	return env.Data, nil
}

// ConnectionStatus is the result of the reachability probe.
type ConnectionStatus struct {
	OK      bool
	Message string
}

// TestConnection hits the routes endpoint, the lightest Partner API call,
// and classifies the outcome for operational reporting. It is not part of
// the search path.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	if !c.IsConfigured() {
		return ConnectionStatus{OK: false, Message: "API key not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := c.get(ctx, "routes", "/routes?source=all")
	if err == nil {
		return ConnectionStatus{OK: true, Message: "Partner API connection successful"}
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return ConnectionStatus{OK: false, Message: "Invalid API key"}
	case errors.Is(err, ErrRateLimited):
		return ConnectionStatus{OK: false, Message: "Partner API rate limit exceeded"}
	default:
		return ConnectionStatus{OK: false, Message: "Partner API unreachable: " + err.Error()}
	}
}

func (c *Client) wait(ctx context.Context, endpoint string) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return &APIError{Op: endpoint, Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+partnerAPIPath+path, nil)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	return c.do(op, req)
}

func (c *Client) post(ctx context.Context, op, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+partnerAPIPath+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	return c.do(op, req)
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	req.Header.Set("Partner-Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("partner api call failed",
			logger.F("op", op),
			logger.F("status", resp.StatusCode))
		return nil, newStatusError(op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	c.log.Debug("partner api call",
		logger.F("op", op),
		logger.F("status", resp.StatusCode),
		logger.F("bytes", len(body)))
	return body, nil
}
