// Package matcher talks to the remote semantic matching service.
package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

const (
	queryPath  = "/api/v1/query"
	healthPath = "/api/v1/health"

	healthKey = "health"

	// maxBodySize bounds how much of a response is read before decoding.
	maxBodySize = 4 << 20
)

// QueryRequest is everything sent for one match request.
type QueryRequest struct {
	Query       string
	NumResults  int
	Preferences preference.Record
	Tier        preference.Tier
}

// Health is the informational liveness of the matching service.
type Health struct {
	Reachable bool
	Status    string
	CheckedAt time.Time
}

// Client performs single, non-retried calls against the matching service.
type Client struct {
	baseURL   string
	client    *http.Client
	health    *cache.Cache
	healthTTL time.Duration
}

// NewClient creates a Client. A zero timeout leaves the request bounded only by the
// transport and the caller's context; a zero healthTTL disables health caching.
func NewClient(baseURL string, timeout, healthTTL time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		health:    cache.New(healthTTL, 2*healthTTL),
		healthTTL: healthTTL,
	}
}

// Query sends one POST /api/v1/query and returns the service's ranking as-is.
// Every failure is an *Error tagged with its Kind.
func (c *Client) Query(ctx context.Context, req QueryRequest) ([]city.Scored, error) {
	body, err := json.Marshal(queryRequest{
		Query:       req.Query,
		NumResults:  req.NumResults,
		Preferences: toPreferencesDTO(req.Preferences),
		Tier:        string(req.Tier),
	})
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: "query", Cause: fmt.Errorf("encoding request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queryPath, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: "query", Cause: fmt.Errorf("creating request: %w", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: "query", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &Error{Kind: KindService, Op: "query", StatusCode: resp.StatusCode}
	}

	decoded, err := decodeQueryResponse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Kind: KindDecode, Op: "query", Cause: err}
	}

	results := make([]city.Scored, len(decoded.Results))
	for i, r := range decoded.Results {
		results[i] = r.toScored()
	}

	return results, nil
}

// decodeQueryResponse accepts exactly one JSON object with no null results.
func decodeQueryResponse(r io.Reader) (*queryResponse, error) {
	dec := json.NewDecoder(r)

	var decoded *queryResponse
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}

	if decoded == nil {
		return nil, errors.New("null response body")
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after response body")
	}

	for i, r := range decoded.Results {
		if r == nil {
			return nil, fmt.Errorf("result %d is null", i)
		}
	}

	return decoded, nil
}

// Health probes GET /api/v1/health. Results, including failures, are cached for the
// configured TTL so repeated callers do not hammer an unreachable service.
func (c *Client) Health(ctx context.Context) Health {
	if c.healthTTL <= 0 {
		return c.probe(ctx)
	}

	if cached, ok := c.health.Get(healthKey); ok {
		return cached.(Health)
	}

	h := c.probe(ctx)
	c.health.SetDefault(healthKey, h)

	return h
}

func (c *Client) probe(ctx context.Context) Health {
	h := Health{CheckedAt: time.Now()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		h.Status = err.Error()
		return h
	}

	resp, err := c.client.Do(req)
	if err != nil {
		h.Status = "unreachable"
		return h
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.Status = fmt.Sprintf("status %d", resp.StatusCode)
		return h
	}

	var body struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		h.Status = "malformed health response"
		return h
	}

	h.Reachable = true
	h.Status = body.Status

	return h
}
