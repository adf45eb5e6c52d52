// Package fetch implements the loader for the remote animal listing: one
// HTTP call per load cycle retrieving the entire dataset, all-or-nothing.
// There are no retries and no deduplication of overlapping loads; a caller
// that wants a fresh dataset simply invokes Load again.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
	"github.com/Aliagaaaaaa/pets/internal/logging"
)

// DefaultEndpoint is the public animal listing API.
const DefaultEndpoint = "https://huachitos.cl/api/animales"

// defaultTimeout bounds a single load cycle when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// Client loads the animal dataset from a listing endpoint.
type Client struct {
	// Endpoint is the listing URL. Defaults to DefaultEndpoint.
	Endpoint string

	// HTTPClient is the transport used for requests. Tests point it at an
	// httptest server.
	HTTPClient *http.Client
}

// listingPayload mirrors the endpoint's response envelope. The meta block is
// the source's own pagination; this client re-paginates everything locally
// and reads meta only to detect a truncated dataset.
type listingPayload struct {
	Data []catalog.Animal `json:"data"`
	Meta struct {
		LastPage int `json:"last_page"`
		Total    int `json:"total"`
	} `json:"meta"`
}

// NewClient creates a Client for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Load retrieves the full dataset in a single request. On any failure it
// returns a nil dataset and an error wrapping ErrNetwork, ErrBadResponse, or
// ErrMalformedPayload; callers must treat failure as all-or-nothing.
//
// Each load cycle gets a fresh ULID trace ID, attached to the log entries
// and sent upstream as X-Request-Id.
func (c *Client) Load(ctx context.Context) ([]catalog.Animal, error) {
	log := logging.ComponentLogger(logging.FromContext(ctx), "fetch")

	traceID := logging.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = logging.NewTraceID()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", traceID)

	log.Debug().
		Str("trace_id", traceID).
		Str("endpoint", c.Endpoint).
		Msg("loading animal listing")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Error().Str("trace_id", traceID).Err(err).Msg("listing request failed")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().
			Str("trace_id", traceID).
			Int("status", resp.StatusCode).
			Msg("listing returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var payload listingPayload
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		log.Error().Str("trace_id", traceID).Err(decodeErr).Msg("could not decode listing payload")
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, decodeErr)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedPayload)
	}

	// The endpoint is expected to return everything in one page. If the
	// source reports more pages, the local dataset is incomplete.
	if payload.Meta.LastPage > 1 {
		log.Warn().
			Str("trace_id", traceID).
			Int("last_page", payload.Meta.LastPage).
			Int("source_total", payload.Meta.Total).
			Int("received", len(payload.Data)).
			Msg("listing is truncated, dataset incomplete")
	}

	log.Info().
		Str("trace_id", traceID).
		Int("animals", len(payload.Data)).
		Msg("animal listing loaded")

	return payload.Data, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
