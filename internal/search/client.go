// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search talks to the video moment search backend: one JSON POST per
// query, answered by a JSON array of matching moments.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/moment-search/internal/httputil"
	"github.com/pdiddy/moment-search/pkg/types"
)

// DefaultEndpoint is where the backend listens when run locally.
const DefaultEndpoint = "http://localhost:8080/search"

// Client queries the backend search endpoint.
type Client struct {
	HTTP      *http.Client
	Endpoint  string
	UserAgent string
}

// NewClient returns a Client for cfg. A zero timeout keeps the transport
// default.
func NewClient(cfg types.BackendConfig) *Client {
	endpoint := cfg.URL
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		Endpoint:  endpoint,
		UserAgent: cfg.UserAgent,
	}
}

// Search sends query to the backend unchanged and returns the results in
// response order. Non-2xx statuses, transport failures, and bodies that are
// not a JSON array of objects are errors.
func (c *Client) Search(ctx context.Context, query string) ([]types.Result, error) {
	resp, err := httputil.PostJSON(ctx, c.HTTP, c.Endpoint, types.SearchRequest{Query: query}, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("search backend request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return nil, fmt.Errorf("search backend: %w", err)
	}

	return decodeResults(resp.Body)
}

// decodeResults reads exactly one JSON array of objects from r. A null body,
// a null element, or anything after the array is a shape error.
func decodeResults(r io.Reader) ([]types.Result, error) {
	dec := json.NewDecoder(r)
	var elems []*types.Result
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("parsing search backend response: %w", err)
	}
	if elems == nil {
		return nil, errors.New("parsing search backend response: body is not a JSON array")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("parsing search backend response: unexpected data after the result array")
	}

	results := make([]types.Result, 0, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("parsing search backend response: element %d is null", i)
		}
		results = append(results, *e)
	}
	return results, nil
}
