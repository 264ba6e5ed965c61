// Package admin implements the console's resource-management state: an
// HTTP client for the API, a list manager owning a resource's in-memory
// rows and view mode, and form-state helpers (auto-slug, repeatable rows,
// deferred file uploads). Any admin frontend drives these; the list is
// only ever patched after the server confirms a mutation.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"northlinktelecom.com/cmd/server/client"
)

// APIError is a non-2xx response from the API, decoded from its JSON error
// body when one is present
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client is a thin HTTP client over the resource endpoints
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client for the API at baseURL, authenticating with
// the given access token
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    client.New(),
	}
}

// List fetches a resource collection into out
func (c *Client) List(ctx context.Context, resource string, out interface{}) error {
	return c.do(ctx, http.MethodGet, "/api/"+resource, nil, out)
}

// Get fetches a single resource row into out
func (c *Client) Get(ctx context.Context, resource, id string, out interface{}) error {
	return c.do(ctx, http.MethodGet, "/api/"+resource+"/"+id, nil, out)
}

// Create posts a new resource row, decoding the created row into out
func (c *Client) Create(ctx context.Context, resource string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, "/api/"+resource, body, out)
}

// Update puts changed fields for a row, decoding the updated row into out
func (c *Client) Update(ctx context.Context, resource, id string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, "/api/"+resource+"/"+id, body, out)
}

// Patch sends a PATCH to a resource subpath, e.g. "applications/{id}/status"
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, "/api/"+strings.TrimPrefix(path, "/"), body, out)
}

// Delete removes a resource row
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/"+resource+"/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Code = errBody.Error
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
