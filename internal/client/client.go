// Package client provides a typed client for the Contacts API.
package client

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

	"github.com/contactdesk/contactdesk/internal/model"
)

// ErrNetwork marks failures where the request never produced an HTTP
// response (connection refused, DNS, cancelled context). Callers match it
// with errors.Is to show a generic retry prompt.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx response from the API, decoded from the standard
// error body.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Client is a client for the Contacts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a Contacts API client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateContactRequest is the body for creating a contact.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// List fetches all contacts.
func (c *Client) List(ctx context.Context) ([]model.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/contacts", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var contacts []model.Contact
	if err := c.do(req, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Create submits a candidate contact and returns the stored record.
func (c *Client) Create(ctx context.Context, req *CreateContactRequest) (*model.Contact, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contacts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var created model.Contact
	if err := c.do(httpReq, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes the contact with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/contacts/"+id, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, nil)
}

// do executes the request and decodes the response into out (when out is
// non-nil and the response has a body). Transport-level failures are wrapped
// with ErrNetwork; non-2xx statuses become *APIError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError builds an *APIError from an error response body. A body that
// fails to decode still yields the status code.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	return apiErr
}
