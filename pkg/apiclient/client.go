// Package apiclient is the data layer consumed by browser-facing and CLI
// frontends: typed access to the members and tasks API plus cached list
// views that stay consistent with the server after each mutation.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrMsgNetwork is used when a request fails before the server could
// attach a message to the response.
const ErrMsgNetwork = "network request failed"

type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// APIError carries the server's user-facing message when one was returned.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL string
	hc      *http.Client
	lang    string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLanguage sets the Accept-Language header sent with every request.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Count      *int            `json:"count"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

// do performs one API call and decodes the envelope. On failure the
// returned error carries the server message when present, otherwise the
// generic network-failure message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (*response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &APIError{Message: ErrMsgNetwork}
	}
	defer resp.Body.Close()

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: ErrMsgNetwork}
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = ErrMsgNetwork
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, err
		}
	}

	return &envelope, nil
}
