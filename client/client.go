// client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"todostarter/domain"
)

const DefaultBaseURL = "http://localhost:3333"

// NetworkError reports a non-success HTTP response. The message matches
// what the UI shows in its error panel.
type NetworkError struct {
	Status int
}

func (e *NetworkError) Error() string {
	return "Network response was not ok"
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL string
	// Delay is slept after a successful response, so the loading state
	// stays visible in demos. Not a retry or backoff knob.
	Delay      time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	delay   time.Duration
	http    *http.Client
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: opts.BaseURL,
		delay:   opts.Delay,
		http:    opts.HTTPClient,
	}
}

// FetchTodos retrieves the full list, preserving server order.
func (c *Client) FetchTodos(ctx context.Context) (domain.Todos, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/todos", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &NetworkError{Status: resp.StatusCode}
	}

	var todos domain.Todos
	if err := json.NewDecoder(resp.Body).Decode(&todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}

	if err := c.sleep(ctx); err != nil {
		return nil, err
	}

	return todos, nil
}

// CreateTodo posts a new record and returns it as the server stored it.
func (c *Client) CreateTodo(ctx context.Context, name string) (domain.Todo, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return domain.Todo{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/todos", bytes.NewReader(body))
	if err != nil {
		return domain.Todo{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Todo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return domain.Todo{}, &NetworkError{Status: resp.StatusCode}
	}

	var todo domain.Todo
	if err := json.NewDecoder(resp.Body).Decode(&todo); err != nil {
		return domain.Todo{}, fmt.Errorf("failed to decode todo: %w", err)
	}

	return todo, nil
}

func (c *Client) sleep(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
