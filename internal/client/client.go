// Package client is a typed client for the to-do procedures. It owns the
// session cookie and an explicit list cache that is invalidated after every
// successful mutation, so the next read always hits the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// ListKey is the cache key under which the fetched list is stored.
const ListKey = "todo:list"

// TodoItem is the list projection returned by getItems.
type TodoItem struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CategoryID  *string   `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListCache caches the fetched to-do list between reads.
type ListCache interface {
	Get(key string) ([]TodoItem, bool)
	Set(key string, items []TodoItem)
	Invalidate(key string)
}

// APIError is the error body returned by the server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Client issues the four to-do procedures against a running server.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   ListCache
}

// New creates a Client. The cache is required; mutations invalidate it and
// GetItems reads through it.
func New(baseURL string, cache ListCache) (*Client, error) {
	if cache == nil {
		return nil, fmt.Errorf("client: list cache is required")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
		cache: cache,
	}, nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/signup", body, nil)
}

// Login authenticates and stores the session cookie for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/login", body, nil)
}

// CreateTodo creates a to-do and invalidates the cached list.
func (c *Client) CreateTodo(ctx context.Context, text string, categoryID *string) (*TodoItem, error) {
	body := map[string]any{"text": text}
	if categoryID != nil {
		body["categoryId"] = *categoryID
	}

	var created TodoItem
	if err := c.do(ctx, http.MethodPost, "/api/todo/createToDo", body, &created); err != nil {
		return nil, err
	}

	c.cache.Invalidate(ListKey)
	return &created, nil
}

// GetItems returns the user's to-dos, serving from cache when fresh.
func (c *Client) GetItems(ctx context.Context) ([]TodoItem, error) {
	if items, ok := c.cache.Get(ListKey); ok {
		return items, nil
	}

	var resp struct {
		Items []TodoItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/todo/getItems", nil, &resp); err != nil {
		return nil, err
	}

	c.cache.Set(ListKey, resp.Items)
	return resp.Items, nil
}

// UpdateCompletion toggles one row and invalidates the cached list.
func (c *Client) UpdateCompletion(ctx context.Context, id uint64, isCompleted bool) error {
	body := map[string]any{"id": id, "isCompleted": isCompleted}
	if err := c.do(ctx, http.MethodPost, "/api/todo/updateCompletion", body, nil); err != nil {
		return err
	}

	c.cache.Invalidate(ListKey)
	return nil
}

// DeleteItem deletes one row and invalidates the cached list.
func (c *Client) DeleteItem(ctx context.Context, id uint64) error {
	body := map[string]any{"id": id}
	if err := c.do(ctx, http.MethodPost, "/api/todo/deleteItem", body, nil); err != nil {
		return err
	}

	c.cache.Invalidate(ListKey)
	return nil
}

// InvalidateList drops the cached list so the next read refetches.
func (c *Client) InvalidateList() {
	c.cache.Invalidate(ListKey)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return fmt.Errorf("client: server returned %s", resp.Status)
		}
		return &apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: failed to decode response: %w", err)
		}
	}

	return nil
}
