// Package mastodon is a thin client for the upstream social network API. The
// API is treated as a black-box paginated data source: the client builds
// requests, decodes payloads and reports non-success statuses as errors, and
// leaves retry policy to its callers.
package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nebulink/nebulink/pkg/domain"
)

// Client talks to one instance, optionally authenticated
type Client struct {
	instance  string
	token     string
	userAgent string
	http      *http.Client
}

// New creates a client for the given instance. Token may be empty for
// public endpoints.
func New(instance, token string, timeout time.Duration, userAgent string) *Client {
	return &Client{
		instance:  strings.TrimRight(instance, "/"),
		token:     token,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// Instance returns the instance base URL the client points at
func (c *Client) Instance() string { return c.instance }

// Timeline fetches one page of statuses from the given API path. Search
// responses arrive wrapped in a {statuses: [...]} envelope and are unwrapped
// transparently.
func (c *Client) Timeline(ctx context.Context, path string) ([]domain.Status, error) {
	body, err := c.get(ctx, c.instance+path)
	if err != nil {
		return nil, err
	}

	var statuses []domain.Status
	if err := json.Unmarshal(body, &statuses); err == nil {
		return statuses, nil
	}

	var envelope struct {
		Statuses []domain.Status `json:"statuses"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode timeline page: %w", err)
	}
	return envelope.Statuses, nil
}

// Context fetches the reply thread for a status and returns the descendants
func (c *Client) Context(ctx context.Context, statusID string) ([]domain.Status, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/api/v1/statuses/%s/context", c.instance, statusID))
	if err != nil {
		return nil, err
	}

	var thread struct {
		Descendants []domain.Status `json:"descendants"`
	}
	if err := json.Unmarshal(body, &thread); err != nil {
		return nil, fmt.Errorf("decode status context: %w", err)
	}
	return thread.Descendants, nil
}

// Translate asks the instance to translate a status into the account's
// language, returning the translated rich-text content
func (c *Client) Translate(ctx context.Context, statusID string) (string, error) {
	body, err := c.post(ctx, fmt.Sprintf("%s/api/v1/statuses/%s/translate", c.instance, statusID), nil)
	if err != nil {
		return "", err
	}

	var result struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode translation: %w", err)
	}
	if result.Content == "" {
		return "", fmt.Errorf("translation returned no content")
	}
	return result.Content, nil
}

// SetFavourite favourites or unfavourites a status
func (c *Client) SetFavourite(ctx context.Context, statusID string, favourited bool) error {
	action := "favourite"
	if !favourited {
		action = "unfavourite"
	}
	_, err := c.post(ctx, fmt.Sprintf("%s/api/v1/statuses/%s/%s", c.instance, statusID, action), nil)
	return err
}

// CreateKeywordFilter creates a server-side keyword filter with the given
// title and keywords, hiding matches across timelines
func (c *Client) CreateKeywordFilter(ctx context.Context, title string, keywords []string) error {
	payload := map[string]any{
		"title":         title,
		"context":       []string{"home", "notifications", "public"},
		"filter_action": "hide",
	}
	body, err := c.post(ctx, c.instance+"/api/v2/filters", payload)
	if err != nil {
		return fmt.Errorf("create filter: %w", err)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode created filter: %w", err)
	}

	for _, keyword := range keywords {
		kw := map[string]any{"keyword": keyword, "whole_word": false}
		if _, err := c.post(ctx, fmt.Sprintf("%s/api/v2/filters/%s/keywords", c.instance, created.ID), kw); err != nil {
			return fmt.Errorf("add filter keyword %q: %w", keyword, err)
		}
	}
	return nil
}

// RemoveKeywordFilter deletes the server-side filter with the given title,
// no-op when it does not exist
func (c *Client) RemoveKeywordFilter(ctx context.Context, title string) error {
	body, err := c.get(ctx, c.instance+"/api/v2/filters")
	if err != nil {
		return fmt.Errorf("list filters: %w", err)
	}

	var filters []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &filters); err != nil {
		return fmt.Errorf("decode filters: %w", err)
	}

	for _, f := range filters {
		if f.Title != title {
			continue
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
			fmt.Sprintf("%s/api/v2/filters/%s", c.instance, f.ID), http.NoBody)
		if err != nil {
			return fmt.Errorf("create delete request: %w", err)
		}
		if _, err := c.do(req); err != nil {
			return fmt.Errorf("delete filter %s: %w", f.ID, err)
		}
		return nil
	}
	return nil
}

// get issues an authenticated GET and returns the response body
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

// post issues an authenticated POST with an optional JSON payload
func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// do executes the request with auth headers and reads the body
func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, req.URL.Path)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf.Bytes(), nil
}
