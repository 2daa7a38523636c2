// Package apiclient talks to the adventure tracker's HTTP API. It implements
// the record and image store contracts the tracker engine consumes, so a
// client process can run the same reconciliation logic against a remote
// backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/models"
)

const requestTimeout = 30 * time.Second

// Client talks to the adventures HTTP API. A zero-value base URL means the
// backend is unconfigured: every call reports common.ErrBackendUnavailable
// and the caller falls back to its local snapshot.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

// NewClient builds a Client for the given base URL, e.g.
// "http://localhost:8080". An empty baseURL is allowed and produces a client
// whose calls all report common.ErrBackendUnavailable. The token, if set, is
// sent as a bearer credential on every request.
func NewClient(baseURL, token string) (*Client, error) {
	c := &Client{
		token: token,
		http:  &http.Client{Timeout: requestTimeout},
	}

	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return c, nil
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	c.baseURL = u
	return c, nil
}

// FetchAll retrieves every stored document grouped by category.
func (c *Client) FetchAll(ctx context.Context) (map[string][]models.Document, error) {
	var payload map[string][]models.Document
	if err := c.do(ctx, http.MethodGet, "/adventures", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

type saveRequest struct {
	Category  string           `json:"category"`
	Adventure models.Adventure `json:"adventure"`
}

// upsertResponse covers both shapes the save endpoint answers with: the
// stored document on success, {"fallback":true} when the server's own
// document store is unreachable.
type upsertResponse struct {
	models.Document
	Fallback bool `json:"fallback"`
}

// Upsert writes one document. A server-side fallback answer is mapped to
// common.ErrBackendUnavailable so the caller snapshots locally, the same as
// when the server itself is unreachable.
func (c *Client) Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error) {
	var payload upsertResponse
	err := c.do(ctx, http.MethodPost, "/adventures", saveRequest{Category: category, Adventure: adventure}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Fallback {
		return nil, fmt.Errorf("%w: server stored nothing, falling back", common.ErrBackendUnavailable)
	}
	return &payload.Document, nil
}

type uploadRequest struct {
	Image    string `json:"image"`
	FileName string `json:"fileName,omitempty"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload externalizes one inline image payload and returns its URL.
func (c *Client) Upload(ctx context.Context, payload string, suggestedName string) (string, error) {
	var resp uploadResponse
	err := c.do(ctx, http.MethodPost, "/images", uploadRequest{Image: payload, FileName: suggestedName}, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}

type deleteRequest struct {
	URL string `json:"url"`
}

// DeleteImage removes a stored image by its URL.
func (c *Client) DeleteImage(ctx context.Context, ref string) error {
	return c.do(ctx, http.MethodDelete, "/images", deleteRequest{URL: ref}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	if c.baseURL == nil {
		return fmt.Errorf("%w: no api url configured", common.ErrBackendUnavailable)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return apiError(method, path, resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// apiError maps HTTP failures onto the shared sentinels where the status is
// unambiguous, and keeps the server's message otherwise.
func apiError(method, path string, resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest && method == http.MethodPost && path == "/images":
		return fmt.Errorf("%w: %s", common.ErrInvalidImageFormat, msg)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrInvalidToken, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", common.ErrBackendUnavailable, msg)
	default:
		return fmt.Errorf("api %s returned status %d: %s", path, resp.StatusCode, msg)
	}
}
