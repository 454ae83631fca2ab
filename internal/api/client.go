// Package api is the HTTP client for the wish API.
//
// Every method classifies its failure: a request that never produced a
// response is an errors.ErrNetwork error, a non-2xx response is an
// errors.ErrAPI error carrying the status code (404 also matches
// errors.ErrNotFound), and an unreadable 2xx body is an errors.ErrAPI error
// without a status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wexinc/wishmachine/internal/config"
	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/wish"
)

const (
	wishesPath = "/api/wishes"
	healthPath = "/health"

	// maxBodyRead caps how much of any response body is read.
	maxBodyRead = 4 << 20
)

// Health is the backend health report.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client talks to one wish API base URL.
type Client struct {
	baseURL    string
	userAgent  string
	HTTPClient *http.Client
}

// NewClient creates a client from the API section of the configuration.
func NewClient(cfg config.APIConfig) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: ua,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// BaseURL returns the normalized base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every stored wish.
func (c *Client) List(ctx context.Context) ([]wish.Wish, error) {
	var wishes []wish.Wish
	if err := c.do(ctx, "list wishes", http.MethodGet, wishesPath, nil, &wishes); err != nil {
		return nil, err
	}
	if wishes == nil {
		// JSON null
		wishes = []wish.Wish{}
	}
	return wishes, nil
}

// Create submits a new wish. The stored record is returned when the server
// sends one back; a 2xx with an empty body yields nil and no error.
func (c *Client) Create(ctx context.Context, req wish.CreateRequest) (*wish.Wish, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wish: %w", err)
	}

	var created *wish.Wish
	if err := c.do(ctx, "create wish", http.MethodPost, wishesPath, body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches one wish by id.
func (c *Client) Get(ctx context.Context, id int64) (*wish.Wish, error) {
	var w wish.Wish
	if err := c.do(ctx, "get wish", http.MethodGet, wishPath(id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete removes one wish by id. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete wish", http.MethodDelete, wishPath(id), nil, nil)
}

// Health queries the backend health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, "health check", http.MethodGet, healthPath, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func wishPath(id int64) string {
	return wishesPath + "/" + strconv.FormatInt(id, 10)
}

// do performs one request. out may be nil to discard the body.
func (c *Client) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	url := c.baseURL + path
	log := logging.Global().WithContext(logging.WithOperation(ctx, op))

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return wisherrors.Transport(op, url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Warn("request failed", "method", method, "url", url, "error", err)
		return wisherrors.Transport(op, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
	if err != nil {
		log.Warn("reading response failed", "method", method, "url", url, "status", resp.StatusCode, "error", err)
		return wisherrors.Transport(op, url, err)
	}

	log.Debug("request complete",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("server rejected request", "method", method, "url", url, "status", resp.StatusCode)
		return wisherrors.Status(op, url, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// Reads must carry a document; writes may answer with nothing.
		if method == http.MethodGet {
			log.Warn("empty response", "method", method, "url", url)
			return wisherrors.Decode(op, io.ErrUnexpectedEOF)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn("undecodable response", "method", method, "url", url, "error", err)
		return wisherrors.Decode(op, err)
	}
	return nil
}
