package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "fpcommunity/1.0"

	// LoginCookie is the name of the site's session cookie
	LoginCookie = "login"
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	Code   int
	Status string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Status)
}

// Unwrap maps auth failures onto the domain sentinel
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden {
		return domain.ErrUnauthorized
	}
	return nil
}

// Client talks to the community site's REST API
type Client struct {
	baseURL       string
	sessionCookie string // opaque value of the login cookie, may be empty
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewClient creates a new API client. A zero timeout selects the default.
func NewClient(baseURL, sessionCookie string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		sessionCookie: sessionCookie,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// URL returns the absolute URL a search request would hit
func (c *Client) URL(path string, query url.Values) string {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	return reqURL
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.URL(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if c.sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: LoginCookie, Value: c.sessionCookie})
	}

	c.logger.Debug("api request", "url", reqURL, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.logger.Error("api request failed", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("api request error", "request_id", requestID, "status", resp.StatusCode, "body", string(body))
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Path: path}
	}

	return body, nil
}

// decode unmarshals body into dest, tagging failures as malformed payloads
func (c *Client) decode(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return nil
}

func requireTotal(total *int64) (int, error) {
	if total == nil {
		return 0, fmt.Errorf("%w: response has no total", domain.ErrMalformedPayload)
	}
	return int(*total), nil
}

// SearchPlaylists returns one page of playlists and the total match count
func (c *Client) SearchPlaylists(ctx context.Context, q domain.PlaylistQuery) ([]domain.PlaylistInfo, int, error) {
	body, err := c.doRequest(ctx, PathPlaylists, PlaylistParams(q))
	if err != nil {
		return nil, 0, err
	}

	var resp PlaylistSearchResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, 0, err
	}
	total, err := requireTotal(resp.Total)
	if err != nil {
		return nil, 0, err
	}

	playlists, err := mapAll(resp.Playlists, MapPlaylistInfo)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// SearchContentReports returns one page of content reports and the total match count
func (c *Client) SearchContentReports(ctx context.Context, q domain.ContentReportQuery) ([]domain.ContentReport, int, error) {
	body, err := c.doRequest(ctx, PathContentReports, ContentReportParams(q))
	if err != nil {
		return nil, 0, err
	}

	var resp ContentReportSearchResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, 0, err
	}
	total, err := requireTotal(resp.Total)
	if err != nil {
		return nil, 0, err
	}

	reports, err := mapAll(resp.Reports, MapContentReport)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// SearchGotdSuggestions returns one page of GOTD suggestions and the total match count
func (c *Client) SearchGotdSuggestions(ctx context.Context, q domain.GotdSuggestionQuery) ([]domain.GotdSuggestion, int, error) {
	body, err := c.doRequest(ctx, PathGotdSuggestions, GotdSuggestionParams(q))
	if err != nil {
		return nil, 0, err
	}

	var resp GotdSuggestionSearchResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, 0, err
	}
	total, err := requireTotal(resp.Total)
	if err != nil {
		return nil, 0, err
	}

	suggestions, err := mapAll(resp.Suggestions, MapGotdSuggestion)
	if err != nil {
		return nil, 0, err
	}
	return suggestions, total, nil
}
