package worldregions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://connect.mindbodyonline.com/rest/worldregions"

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "countrylist/1.0"

// RequestIDHeader carries the per-request id that also appears in the logs.
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout bounds a fetch when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// HTTPDoer is the part of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. The zero value talks to DefaultBaseURL with a
// 30 second timeout.
type Options struct {
	BaseURL    string        // API root without trailing slash
	HTTPClient HTTPDoer      // Overrides the default *http.Client
	Timeout    time.Duration // Used only when HTTPClient is nil; negative disables
	UserAgent  string
	Logger     *slog.Logger
}

// Client fetches countries and provinces.
type Client struct {
	baseURL   string
	http      HTTPDoer
	userAgent string
	logger    *slog.Logger
}

// NewClient creates a Client from options.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	doer := opts.HTTPClient
	if doer == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		if timeout < 0 {
			timeout = 0
		}
		doer = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:   baseURL,
		http:      doer,
		userAgent: userAgent,
		logger:    logger,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CountriesURL is the country collection endpoint.
func (c *Client) CountriesURL() string {
	return c.baseURL + "/country"
}

// ProvincesURL is the province collection endpoint of one country.
func (c *Client) ProvincesURL(countryID int) string {
	return c.baseURL + "/country/" + strconv.Itoa(countryID) + "/province"
}

// Countries fetches the full country list.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	return getList[Country](ctx, c, c.CountriesURL())
}

// Provinces fetches the provinces of the country with the given id.
func (c *Client) Provinces(ctx context.Context, countryID int) ([]Province, error) {
	return getList[Province](ctx, c, c.ProvincesURL(countryID))
}

func getList[T any](ctx context.Context, c *Client, url string) ([]T, error) {
	requestID := uuid.NewString()
	started := time.Now()
	log := c.logger.With("url", url, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Kind: FailureNetwork, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	log.Debug("Fetching list")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("List fetch failed", "kind", FailureNetwork.String(), "error", err)
		return nil, &LoadError{Kind: FailureNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("List fetch failed", "kind", FailureStatus.String(), "status", resp.StatusCode)
		return nil, &LoadError{Kind: FailureStatus, URL: url, Status: resp.StatusCode}
	}

	items, err := decodeList[T](resp.Body)
	if err != nil {
		log.Warn("List fetch failed", "kind", FailureDecode.String(), "status", resp.StatusCode, "error", err)
		return nil, &LoadError{Kind: FailureDecode, URL: url, Status: resp.StatusCode, Err: err}
	}

	log.Info("Fetched list", "status", resp.StatusCode, "count", len(items), "duration", time.Since(started))
	return items, nil
}

var (
	errNotArray     = errors.New("response is not a JSON array")
	errTrailingData = errors.New("trailing data after array")
)

// decodeList decodes a body that holds exactly one JSON array.
func decodeList[T any](r io.Reader) ([]T, error) {
	var items []T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode: %w", errTrailingData)
	}
	if items == nil {
		return nil, errNotArray
	}
	return items, nil
}
