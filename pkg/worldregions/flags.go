package worldregions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultFlagURLTemplate is the image host pattern; {code} is replaced by the
// country code.
const DefaultFlagURLTemplate = "https://www.countryflags.io/{code}/flat/64.png"

// maxFlagBytes caps a single image download.
const maxFlagBytes = 512 << 10

// FlagOptions configures a FlagClient.
type FlagOptions struct {
	URLTemplate       string
	HTTPClient        HTTPDoer
	Timeout           time.Duration
	RequestsPerSecond float64 // Zero or negative disables limiting
	Burst             int
	UserAgent         string
	Logger            *slog.Logger
}

// FlagClient downloads flag images. Downloads are best effort: callers treat
// any error as "no icon".
type FlagClient struct {
	template  string
	http      HTTPDoer
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

// NewFlagClient creates a FlagClient.
func NewFlagClient(opts FlagOptions) *FlagClient {
	template := opts.URLTemplate
	if template == "" {
		template = DefaultFlagURLTemplate
	}

	doer := opts.HTTPClient
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &FlagClient{
		template:  template,
		http:      doer,
		limiter:   limiter,
		userAgent: userAgent,
		logger:    logger,
	}
}

// FlagURL returns the image URL for a country code.
func (f *FlagClient) FlagURL(code string) string {
	return strings.ReplaceAll(f.template, "{code}", url.PathEscape(code))
}

// Flag downloads the PNG for a country code, waiting on the rate limiter first.
func (f *FlagClient) Flag(ctx context.Context, code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("flag: empty country code")
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("flag %s: %w", code, err)
	}

	flagURL := f.FlagURL(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, flagURL, nil)
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", code, err)
	}
	req.Header.Set("Accept", "image/png")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		f.logger.Debug("Flag download failed", "code", code, "url", flagURL, "error", err)
		return nil, fmt.Errorf("flag %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		f.logger.Debug("Flag download failed", "code", code, "url", flagURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("flag %s: unexpected status %d", code, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFlagBytes))
	if err != nil {
		return nil, fmt.Errorf("flag %s: %w", code, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("flag %s: empty body", code)
	}

	return data, nil
}
