package coingecko_common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
}

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusTimeout     = "timeout"
	StatusRateLimited = "rate_limited"
)

// ClientOptions configures the upstream HTTP client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response

	// RequestsPerMinute throttles outbound calls; 0 disables throttling
	RequestsPerMinute int
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "HTTP",
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// HTTPClient executes single upstream requests with a bounded timeout. It never retries.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
	limiter       *rate.Limiter
}

// NewHTTPClient creates a new upstream HTTP client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		limiter:       limiter,
	}
}

// ExecuteRequest performs req once and returns the body of a 200 response.
// Any failure is returned as *UpstreamError.
func (c *HTTPClient) ExecuteRequest(req *http.Request) ([]byte, time.Duration, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			c.report(StatusRateLimited)
			return nil, 0, &UpstreamError{Message: fmt.Sprintf("outbound rate limiter wait failed: %v", err), Err: err}
		}
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if isTimeout(err) {
			c.report(StatusTimeout)
		} else {
			c.report(StatusError)
		}
		log.Error().Err(err).Dur("duration", requestDuration).Msgf("%s: request failed", c.Opts.LogPrefix)
		return nil, requestDuration, &UpstreamError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := processResponse(resp, requestDuration)
	if err != nil {
		if resp.StatusCode == http.StatusTooManyRequests {
			c.report(StatusRateLimited)
		} else {
			c.report(StatusError)
		}
		log.Error().Err(err).Int("status", resp.StatusCode).Msgf("%s: request failed", c.Opts.LogPrefix)
		return nil, requestDuration, err
	}

	c.report(StatusSuccess)
	return body, requestDuration, nil
}

func (c *HTTPClient) report(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

// processResponse reads the HTTP response, turning non-200 statuses into *UpstreamError
func processResponse(resp *http.Response, requestDuration time.Duration) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &UpstreamError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("rate limit exceeded, retry after %s: %s", resp.Header.Get("Retry-After"), string(body)),
			}
		}

		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("after %.2fs: %s", requestDuration.Seconds(), string(body)),
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Message: fmt.Sprintf("error reading response: %v", err), Err: err}
	}

	return responseBody, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
