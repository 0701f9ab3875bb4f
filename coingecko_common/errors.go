package coingecko_common

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when the upstream provider could not serve a request:
// transport failure, timeout, non-success status or an unreadable body
type UpstreamError struct {
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return "upstream request failed: " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err wraps an *UpstreamError
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}
