package coingecko_common

import (
	"github.com/status-im/price-proxy/metrics"
)

var _ IHttpStatusHandler = (*HttpRequestMetricsWriter)(nil)

// HttpRequestMetricsWriter counts upstream request outcomes
// (success, error, timeout, rate_limited) per service
type HttpRequestMetricsWriter struct {
	serviceName string
}

// NewHttpRequestMetricsWriter creates a status handler labelled with serviceName
func NewHttpRequestMetricsWriter(serviceName string) *HttpRequestMetricsWriter {
	return &HttpRequestMetricsWriter{
		serviceName: serviceName,
	}
}

func (h *HttpRequestMetricsWriter) OnRequest(status string) {
	metrics.RecordUpstreamRequest(h.serviceName, status)
}
