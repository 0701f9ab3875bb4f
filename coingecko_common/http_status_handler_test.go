package coingecko_common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/price-proxy/metrics"
)

func TestHttpRequestMetricsWriter_CountsOutcomes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	successes := testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("status-handler-test", StatusSuccess))
	failures := testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("status-handler-test", StatusError))

	client := NewHTTPClient(DefaultClientOptions(), NewHttpRequestMetricsWriter("status-handler-test"))

	req, err := NewCoingeckoRequestBuilder(upstream.URL, "/ok").Build(context.Background())
	require.NoError(t, err)
	_, _, err = client.ExecuteRequest(req)
	require.NoError(t, err)

	req, err = NewCoingeckoRequestBuilder(upstream.URL, "/fail").Build(context.Background())
	require.NoError(t, err)
	_, _, err = client.ExecuteRequest(req)
	require.Error(t, err)

	assert.Equal(t, successes+1, testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("status-handler-test", StatusSuccess)))
	assert.Equal(t, failures+1, testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("status-handler-test", StatusError)))
}
