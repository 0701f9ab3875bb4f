package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchDurationHistogram tracks the duration of upstream fetch operations
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from the upstream price provider",
		},
		[]string{"service"},
	)
)

// RecordFetchDuration records the duration of one upstream fetch
func RecordFetchDuration(service string, duration time.Duration) {
	FetchDurationHistogram.WithLabelValues(service).Observe(duration.Seconds())
}
