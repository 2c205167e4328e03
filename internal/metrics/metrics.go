package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wol_upstream_requests_total",
		Help: "Outbound requests by source and outcome",
	}, []string{"source", "outcome"}) // outcome=success|status|network

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wol_upstream_request_duration_seconds",
		Help:    "Outbound request latency by source",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wol_http_requests_total",
		Help: "Handled HTTP requests by route, method and status code",
	}, []string{"route", "method", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wol_http_request_duration_seconds",
		Help:    "HTTP handler latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	catalogItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wol_catalog_video_items",
		Help: "Video items returned by the last catalog fetch per language",
	}, []string{"language"})

	mediaRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wol_media_records_total",
		Help: "Media records assembled by the aggregator",
	})
)

// ObserveUpstream records one outbound call.
func ObserveUpstream(source, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(source, outcome).Inc()
	upstreamDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveHTTP records one handled request.
func ObserveHTTP(route, method string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func SetCatalogItems(language string, n int) {
	catalogItems.WithLabelValues(language).Set(float64(n))
}

func AddMediaRecords(n int) {
	mediaRecords.Add(float64(n))
}
