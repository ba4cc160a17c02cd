package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the counters and histograms a deployed server exposes
// for scraping. Each instance owns its own registry rather than
// registering against the global default one, so a process (or a test
// binary) can build more than one Server without a duplicate-collector
// panic.
type Metrics struct {
	Registry *prometheus.Registry

	ConnectionsAccepted prometheus.Counter
	ConnectionsClosed   *prometheus.CounterVec
	PacketsDecoded      *prometheus.CounterVec
	BytesIn             prometheus.Counter
	BytesOut            prometheus.Counter
	CompressionRatio    prometheus.Histogram
	KeepAliveTimeouts   prometheus.Counter
	LoginFailures       *prometheus.CounterVec
	PlayersOnline       prometheus.Gauge
}

// NewMetrics builds a fresh registry and registers a fresh set of
// collectors against it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ConnectionsAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "mcserver_connections_accepted_total",
			Help: "Total TCP connections accepted.",
		}),
		ConnectionsClosed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mcserver_connections_closed_total",
			Help: "Total connections closed, labeled by reason.",
		}, []string{"reason"}),
		PacketsDecoded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mcserver_packets_decoded_total",
			Help: "Total packets decoded, labeled by protocol state.",
		}, []string{"state"}),
		BytesIn: f.NewCounter(prometheus.CounterOpts{
			Name: "mcserver_bytes_in_total",
			Help: "Total raw bytes read from client sockets.",
		}),
		BytesOut: f.NewCounter(prometheus.CounterOpts{
			Name: "mcserver_bytes_out_total",
			Help: "Total raw bytes written to client sockets.",
		}),
		CompressionRatio: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mcserver_compression_ratio",
			Help:    "Ratio of compressed to uncompressed frame size for frames above the compression threshold.",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		KeepAliveTimeouts: f.NewCounter(prometheus.CounterOpts{
			Name: "mcserver_keepalive_timeouts_total",
			Help: "Total connections dropped for failing to answer a keep-alive in time.",
		}),
		LoginFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mcserver_login_failures_total",
			Help: "Total failed login attempts, labeled by cause.",
		}, []string{"cause"}),
		PlayersOnline: f.NewGauge(prometheus.GaugeOpts{
			Name: "mcserver_players_online",
			Help: "Current number of connections in the Play state.",
		}),
	}
}
