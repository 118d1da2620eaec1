package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threadfeed_fetches_total",
		Help: "Remote resource fetches by kind and outcome",
	}, []string{"kind", "outcome"})
	Cycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threadfeed_refresh_cycles_total",
		Help: "Refresh cycles by terminal state",
	}, []string{"state"})
	CycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "threadfeed_refresh_cycle_duration_seconds",
		Help:    "Refresh cycle duration seconds, selection to terminal state",
		Buckets: prometheus.DefBuckets,
	})
	Toggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threadfeed_toggles_total",
		Help: "Comment section toggles by outcome",
	}, []string{"outcome"})
	ListenerBindings = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "threadfeed_listener_bindings",
		Help: "Active trigger listener bindings",
	})
)

func init() {
	prometheus.MustRegister(Fetches, Cycles, CycleDuration, Toggles, ListenerBindings)
}

// ObserveFetch records a fetch outcome ("ok", "absent", "error").
func ObserveFetch(kind, outcome string) { Fetches.WithLabelValues(kind, outcome).Inc() }

// ObserveCycle records a cycle's terminal state and its duration.
func ObserveCycle(state string, start time.Time) {
	Cycles.WithLabelValues(state).Inc()
	CycleDuration.Observe(time.Since(start).Seconds())
}

// ObserveToggle records a toggle outcome ("shown", "hidden", "stale").
func ObserveToggle(outcome string) { Toggles.WithLabelValues(outcome).Inc() }

// Handler returns the metrics mux.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return mux
}

// StartServer serves Handler on addr in the background. An empty addr is a no-op.
func StartServer(addr string, logger *slog.Logger) {
	if addr == "" {
		return
	}
	go func() {
		err := http.ListenAndServe(addr, Handler())
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "addr", addr, "error", err)
		}
	}()
}
