// Package metrics exposes Prometheus instruments for balancing runs.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/albapepper/rosterbalance/internal/balance"
)

// Outcome labels for rosterbalance_runs_total.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidRoster   = "invalid_roster_size"
	OutcomePoolExhausted   = "pool_exhausted"
	OutcomeStalled         = "stalled"
	OutcomeTeamSizeOutside = "team_size_out_of_range"
	OutcomeError           = "error"
)

// Recorder holds the balancing instruments on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	passes   prometheus.Histogram
	duration prometheus.Histogram
	spread   prometheus.Histogram
	picks    *prometheus.CounterVec
}

// NewRecorder registers the instruments plus Go runtime collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterbalance_runs_total",
			Help: "Balancing runs by outcome.",
		}, []string{"outcome"}),
		passes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterbalance_passes",
			Help:    "Balancing loop passes per successful run.",
			Buckets: prometheus.LinearBuckets(5, 5, 10),
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterbalance_run_duration_seconds",
			Help:    "Wall time of balancing runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		spread: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterbalance_average_spread",
			Help:    "Gap between the highest and lowest team average per successful run.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		picks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterbalance_picks_total",
			Help: "Balancing loop decisions by kind.",
		}, []string{"kind"}),
	}
}

// ObserveRun records one run. res is nil when err is set.
func (r *Recorder) ObserveRun(res *balance.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.duration.Observe(elapsed.Seconds())
	r.runs.WithLabelValues(Outcome(err)).Inc()
	if err != nil || res == nil {
		return
	}
	r.passes.Observe(float64(res.Stats.Passes))
	r.spread.Observe(res.Spread())
	r.picks.WithLabelValues("exact").Add(float64(res.Stats.ExactMatches))
	r.picks.WithLabelValues("fallback").Add(float64(res.Stats.Fallbacks))
	r.picks.WithLabelValues("catch_up").Add(float64(res.Stats.CatchUps))
	r.picks.WithLabelValues("skip").Add(float64(res.Stats.Skips))
}

// Outcome maps a run error to its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, balance.ErrInvalidRosterSize):
		return OutcomeInvalidRoster
	case errors.Is(err, balance.ErrPoolExhausted):
		return OutcomePoolExhausted
	case errors.Is(err, balance.ErrBalancingStalled):
		return OutcomeStalled
	case errors.Is(err, balance.ErrTeamSizeOutOfRange):
		return OutcomeTeamSizeOutside
	default:
		return OutcomeError
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
