package database

import (
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusObserver records unit of work lifecycle events as Prometheus metrics
type PrometheusObserver struct {
	acquiredTotal      prometheus.Counter
	acquireFailedTotal *prometheus.CounterVec
	releasedTotal      prometheus.Counter
	inUse              prometheus.Gauge
	finishedTotal      *prometheus.CounterVec
	duration           *prometheus.HistogramVec
}

var _ unitofwork.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates the observer and registers its collectors on reg
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	factory := promauto.With(reg)
	return &PrometheusObserver{
		acquiredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_uow_connections_acquired_total",
			Help: "Connections acquired for units of work",
		}),
		acquireFailedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_uow_acquire_failures_total",
			Help: "Units of work that could not acquire a connection",
		}, []string{"kind"}),
		releasedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_uow_connections_released_total",
			Help: "Connections released by units of work",
		}),
		inUse: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_uow_connections_in_use",
			Help: "Connections currently held by a unit of work",
		}),
		finishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_uow_finished_total",
			Help: "Finished units of work by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_uow_duration_seconds",
			Help:    "Time a unit of work held its connection before finishing",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"outcome"}),
	}
}

func (o *PrometheusObserver) Acquired() {
	o.acquiredTotal.Inc()
	o.inUse.Inc()
}

func (o *PrometheusObserver) AcquireFailed(kind errs.Kind) {
	o.acquireFailedTotal.WithLabelValues(kind.String()).Inc()
}

func (o *PrometheusObserver) Released() {
	o.releasedTotal.Inc()
	o.inUse.Dec()
}

func (o *PrometheusObserver) Finished(outcome unitofwork.Outcome, elapsed time.Duration) {
	o.finishedTotal.WithLabelValues(string(outcome)).Inc()
	o.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}
