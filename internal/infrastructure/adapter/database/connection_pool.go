package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConnectionProvider checks connections out of a *sql.DB pool
type ConnectionProvider struct {
	db             *sql.DB
	acquireTimeout time.Duration
	logger         coreport.Logger
	nextID         atomic.Uint64
}

// NewConnectionProvider creates a provider that waits at most acquireTimeout for a free connection
func NewConnectionProvider(db *sql.DB, acquireTimeout time.Duration, logger coreport.Logger) *ConnectionProvider {
	return &ConnectionProvider{
		db:             db,
		acquireTimeout: acquireTimeout,
		logger:         logger,
	}
}

// Acquire checks out a connection. When the pool stays exhausted for longer
// than the acquire timeout the error wraps context.DeadlineExceeded.
func (p *ConnectionProvider) Acquire(ctx context.Context) (persistence.Connection, error) {
	acquireCtx, cancel := ctx, context.CancelFunc(func() {})
	if p.acquireTimeout > 0 {
		acquireCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
	}
	defer cancel()

	conn, err := p.db.Conn(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	pooled := newPooledConnection(p.nextID.Add(1), conn)
	p.logger.Debug("Connection acquired", map[string]any{
		"connection_id": pooled.ID(),
	})
	return pooled, nil
}

// Release returns conn to the pool. Releasing a connection twice is an error.
func (p *ConnectionProvider) Release(_ context.Context, conn persistence.Connection) error {
	pooled, ok := conn.(*PooledConnection)
	if !ok {
		return fmt.Errorf("release: unexpected connection type %T", conn)
	}

	if !pooled.AutoCommit() {
		p.logger.Warn("Releasing connection with an open transaction, rolling back", map[string]any{
			"connection_id": pooled.ID(),
		})
	}

	if err := pooled.close(); err != nil {
		return fmt.Errorf("release connection %d: %w", pooled.ID(), err)
	}

	p.logger.Debug("Connection released", map[string]any{
		"connection_id": pooled.ID(),
	})
	return nil
}

// DefaultMonitorInterval is used when Start is given a non-positive interval
const DefaultMonitorInterval = 15 * time.Second

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// ConnectionPoolMonitor publishes pool statistics as gauges and warns when the
// pool is close to exhaustion
type ConnectionPoolMonitor struct {
	db           *sql.DB
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	startOnce    sync.Once
	stopOnce     sync.Once

	open      prometheus.Gauge
	idle      prometheus.Gauge
	inUse     prometheus.Gauge
	waitCount prometheus.Gauge
}

// NewConnectionPoolMonitor creates a new connection pool monitor registering its gauges on reg
func NewConnectionPoolMonitor(db *sql.DB, logger coreport.Logger, reg prometheus.Registerer) *ConnectionPoolMonitor {
	factory := promauto.With(reg)
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
		open: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_pool_open_connections",
			Help: "Established connections, in use and idle",
		}),
		idle: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_pool_idle_connections",
			Help: "Idle connections in the pool",
		}),
		inUse: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_pool_in_use_connections",
			Help: "Connections currently checked out",
		}),
		waitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_db_pool_wait_count",
			Help: "Total number of checkouts that had to wait",
		}),
	}
}

// Start begins monitoring the connection pool. Only the first call has an effect.
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.startOnce.Do(func() { m.run(interval) })
}

func (m *ConnectionPoolMonitor) run(interval time.Duration) {
	if interval <= 0 {
		m.logger.Warn("Invalid pool monitor interval, using default", map[string]any{
			"interval": interval.String(),
			"default":  DefaultMonitorInterval.String(),
		})
		interval = DefaultMonitorInterval
	}

	ticker := time.NewTicker(interval)
	m.collectMetrics()

	go func() {
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last collected connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.db.Stats()

	m.open.Set(float64(stats.OpenConnections))
	m.idle.Set(float64(stats.Idle))
	m.inUse.Set(float64(stats.InUse))
	m.waitCount.Set(float64(stats.WaitCount))

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
