package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserver(t *testing.T) {
	t.Run("Tracks lifecycle events", func(t *testing.T) {
		reg := prometheus.NewPedanticRegistry()
		observer := NewPrometheusObserver(reg)

		observer.Acquired()
		observer.Acquired()
		assert.Equal(t, float64(2), testutil.ToFloat64(observer.inUse))

		observer.Finished(unitofwork.OutcomeCommitted, 3*time.Millisecond)
		observer.Released()
		observer.Finished(unitofwork.OutcomeRolledBack, time.Millisecond)
		observer.Released()
		observer.AcquireFailed(errs.KindUnavailable)

		assert.Equal(t, float64(2), testutil.ToFloat64(observer.acquiredTotal))
		assert.Equal(t, float64(2), testutil.ToFloat64(observer.releasedTotal))
		assert.Equal(t, float64(0), testutil.ToFloat64(observer.inUse))
		assert.Equal(t, float64(1), testutil.ToFloat64(observer.finishedTotal.WithLabelValues("committed")))
		assert.Equal(t, float64(1), testutil.ToFloat64(observer.finishedTotal.WithLabelValues("rolled_back")))
		assert.Equal(t, float64(1), testutil.ToFloat64(observer.acquireFailedTotal.WithLabelValues("Unavailable")))

		expected := `
# HELP ledger_uow_connections_released_total Connections released by units of work
# TYPE ledger_uow_connections_released_total counter
ledger_uow_connections_released_total 2
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ledger_uow_connections_released_total"))
	})

	t.Run("Fed by a coordinator over sqlite", func(t *testing.T) {
		log := logger.NewNoopLogger()
		db := NewTestDB(t, log, 1)
		observer := NewPrometheusObserver(prometheus.NewRegistry())
		coordinator := unitofwork.NewCoordinator(
			db.Manager.Provider(),
			db.Manager.Classifier(),
			log,
			timeprovider.NewRealTimeProvider(),
			unitofwork.WithObserver(observer),
		)

		require.NoError(t, coordinator.Run(context.Background(), func(context.Context, *unitofwork.Context) error { return nil }))
		require.Error(t, coordinator.Run(context.Background(), func(context.Context, *unitofwork.Context) error {
			return errors.New("abort")
		}))

		assert.Equal(t, float64(2), testutil.ToFloat64(observer.acquiredTotal))
		assert.Equal(t, float64(2), testutil.ToFloat64(observer.releasedTotal))
		assert.Equal(t, float64(1), testutil.ToFloat64(observer.finishedTotal.WithLabelValues("committed")))
		assert.Equal(t, float64(1), testutil.ToFloat64(observer.finishedTotal.WithLabelValues("rolled_back")))
	})
}
