package time

import (
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

// Now returns the current time
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
