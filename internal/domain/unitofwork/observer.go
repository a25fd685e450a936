package unitofwork

import (
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

// Outcome is how a unit of work finished
type Outcome string

const (
	OutcomeCommitted  Outcome = "committed"
	OutcomeRolledBack Outcome = "rolled_back"
)

// Observer receives lifecycle events from the coordinator, typically to feed metrics
type Observer interface {
	Acquired()
	AcquireFailed(kind errs.Kind)
	Released()
	Finished(outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Acquired()                       {}
func (nopObserver) AcquireFailed(errs.Kind)         {}
func (nopObserver) Released()                       {}
func (nopObserver) Finished(Outcome, time.Duration) {}
