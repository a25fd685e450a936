package unitofwork

// Mode tells a data operation who owns the commit decision
type Mode int

const (
	// ModeStandalone operations open, commit and release their own context
	ModeStandalone Mode = iota
	// ModeParticipating operations run inside a caller's context and never commit
	ModeParticipating
)

func (m Mode) String() string {
	if m == ModeParticipating {
		return "participating"
	}
	return "standalone"
}

// Scope is passed to every data operation. The zero value is Standalone.
type Scope struct {
	mode Mode
	tx   *Context
}

// Standalone runs the operation in a one-operation unit of work of its own
func Standalone() Scope {
	return Scope{mode: ModeStandalone}
}

// Participating runs the operation as one step of tx
func Participating(tx *Context) Scope {
	return Scope{mode: ModeParticipating, tx: tx}
}

// Mode returns the scope's mode
func (s Scope) Mode() Mode {
	return s.mode
}

// Tx returns the ambient context, nil for standalone scopes
func (s Scope) Tx() *Context {
	return s.tx
}
