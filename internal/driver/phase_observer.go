package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a check phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Check.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) start(name string) {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseStart})
	}
}

func (o PhaseObserver) end(name string, elapsed time.Duration) {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: elapsed})
	}
}
