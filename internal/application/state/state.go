// Package state holds the lifecycle states of an engine run.
package state

// RunState represents where the engine is in its lifecycle
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateTerminating
	StateClosed
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateTerminating:
		return "Terminating"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}
