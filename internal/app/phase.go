package app

import "context"

// Phase is the app's position in the bootstrap lifecycle.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseActivating
	PhaseActivated
	PhaseRunning
	PhaseDone
	PhaseFailed
)

// String implements fmt.Stringer for Phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseActivating:
		return "activating"
	case PhaseActivated:
		return "activated"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// terminal reports whether no further transition may leave p.
func (p Phase) terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// transition advances the lifecycle. Leaving a terminal phase is a
// programmer error.
func (a *App) transition(ctx context.Context, next Phase) {
	if a.phase.terminal() {
		panic("app lifecycle: transition out of terminal phase " + a.phase.String())
	}
	a.logger.Debug("Lifecycle transition.", "from", a.phase.String(), "to", next.String())
	a.phase = next
}

// Phase returns the app's current lifecycle phase.
func (a *App) Phase() Phase {
	return a.phase
}
