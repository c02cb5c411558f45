package action

import "departure/pkg/config"

// GateState is the confirmation gate's state tag.
type GateState int

const (
	// Idle means no confirmation is pending.
	Idle GateState = iota
	// Awaiting means one action is waiting for the user's decision.
	Awaiting
)

// Gate guards confirm-flagged actions behind an explicit two-state machine.
// At most one confirmation is pending at a time: a request that arrives while
// another is pending is ignored until the pending one is confirmed or
// cancelled. Transitions never fail; illegal ones are no-ops.
type Gate struct {
	state   GateState
	pending *config.ActionConfig
}

// NewGate creates a gate in the Idle state.
func NewGate() *Gate {
	return &Gate{state: Idle}
}

// State returns the current state tag.
func (g *Gate) State() GateState {
	return g.state
}

// Pending returns the action awaiting confirmation, or nil when Idle.
func (g *Gate) Pending() *config.ActionConfig {
	return g.pending
}

// Request moves Idle to Awaiting for the given action. It reports whether the
// request was accepted; a request made while another confirmation is pending
// is dropped.
func (g *Gate) Request(a *config.ActionConfig) bool {
	if g.state == Awaiting || a == nil {
		return false
	}
	g.state = Awaiting
	g.pending = a
	return true
}

// Confirm resolves the pending confirmation and returns the action to
// execute, or nil if nothing was pending. The gate returns to Idle.
func (g *Gate) Confirm() *config.ActionConfig {
	if g.state != Awaiting {
		return nil
	}
	a := g.pending
	g.state = Idle
	g.pending = nil
	return a
}

// Cancel dismisses the pending confirmation with no side effect.
func (g *Gate) Cancel() {
	g.state = Idle
	g.pending = nil
}
