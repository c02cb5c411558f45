// Package action routes triggered launcher actions through keybind dispatch,
// the confirmation gate, and command execution.
package action

import (
	"strings"

	"departure/pkg/config"
)

// CancelKey is the reserved close key. It always terminates the launcher and
// is checked before the action scan, so configuration can never shadow it.
const CancelKey = "esc"

// OutcomeKind classifies the result of a key dispatch.
type OutcomeKind int

const (
	// Ignored means no configured keybind matched.
	Ignored OutcomeKind = iota
	// Terminate means the reserved close key was pressed.
	Terminate
	// Execute carries an action to run immediately.
	Execute
	// RequestConfirmation carries an action that must be confirmed first.
	RequestConfirmation
)

func (k OutcomeKind) String() string {
	switch k {
	case Terminate:
		return "terminate"
	case Execute:
		return "execute"
	case RequestConfirmation:
		return "request-confirmation"
	default:
		return "ignored"
	}
}

// Outcome is the result of dispatching one key press. Action is set for
// Execute and RequestConfirmation.
type Outcome struct {
	Kind   OutcomeKind
	Action *config.ActionConfig
}

// Dispatcher maps pressed keys onto the configured action list. The list is
// shared, read-only, and in configured order; it is the same ordering the
// layout planner consumes.
type Dispatcher struct {
	actions []config.ActionConfig
}

// NewDispatcher creates a dispatcher over the configured actions.
func NewDispatcher(actions []config.ActionConfig) *Dispatcher {
	return &Dispatcher{actions: actions}
}

// Dispatch resolves a key press. Keys compare case-insensitively and the
// first action with a matching keybind wins, so a duplicate keybind on a
// later action is unreachable. Confirm-flagged actions never dispatch
// straight to execution.
func (d *Dispatcher) Dispatch(keyName string) Outcome {
	pressed := strings.ToLower(keyName)

	if pressed == CancelKey {
		return Outcome{Kind: Terminate}
	}

	for i := range d.actions {
		a := &d.actions[i]
		if a.Keybind == "" || strings.ToLower(a.Keybind) != pressed {
			continue
		}
		if a.Confirm {
			return Outcome{Kind: RequestConfirmation, Action: a}
		}
		return Outcome{Kind: Execute, Action: a}
	}

	return Outcome{Kind: Ignored}
}
