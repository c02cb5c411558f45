package action

import (
	"testing"

	"departure/pkg/config"

	"github.com/stretchr/testify/require"
)

func testActions() []config.ActionConfig {
	return []config.ActionConfig{
		{Name: "Lock", Command: "true", Keybind: "l"},
		{Name: "Logout", Command: "true", Keybind: "e", Confirm: true},
		{Name: "Reboot", Command: "true", Keybind: "r", Confirm: true, Danger: true},
		{Name: "Shadow", Command: "true", Keybind: "l"}, // unreachable duplicate
		{Name: "NoKey", Command: "true"},
	}
}

func TestDispatchMatchesCaseInsensitively(t *testing.T) {
	d := NewDispatcher(testActions())

	out := d.Dispatch("L")
	require.Equal(t, Execute, out.Kind)
	require.Equal(t, "Lock", out.Action.Name)
}

func TestDispatchFirstMatchWins(t *testing.T) {
	d := NewDispatcher(testActions())

	out := d.Dispatch("l")
	require.Equal(t, "Lock", out.Action.Name, "later duplicate keybind must be unreachable")
}

func TestDispatchConfirmFlaggedActionRequestsConfirmation(t *testing.T) {
	d := NewDispatcher(testActions())

	out := d.Dispatch("r")
	require.Equal(t, RequestConfirmation, out.Kind)
	require.Equal(t, "Reboot", out.Action.Name)
}

func TestDispatchReservedKeyCannotBeShadowed(t *testing.T) {
	actions := []config.ActionConfig{
		{Name: "Sneaky", Command: "true", Keybind: "esc"},
	}
	d := NewDispatcher(actions)

	out := d.Dispatch("esc")
	require.Equal(t, Terminate, out.Kind)
	require.Nil(t, out.Action)
}

func TestDispatchUnboundKeyIsIgnored(t *testing.T) {
	d := NewDispatcher(testActions())

	out := d.Dispatch("z")
	require.Equal(t, Ignored, out.Kind)
	require.Nil(t, out.Action)
}

func TestGateCancelHasNoSideEffect(t *testing.T) {
	g := NewGate()
	a := &config.ActionConfig{Name: "Reboot", Confirm: true}

	require.True(t, g.Request(a))
	require.Equal(t, Awaiting, g.State())
	require.Equal(t, a, g.Pending())

	g.Cancel()
	require.Equal(t, Idle, g.State())
	require.Nil(t, g.Pending())
	require.Nil(t, g.Confirm(), "confirm after cancel must not produce an action")
}

func TestGateConfirmReleasesActionExactlyOnce(t *testing.T) {
	g := NewGate()
	a := &config.ActionConfig{Name: "Shutdown", Confirm: true}

	require.True(t, g.Request(a))
	require.Equal(t, a, g.Confirm())
	require.Equal(t, Idle, g.State())
	require.Nil(t, g.Confirm())
}

func TestGateIgnoresRequestWhilePending(t *testing.T) {
	g := NewGate()
	first := &config.ActionConfig{Name: "Reboot"}
	second := &config.ActionConfig{Name: "Shutdown"}

	require.True(t, g.Request(first))
	require.False(t, g.Request(second), "second request must be dropped, not replace the pending one")
	require.Equal(t, first, g.Pending())
	require.Equal(t, first, g.Confirm())
}

func TestExecuteSpawnsDetachedCommand(t *testing.T) {
	e := NewExecutor()

	err := e.Execute(config.ActionConfig{Name: "Noop", Command: "true"})
	require.NoError(t, err)
}

func TestExecuteSpawnFailureRecoversLocally(t *testing.T) {
	e := &Executor{shell: "/nonexistent/shell"}

	err := e.Execute(config.ActionConfig{Name: "Broken", Command: "true"})
	require.Error(t, err)

	// The run continues: the gate and dispatcher stay usable after a failure.
	g := NewGate()
	a := &config.ActionConfig{Name: "Retry", Confirm: true}
	require.True(t, g.Request(a))
	require.Equal(t, a, g.Confirm())

	d := NewDispatcher(testActions())
	require.Equal(t, Execute, d.Dispatch("l").Kind)
}
