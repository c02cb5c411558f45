package action

import (
	"fmt"
	"os/exec"

	"departure/pkg/config"
)

// DebugLog is the logging hook for this package. The main package points it
// at the debug logger; by default it discards.
var DebugLog = func(format string, args ...interface{}) {}

// Executor launches action commands through a shell, fire-and-forget.
type Executor struct {
	shell string
}

// NewExecutor creates an executor using the standard shell.
func NewExecutor() *Executor {
	return &Executor{shell: "sh"}
}

// Execute spawns the action's command without waiting for it to complete.
// The child is released to the operating system immediately; the launcher is
// expected to exit after any successful spawn. A spawn failure is logged and
// returned, and the run continues.
func (e *Executor) Execute(a config.ActionConfig) error {
	DebugLog("executing action %q: %s", a.Name, a.Command)

	cmd := exec.Command(e.shell, "-c", a.Command)
	if err := cmd.Start(); err != nil {
		DebugLog("failed to execute %q: %v", a.Command, err)
		return fmt.Errorf("spawning %q: %w", a.Command, err)
	}

	// Ownership of the child passes to the OS; nothing waits on it.
	_ = cmd.Process.Release()
	DebugLog("successfully spawned: %s", a.Command)
	return nil
}
