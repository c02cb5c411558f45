package theme

import "fmt"

// Sentinel errors for misconfigured theme sources. Callers match with
// errors.Is.
var (
	ErrMissingManualColors = fmt.Errorf("manual colors not configured")
	ErrMissingFilePath     = fmt.Errorf("file path not configured for file theme source")
	ErrFileNotFound        = fmt.Errorf("theme file does not exist")
	ErrMissingCommand      = fmt.Errorf("command not configured for command theme source")
	ErrNotText             = fmt.Errorf("theme output is not valid UTF-8 text")
)

// UnknownSourceError reports a theme source tag outside
// manual/system/file/command.
type UnknownSourceError struct {
	Name string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown theme source: %q", e.Name)
}

// CommandError reports a theme command that exited non-zero.
type CommandError struct {
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("theme command failed: %s", e.Stderr)
}
