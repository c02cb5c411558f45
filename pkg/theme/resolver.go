package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"departure/pkg/config"
)

// Resolver turns a theme configuration into a concrete palette. Resolution
// via the file or command source blocks the caller until the read or child
// process completes; there is no background execution.
type Resolver struct {
	cfg config.ThemeConfig
}

// NewResolver creates a resolver for the given theme configuration.
func NewResolver(cfg config.ThemeConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve produces the palette for the configured source.
func (r *Resolver) Resolve() (Colors, error) {
	switch r.cfg.Source {
	case "manual":
		return r.manualColors()
	case "system":
		return r.systemColors()
	case "file":
		return r.fileColors()
	case "command":
		return r.commandColors()
	default:
		return Colors{}, &UnknownSourceError{Name: r.cfg.Source}
	}
}

func (r *Resolver) manualColors() (Colors, error) {
	if r.cfg.ManualColors == nil {
		return Colors{}, ErrMissingManualColors
	}
	return fromManual(r.cfg.ManualColors), nil
}

// systemColors is a deliberate stub: no compositor or toolkit theme
// introspection is performed, the built-in palette is returned as-is.
func (r *Resolver) systemColors() (Colors, error) {
	DebugLog("using system theme colors (fallback to defaults)")
	return DefaultColors(), nil
}

func (r *Resolver) fileColors() (Colors, error) {
	path := r.cfg.FilePath
	if path == "" {
		return Colors{}, ErrMissingFilePath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Colors{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Colors{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Colors{}, fmt.Errorf("%w: %s", ErrNotText, path)
	}

	return Extract(string(data)), nil
}

func (r *Resolver) commandColors() (Colors, error) {
	command := r.cfg.Command
	if command == "" {
		return Colors{}, ErrMissingCommand
	}

	DebugLog("executing theme command: %s", command)

	cmd := exec.Command("sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Colors{}, &CommandError{Stderr: strings.TrimSpace(stderr.String())}
		}
		return Colors{}, fmt.Errorf("running theme command: %w", err)
	}
	if !utf8.Valid(stdout.Bytes()) {
		return Colors{}, fmt.Errorf("%w: output of %q", ErrNotText, command)
	}

	return Extract(stdout.String()), nil
}
