// Package theme resolves the five launcher colors from the configured source
// and renders them into the exported stylesheet.
package theme

import "departure/pkg/config"

// Colors is a resolved palette. Every field is always populated; resolution
// falls back to the built-in defaults field by field, never to an empty
// string.
type Colors struct {
	Background string
	Primary    string
	Secondary  string
	Text       string
	Danger     string
}

// Built-in fallback palette.
const (
	DefaultBackground = "rgba(30, 30, 46, 0.8)"
	DefaultPrimary    = "#89b4fa"
	DefaultSecondary  = "#74c7ec"
	DefaultText       = "#cdd6f4"
	DefaultDanger     = "#f38ba8"
)

// DefaultColors returns the built-in palette.
func DefaultColors() Colors {
	return Colors{
		Background: DefaultBackground,
		Primary:    DefaultPrimary,
		Secondary:  DefaultSecondary,
		Text:       DefaultText,
		Danger:     DefaultDanger,
	}
}

func fromManual(m *config.ManualColors) Colors {
	c := DefaultColors()
	if m == nil {
		return c
	}
	if m.Background != "" {
		c.Background = m.Background
	}
	if m.Primary != "" {
		c.Primary = m.Primary
	}
	if m.Secondary != "" {
		c.Secondary = m.Secondary
	}
	if m.Text != "" {
		c.Text = m.Text
	}
	if m.Danger != "" {
		c.Danger = m.Danger
	}
	return c
}

// DebugLog is the logging hook for this package. The main package points it
// at the debug logger; by default it discards.
var DebugLog = func(format string, args ...interface{}) {}
