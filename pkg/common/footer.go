package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
)

// Footer manages the bottom hint bar: the configured action keybinds, the
// launcher's own keys, and the most recent execution error.
type Footer struct {
	width   int
	height  int
	actions []config.ActionConfig
	styles  *guitheme.StyleSet
	errText string
}

// NewFooter creates a new footer component
func NewFooter(actions []config.ActionConfig, styles *guitheme.StyleSet) *Footer {
	return &Footer{
		height:  1,
		actions: actions,
		styles:  styles,
	}
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetStyles swaps the style set after a theme reload
func (f *Footer) SetStyles(styles *guitheme.StyleSet) {
	f.styles = styles
}

// SetError shows an error message in place of the hints. An empty string
// clears it.
func (f *Footer) SetError(msg string) {
	f.errText = msg
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	if f.errText != "" {
		return lipgloss.Place(
			f.width,
			f.height,
			lipgloss.Center,
			lipgloss.Center,
			f.styles.FooterError.Render(f.errText),
		)
	}

	var parts []string

	for _, a := range f.actions {
		if a.Keybind == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, f.styles.FooterSeparator.Render(" • "))
		}
		parts = append(parts,
			f.styles.FooterKey.Render(a.Keybind)+" "+f.styles.FooterDesc.Render(strings.ToLower(a.Name)))
	}

	globals := GlobalKeys.ShortHelp()
	if len(parts) > 0 && len(globals) > 0 {
		parts = append(parts, f.styles.FooterSeparator.Render(" │ "))
	}
	for i, b := range globals {
		if i > 0 {
			parts = append(parts, f.styles.FooterSeparator.Render(" • "))
		}
		parts = append(parts,
			f.styles.FooterKey.Render(b.Help().Key)+" "+f.styles.FooterDesc.Render(b.Help().Desc))
	}

	content := strings.Join(parts, "")

	// Center the footer content
	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Padding(0, 1).Render(content),
	)
}
