package overlays

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"departure/pkg/common"
	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
)

// HelpDialog lists the launcher keybindings and the configured action keys.
// Any key closes it.
type HelpDialog struct {
	width   int
	height  int
	actions []config.ActionConfig
	styles  *guitheme.StyleSet
}

// HelpClosedMsg is sent when the help dialog is dismissed
type HelpClosedMsg struct{}

// NewHelpDialog creates the keybindings overlay
func NewHelpDialog(actions []config.ActionConfig, styles *guitheme.StyleSet) *HelpDialog {
	return &HelpDialog{
		actions: actions,
		styles:  styles,
	}
}

// SetSize sets the dialog dimensions
func (d *HelpDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles tea.Msg updates
func (d *HelpDialog) Update(msg tea.Msg) (*HelpDialog, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return d, func() tea.Msg {
			return HelpClosedMsg{}
		}
	}
	return d, nil
}

// View renders the keybinding list centered on screen
func (d *HelpDialog) View() string {
	var content strings.Builder
	content.WriteString(d.styles.DialogTitle.Render("Keybindings"))
	content.WriteString("\n")

	for _, section := range common.GlobalKeys.HelpSections() {
		content.WriteString("\n")
		content.WriteString(d.styles.DialogTitle.Render(section.Title))
		content.WriteString("\n")
		for _, b := range section.Bindings {
			content.WriteString("  ")
			content.WriteString(d.styles.FooterKey.Render(padKey(b.Help().Key)))
			content.WriteString(" ")
			content.WriteString(d.styles.DialogText.Render(b.Help().Desc))
			content.WriteString("\n")
		}
	}

	hasKeybinds := false
	for _, a := range d.actions {
		if a.Keybind != "" {
			hasKeybinds = true
			break
		}
	}
	if hasKeybinds {
		content.WriteString("\n")
		content.WriteString(d.styles.DialogTitle.Render("Actions"))
		content.WriteString("\n")
		for _, a := range d.actions {
			if a.Keybind == "" {
				continue
			}
			content.WriteString("  ")
			content.WriteString(d.styles.FooterKey.Render(padKey(a.Keybind)))
			content.WriteString(" ")
			content.WriteString(d.styles.DialogText.Render(a.Name))
			content.WriteString("\n")
		}
	}

	dialog := d.styles.Dialog.Render(strings.TrimRight(content.String(), "\n"))

	return lipgloss.Place(
		d.width,
		d.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

func padKey(k string) string {
	const keyColumn = 10
	if len(k) >= keyColumn {
		return k
	}
	return k + strings.Repeat(" ", keyColumn-len(k))
}
