// Package overlays contains the dialogs drawn over the button menu.
package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"departure/pkg/common"
	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
)

// ConfirmDialog asks whether a guarded action should really run. While it is
// open it consumes every key before the menu sees it.
type ConfirmDialog struct {
	width  int
	height int
	action *config.ActionConfig
	styles *guitheme.StyleSet
}

// ConfirmedMsg is sent when the user confirms the pending action
type ConfirmedMsg struct {
	Action *config.ActionConfig
}

// CancelledMsg is sent when the user dismisses the dialog
type CancelledMsg struct{}

// NewConfirmDialog creates a confirmation dialog for one action
func NewConfirmDialog(action *config.ActionConfig, styles *guitheme.StyleSet) *ConfirmDialog {
	return &ConfirmDialog{
		action: action,
		styles: styles,
	}
}

// SetSize sets the dialog dimensions
func (d *ConfirmDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Action returns the action awaiting confirmation
func (d *ConfirmDialog) Action() *config.ActionConfig {
	return d.action
}

// Update handles tea.Msg updates
func (d *ConfirmDialog) Update(msg tea.Msg) (*ConfirmDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, common.GlobalKeys.Confirm):
			action := d.action
			return d, func() tea.Msg {
				return ConfirmedMsg{Action: action}
			}
		case key.Matches(msg, common.GlobalKeys.Cancel):
			return d, func() tea.Msg {
				return CancelledMsg{}
			}
		}
		// Any other key is swallowed while the dialog is open
	}
	return d, nil
}

// View renders the confirmation dialog centered on screen
func (d *ConfirmDialog) View() string {
	if d.action == nil {
		return ""
	}

	question := fmt.Sprintf("Are you sure you want to %s?", strings.ToLower(d.action.Name))
	wrapWidth := d.width - 12
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var content strings.Builder
	content.WriteString(d.styles.DialogTitle.Render(d.action.Name))
	content.WriteString("\n\n")
	content.WriteString(d.styles.DialogText.Render(wordwrap.String(question, wrapWidth)))
	content.WriteString("\n\n")

	confirmButton := d.styles.DialogButton
	if d.action.Danger {
		confirmButton = d.styles.DialogDangerButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmButton.Render("[Y] Confirm"),
		d.styles.DialogButton.Render("[N] Cancel"),
	)
	content.WriteString(buttons)

	dialog := d.styles.Dialog.Render(content.String())

	return lipgloss.Place(
		d.width,
		d.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}

// Init initializes the dialog
func (d *ConfirmDialog) Init() tea.Cmd {
	return nil
}
