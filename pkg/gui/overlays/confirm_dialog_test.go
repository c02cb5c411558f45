package overlays

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
	apptheme "departure/pkg/theme"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testStyles() *guitheme.StyleSet {
	return guitheme.NewStyleSet(apptheme.DefaultColors())
}

func TestConfirmDialogConfirm(t *testing.T) {
	action := &config.ActionConfig{Name: "Reboot", Command: "systemctl reboot", Danger: true}
	d := NewConfirmDialog(action, testStyles())
	d.SetSize(80, 24)

	_, cmd := d.Update(keyMsg("y"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ConfirmedMsg)
	require.True(t, ok)
	require.Same(t, action, msg.Action)
}

func TestConfirmDialogCancelByKey(t *testing.T) {
	d := NewConfirmDialog(&config.ActionConfig{Name: "Shutdown"}, testStyles())

	_, cmd := d.Update(keyMsg("n"))
	require.NotNil(t, cmd)
	require.IsType(t, CancelledMsg{}, cmd())
}

func TestConfirmDialogCancelByEsc(t *testing.T) {
	d := NewConfirmDialog(&config.ActionConfig{Name: "Shutdown"}, testStyles())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, CancelledMsg{}, cmd())
}

func TestConfirmDialogSwallowsOtherKeys(t *testing.T) {
	d := NewConfirmDialog(&config.ActionConfig{Name: "Shutdown"}, testStyles())

	// Action keybinds must not fire through an open dialog
	_, cmd := d.Update(keyMsg("p"))
	require.Nil(t, cmd)
}

func TestConfirmDialogViewNamesTheAction(t *testing.T) {
	d := NewConfirmDialog(&config.ActionConfig{Name: "Reboot", Danger: true}, testStyles())
	d.SetSize(80, 24)

	view := d.View()
	require.Contains(t, view, "Reboot")
	require.Contains(t, view, "reboot?")
	require.Contains(t, view, "[Y] Confirm")
	require.Contains(t, view, "[N] Cancel")
}

func TestHelpDialogListsActionKeybinds(t *testing.T) {
	d := NewHelpDialog([]config.ActionConfig{
		{Name: "Lock", Keybind: "l"},
		{Name: "Unbound"},
	}, testStyles())
	d.SetSize(80, 24)

	view := d.View()
	require.Contains(t, view, "Keybindings")
	require.Contains(t, view, "Lock")
	require.NotContains(t, view, "Unbound")

	_, cmd := d.Update(keyMsg("x"))
	require.NotNil(t, cmd)
	require.IsType(t, HelpClosedMsg{}, cmd())
}
