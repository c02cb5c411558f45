package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"departure/pkg/action"
	"departure/pkg/config"
	"departure/pkg/gui/overlays"
	"departure/pkg/theme"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Actions = []config.ActionConfig{
		{Name: "Lock", Command: "true", Keybind: "l"},
		{Name: "Reboot", Command: "true", Keybind: "r", Confirm: true, Danger: true},
		{Name: "Shutdown", Command: "true", Keybind: "p", Confirm: true, Danger: true},
	}
	return cfg
}

func pressKey(t *testing.T, m model, s string) (model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", updated)
	}
	return next, cmd
}

func sized(t *testing.T, m model) model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(model)
}

func TestEscClosesTheMenu(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	_, cmd := pressKey(t, m, "esc")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc should quit the program")
	}
}

func TestKeybindLaunchesUnguardedAction(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	m, cmd := pressKey(t, m, "l")
	if cmd == nil {
		t.Fatal("expected an execute command for the lock keybind")
	}
	msg := cmd()
	launched, ok := msg.(actionLaunchedMsg)
	if !ok {
		t.Fatalf("got %T, want actionLaunchedMsg", msg)
	}
	if launched.action.Name != "Lock" {
		t.Fatalf("launched %q, want Lock", launched.action.Name)
	}

	// A successful launch closes the menu
	updated, cmd := m.Update(msg)
	m = updated.(model)
	if cmd == nil {
		t.Fatal("expected quit after launch")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("launch should quit the program")
	}
}

func TestGuardedActionOpensConfirmDialog(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	m, _ = pressKey(t, m, "r")
	if m.confirmDialog == nil {
		t.Fatal("expected the confirmation dialog to open")
	}
	if m.gate.State() != action.Awaiting {
		t.Fatalf("gate state = %v, want Awaiting", m.gate.State())
	}

	// A second guarded keybind is ignored while one is pending
	m, cmd := pressKey(t, m, "p")
	if cmd != nil {
		t.Fatal("keybinds must not fire through an open dialog")
	}
	if got := m.confirmDialog.Action().Name; got != "Reboot" {
		t.Fatalf("pending action = %q, want Reboot", got)
	}
}

func TestConfirmDialogCancelReturnsToMenu(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))
	m, _ = pressKey(t, m, "r")

	m, cmd := pressKey(t, m, "n")
	if cmd == nil {
		t.Fatal("expected a cancel command from the dialog")
	}
	updated, _ := m.Update(cmd())
	m = updated.(model)

	if m.confirmDialog != nil {
		t.Fatal("dialog should be closed after cancel")
	}
	if m.gate.State() != action.Idle {
		t.Fatalf("gate state = %v, want Idle", m.gate.State())
	}

	// Nothing launched; the same action can be requested again
	m, _ = pressKey(t, m, "r")
	if m.confirmDialog == nil {
		t.Fatal("expected the dialog to open again after a cancel")
	}
}

func TestConfirmDialogAcceptRunsTheAction(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))
	m, _ = pressKey(t, m, "r")

	m, cmd := pressKey(t, m, "y")
	if cmd == nil {
		t.Fatal("expected a confirm command from the dialog")
	}
	confirmed, ok := cmd().(overlays.ConfirmedMsg)
	if !ok {
		t.Fatalf("got %T, want ConfirmedMsg", cmd())
	}

	updated, execCmd := m.Update(confirmed)
	m = updated.(model)
	if m.confirmDialog != nil {
		t.Fatal("dialog should close on confirm")
	}
	if m.gate.State() != action.Idle {
		t.Fatalf("gate state = %v, want Idle", m.gate.State())
	}
	if execCmd == nil {
		t.Fatal("expected an execute command")
	}
	if launched, ok := execCmd().(actionLaunchedMsg); !ok || launched.action.Name != "Reboot" {
		t.Fatalf("expected Reboot to launch, got %#v", execCmd())
	}
}

func TestFailedLaunchKeepsTheMenuOpen(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	failed := actionFailedMsg{
		action: &m.cfg.Actions[0],
		err:    errFake{},
	}
	updated, cmd := m.Update(failed)
	m = updated.(model)
	if cmd != nil {
		t.Fatal("a failed launch must not quit")
	}

	view := m.View()
	if view == "" {
		t.Fatal("expected the menu to still render")
	}
	if !strings.Contains(view, "failed to run Lock") {
		t.Fatal("expected the footer to show the launch error")
	}

	// The menu still works afterwards
	m, execCmd := pressKey(t, m, "l")
	if execCmd == nil {
		t.Fatal("expected keybinds to work after a failed launch")
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	m, cmd := pressKey(t, m, "x")
	if cmd != nil {
		t.Fatal("unbound keys should do nothing")
	}
	if m.confirmDialog != nil {
		t.Fatal("unbound keys should not open dialogs")
	}
}

func TestTabCyclesSelectionAndEnterActivates(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	if m.selected != 0 {
		t.Fatalf("initial selection = %d, want 0", m.selected)
	}
	m, _ = pressKey(t, m, "tab")
	if m.selected != 1 {
		t.Fatalf("selection after tab = %d, want 1", m.selected)
	}
	m, _ = pressKey(t, m, "tab")
	m, _ = pressKey(t, m, "tab")
	if m.selected != 0 {
		t.Fatalf("selection should wrap, got %d", m.selected)
	}

	m, _ = pressKey(t, m, "tab")
	m, _ = pressKey(t, m, "enter")
	if m.confirmDialog == nil {
		t.Fatal("activating the guarded Reboot button should open the dialog")
	}
}

func TestHelpOverlayConsumesKeys(t *testing.T) {
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), nil, nil))

	m, _ = pressKey(t, m, "?")
	if !m.showHelp {
		t.Fatal("? should open the help overlay")
	}

	// Keybinds must not fire while help is open; the key closes help instead
	m, cmd := pressKey(t, m, "l")
	if cmd == nil {
		t.Fatal("expected the overlay to emit a close command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(model)
	if m.showHelp {
		t.Fatal("help overlay should close on any key")
	}
	if m.confirmDialog != nil {
		t.Fatal("the closing key must not reach the dispatcher")
	}
}

func TestThemeReloadRebuildsStyles(t *testing.T) {
	reloads := make(chan theme.Colors, 1)
	m := sized(t, newModel(testConfig(), theme.DefaultColors(), reloads, nil))

	before := m.styles

	fresh := theme.DefaultColors()
	fresh.Primary = "#ff0000"
	updated, cmd := m.Update(themeReloadedMsg{colors: fresh})
	m = updated.(model)

	if m.styles == before {
		t.Fatal("expected a fresh style set after a theme reload")
	}
	if cmd == nil {
		t.Fatal("expected the model to keep waiting for reloads")
	}
}

type errFake struct{}

func (errFake) Error() string { return "spawn failed" }
