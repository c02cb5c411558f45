package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"departure/internal/debug"
	"departure/pkg/action"
	"departure/pkg/common"
	"departure/pkg/config"
	"departure/pkg/gui/layout"
	"departure/pkg/gui/overlays"
	guitheme "departure/pkg/gui/theme"
	"departure/pkg/theme"
)

type model struct {
	cfg    *config.Config
	width  int
	height int
	ready  bool

	plan     layout.Plan
	selected int
	styles   *guitheme.StyleSet
	renderer *layout.Renderer
	footer   *common.Footer

	dispatcher *action.Dispatcher
	gate       *action.Gate
	executor   *action.Executor

	confirmDialog *overlays.ConfirmDialog
	helpDialog    *overlays.HelpDialog
	showHelp      bool

	reloads     chan theme.Colors
	debugLogger *debug.DebugLogger
}

type actionLaunchedMsg struct {
	action *config.ActionConfig
}

type actionFailedMsg struct {
	action *config.ActionConfig
	err    error
}

type themeReloadedMsg struct {
	colors theme.Colors
}

func newModel(cfg *config.Config, colors theme.Colors, reloads chan theme.Colors, debugLogger *debug.DebugLogger) model {
	styles := guitheme.NewStyleSet(colors)
	return model{
		cfg:         cfg,
		plan:        layout.BuildPlan(cfg.Actions, cfg.Layout),
		styles:      styles,
		renderer:    layout.NewRenderer(styles, cfg.Layout),
		footer:      common.NewFooter(cfg.Actions, styles),
		dispatcher:  action.NewDispatcher(cfg.Actions),
		gate:        action.NewGate(),
		executor:    action.NewExecutor(),
		helpDialog:  overlays.NewHelpDialog(cfg.Actions, styles),
		reloads:     reloads,
		debugLogger: debugLogger,
	}
}

func (m model) Init() tea.Cmd {
	return waitForThemeReload(m.reloads)
}

func waitForThemeReload(reloads chan theme.Colors) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		colors, ok := <-reloads
		if !ok {
			return nil
		}
		return themeReloadedMsg{colors: colors}
	}
}

// executeAction spawns the action's command without waiting on it. Success
// quits the menu; failure keeps it open with the error in the footer.
func executeAction(executor *action.Executor, a *config.ActionConfig) tea.Cmd {
	return func() tea.Msg {
		if err := executor.Execute(*a); err != nil {
			return actionFailedMsg{action: a, err: err}
		}
		return actionLaunchedMsg{action: a}
	}
}

// trigger starts an action activated by keybind or button press, routing
// guarded actions through the confirmation gate first.
func (m model) trigger(a *config.ActionConfig) (model, tea.Cmd) {
	if a == nil {
		return m, nil
	}
	if a.Confirm {
		if !m.gate.Request(a) {
			return m, nil
		}
		m.confirmDialog = overlays.NewConfirmDialog(a, m.styles)
		m.confirmDialog.SetSize(m.width, m.height)
		return m, nil
	}
	return m, executeAction(m.executor, a)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.footer.SetSize(msg.Width, 1)
		m.helpDialog.SetSize(msg.Width, msg.Height)
		if m.confirmDialog != nil {
			m.confirmDialog.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case themeReloadedMsg:
		debug.DebugLog("theme reloaded")
		m.styles = guitheme.NewStyleSet(msg.colors)
		m.renderer = layout.NewRenderer(m.styles, m.cfg.Layout)
		m.footer.SetStyles(m.styles)
		m.helpDialog = overlays.NewHelpDialog(m.cfg.Actions, m.styles)
		m.helpDialog.SetSize(m.width, m.height)
		return m, waitForThemeReload(m.reloads)

	case overlays.ConfirmedMsg:
		pending := m.gate.Confirm()
		m.confirmDialog = nil
		if pending == nil {
			return m, nil
		}
		return m, executeAction(m.executor, pending)

	case overlays.CancelledMsg:
		m.gate.Cancel()
		m.confirmDialog = nil
		return m, nil

	case overlays.HelpClosedMsg:
		m.showHelp = false
		return m, nil

	case actionLaunchedMsg:
		debug.DebugLog("launched %q, closing", msg.action.Name)
		return m, tea.Quit

	case actionFailedMsg:
		debug.DebugLog("failed to launch %q: %v", msg.action.Name, msg.err)
		m.footer.SetError("failed to run " + msg.action.Name + ": " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits no matter what is on screen
	if key.Matches(msg, common.GlobalKeys.ForceQuit) {
		return m, tea.Quit
	}

	// Open overlays consume every key before the menu sees it
	if m.showHelp {
		var cmd tea.Cmd
		m.helpDialog, cmd = m.helpDialog.Update(msg)
		return m, cmd
	}
	if m.confirmDialog != nil {
		var cmd tea.Cmd
		m.confirmDialog, cmd = m.confirmDialog.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, common.GlobalKeys.Close):
		return m, tea.Quit

	case key.Matches(msg, common.GlobalKeys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, common.GlobalKeys.Activate):
		return m.trigger(m.plan.At(m.selected))

	case key.Matches(msg, common.GlobalKeys.Right), key.Matches(msg, common.GlobalKeys.Next):
		m.selected = wrap(m.selected+1, m.plan.Count())
		return m, nil

	case key.Matches(msg, common.GlobalKeys.Left), key.Matches(msg, common.GlobalKeys.Prev):
		m.selected = wrap(m.selected-1, m.plan.Count())
		return m, nil

	case key.Matches(msg, common.GlobalKeys.Down):
		return m.moveRow(1), nil

	case key.Matches(msg, common.GlobalKeys.Up):
		return m.moveRow(-1), nil
	}

	// Everything else is offered to the configured action keybinds
	outcome := m.dispatcher.Dispatch(msg.String())
	switch outcome.Kind {
	case action.Terminate:
		return m, tea.Quit
	case action.Execute, action.RequestConfirmation:
		return m.trigger(outcome.Action)
	}
	return m, nil
}

// moveRow moves the selection vertically, keeping the column where possible.
func (m model) moveRow(delta int) model {
	row, col := m.plan.RowOf(m.selected)
	if row < 0 {
		return m
	}
	if next := m.plan.IndexAt(row+delta, col); next >= 0 {
		m.selected = next
	}
	return m
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		return m.helpDialog.View()
	}
	if m.confirmDialog != nil {
		return m.confirmDialog.View()
	}

	menu := m.renderer.Render(m.plan, m.selected)
	body := lipgloss.Place(
		m.width,
		m.height-1,
		lipgloss.Center,
		lipgloss.Center,
		menu,
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer.View())
}
