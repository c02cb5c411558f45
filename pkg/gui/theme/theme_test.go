package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	apptheme "departure/pkg/theme"
)

func TestTermColorFlattensRGBA(t *testing.T) {
	require.Equal(t, lipgloss.Color("#1e1e2e"), TermColor("rgba(30, 30, 46, 0.8)"))
	require.Equal(t, lipgloss.Color("#ff0080"), TermColor("rgb(255, 0, 128)"))
}

func TestTermColorPassesHexThrough(t *testing.T) {
	require.Equal(t, lipgloss.Color("#89b4fa"), TermColor("#89b4fa"))
}

func TestTermColorLeavesMalformedLiteralsAlone(t *testing.T) {
	for _, literal := range []string{"rgba(30, 30)", "rgb(x, y, z)", "rgba(999, 0, 0, 1)", "tomato"} {
		require.Equal(t, lipgloss.Color(literal), TermColor(literal))
	}
}

func TestNewStyleSetUsesPaletteColors(t *testing.T) {
	styles := NewStyleSet(apptheme.Colors{
		Background: "rgba(30, 30, 46, 0.8)",
		Primary:    "#89b4fa",
		Secondary:  "#74c7ec",
		Text:       "#cdd6f4",
		Danger:     "#f38ba8",
	})

	require.Equal(t, lipgloss.Color("#89b4fa"), styles.ButtonSelected.GetBorderTopForeground())
	require.Equal(t, lipgloss.Color("#f38ba8"), styles.ButtonDanger.GetBorderTopForeground())
	require.Equal(t, lipgloss.Color("#cdd6f4"), styles.Button.GetForeground())
	require.Equal(t, lipgloss.Color("#1e1e2e"), styles.Backdrop.GetBackground())
}
