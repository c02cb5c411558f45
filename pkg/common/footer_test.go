package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
	apptheme "departure/pkg/theme"
)

func TestFooterListsActionKeybinds(t *testing.T) {
	f := NewFooter([]config.ActionConfig{
		{Name: "Lock", Keybind: "l"},
		{Name: "Shutdown", Keybind: "p"},
		{Name: "Unbound"},
	}, guitheme.NewStyleSet(apptheme.DefaultColors()))
	f.SetSize(120, 1)

	view := f.View()
	require.Contains(t, view, "lock")
	require.Contains(t, view, "shutdown")
	require.Contains(t, view, "esc")
	require.Contains(t, view, "?")
	require.NotContains(t, view, "unbound")
}

func TestFooterErrorReplacesHints(t *testing.T) {
	f := NewFooter([]config.ActionConfig{{Name: "Reboot", Keybind: "r"}},
		guitheme.NewStyleSet(apptheme.DefaultColors()))
	f.SetSize(80, 1)
	f.SetError("spawn failed: hyprlock")

	view := f.View()
	require.Contains(t, view, "spawn failed: hyprlock")
	require.False(t, strings.Contains(view, "reboot"), "hints should be hidden while an error is shown")

	f.SetError("")
	require.Contains(t, f.View(), "reboot")
}

func TestFooterZeroWidthRendersNothing(t *testing.T) {
	f := NewFooter(nil, guitheme.NewStyleSet(apptheme.DefaultColors()))
	require.Empty(t, f.View())
}
