// Package theme builds the lipgloss style set for a resolved color palette.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apptheme "departure/pkg/theme"
)

// StyleSet holds all styles derived from one resolved palette. It is built
// once at startup and shared by reference; a theme reload builds a fresh set.
type StyleSet struct {
	// Full-screen surface behind the menu
	Backdrop lipgloss.Style

	// Action buttons
	Button               lipgloss.Style
	ButtonSelected       lipgloss.Style
	ButtonDanger         lipgloss.Style
	ButtonDangerSelected lipgloss.Style
	ButtonText           lipgloss.Style
	ButtonTextSelected   lipgloss.Style
	ButtonGlyph          lipgloss.Style
	FallbackGlyph        lipgloss.Style

	// Confirmation dialog
	Dialog             lipgloss.Style
	DialogTitle        lipgloss.Style
	DialogText         lipgloss.Style
	DialogButton       lipgloss.Style
	DialogDangerButton lipgloss.Style

	// Footer hint bar
	FooterKey       lipgloss.Style
	FooterDesc      lipgloss.Style
	FooterSeparator lipgloss.Style
	FooterError     lipgloss.Style
}

// NewStyleSet derives the terminal styles from the palette.
func NewStyleSet(colors apptheme.Colors) *StyleSet {
	background := TermColor(colors.Background)
	primary := TermColor(colors.Primary)
	secondary := TermColor(colors.Secondary)
	text := TermColor(colors.Text)
	danger := TermColor(colors.Danger)

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Foreground(text).
		Padding(1, 2).
		Align(lipgloss.Center)

	dialogButton := lipgloss.NewStyle().
		Foreground(text).
		Padding(0, 2).
		Margin(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(secondary)

	return &StyleSet{
		Backdrop: lipgloss.NewStyle().Background(background),

		Button:               button,
		ButtonSelected:       button.BorderForeground(primary).Bold(true),
		ButtonDanger:         button.BorderForeground(danger),
		ButtonDangerSelected: button.BorderForeground(danger).Foreground(danger).Bold(true),
		ButtonText:           lipgloss.NewStyle().Foreground(text),
		ButtonTextSelected:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		ButtonGlyph:          lipgloss.NewStyle().Foreground(secondary),
		FallbackGlyph:        lipgloss.NewStyle().Foreground(secondary).Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Foreground(text).
			Padding(1, 3),
		DialogTitle:        lipgloss.NewStyle().Foreground(primary).Bold(true),
		DialogText:         lipgloss.NewStyle().Foreground(text),
		DialogButton:       dialogButton,
		DialogDangerButton: dialogButton.BorderForeground(danger).Foreground(danger),

		FooterKey:       lipgloss.NewStyle().Foreground(primary).Bold(true),
		FooterDesc:      lipgloss.NewStyle().Foreground(text),
		FooterSeparator: lipgloss.NewStyle().Foreground(secondary),
		FooterError:     lipgloss.NewStyle().Foreground(danger).Bold(true),
	}
}

// TermColor adapts a configured color literal to a terminal color. CSS
// rgba()/rgb() literals are flattened to hex because terminal cells have no
// alpha channel; anything else passes through for lipgloss to interpret.
func TermColor(literal string) lipgloss.Color {
	s := strings.TrimSpace(strings.ToLower(literal))

	var inner string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		inner = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		inner = s[len("rgb(") : len(s)-1]
	default:
		return lipgloss.Color(literal)
	}

	parts := strings.Split(inner, ",")
	if len(parts) < 3 {
		return lipgloss.Color(literal)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return lipgloss.Color(literal)
		}
		channels[i] = uint8(v)
	}

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]))
}
