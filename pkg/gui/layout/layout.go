// Package layout arranges configured actions into presentation rows and
// renders the button menu.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"departure/pkg/config"
	"departure/pkg/gui/icons"
	guitheme "departure/pkg/gui/theme"
)

// DefaultGridColumns is used when a grid layout has no usable column count.
const DefaultGridColumns = 3

// MinButtonWidth keeps a button wide enough for a glyph and a short label.
const MinButtonWidth = 8

// Kind describes how the action buttons flow on screen.
type Kind int

const (
	KindHorizontal Kind = iota
	KindVertical
	KindGrid
)

// String returns the string representation of the layout kind
func (k Kind) String() string {
	switch k {
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// KindFor maps a configured layout type onto a Kind. Unknown values fall
// back to horizontal, the stock default.
func KindFor(layoutType string) Kind {
	switch strings.ToLower(strings.TrimSpace(layoutType)) {
	case "vertical":
		return KindVertical
	case "grid":
		return KindGrid
	default:
		return KindHorizontal
	}
}

// Plan is the arrangement of actions into rows. Rows preserve the configured
// action order left to right, top to bottom.
type Plan struct {
	Kind Kind
	Rows [][]config.ActionConfig
}

// BuildPlan arranges the actions per the layout configuration. Horizontal
// puts everything in one row, vertical one action per row, and grid chunks
// rows of the configured column count.
func BuildPlan(actions []config.ActionConfig, cfg config.LayoutConfig) Plan {
	kind := KindFor(cfg.LayoutType)
	plan := Plan{Kind: kind}
	if len(actions) == 0 {
		return plan
	}

	switch kind {
	case KindVertical:
		for i := range actions {
			plan.Rows = append(plan.Rows, actions[i:i+1])
		}
	case KindGrid:
		columns := cfg.Columns
		if columns <= 0 {
			columns = DefaultGridColumns
		}
		for start := 0; start < len(actions); start += columns {
			end := start + columns
			if end > len(actions) {
				end = len(actions)
			}
			plan.Rows = append(plan.Rows, actions[start:end])
		}
	default:
		plan.Rows = [][]config.ActionConfig{actions}
	}
	return plan
}

// Count returns the number of actions in the plan.
func (p Plan) Count() int {
	n := 0
	for _, row := range p.Rows {
		n += len(row)
	}
	return n
}

// At returns the action at the flattened index, row-major.
func (p Plan) At(index int) *config.ActionConfig {
	for _, row := range p.Rows {
		if index < len(row) {
			return &row[index]
		}
		index -= len(row)
	}
	return nil
}

// RowOf returns the row number and offset within that row for a flattened
// index, for row-aware navigation.
func (p Plan) RowOf(index int) (row, col int) {
	for r, actions := range p.Rows {
		if index < len(actions) {
			return r, index
		}
		index -= len(actions)
	}
	return -1, -1
}

// IndexAt returns the flattened index for a row and column, clamping the
// column to the row's width. It returns -1 for an out-of-range row.
func (p Plan) IndexAt(row, col int) int {
	if row < 0 || row >= len(p.Rows) {
		return -1
	}
	index := 0
	for r := 0; r < row; r++ {
		index += len(p.Rows[r])
	}
	if col >= len(p.Rows[row]) {
		col = len(p.Rows[row]) - 1
	}
	if col < 0 {
		col = 0
	}
	return index + col
}

// Renderer draws the button menu for a plan.
type Renderer struct {
	styles *guitheme.StyleSet
	layout config.LayoutConfig
}

// NewRenderer creates a renderer bound to a style set and layout settings.
func NewRenderer(styles *guitheme.StyleSet, layout config.LayoutConfig) *Renderer {
	return &Renderer{styles: styles, layout: layout}
}

// Render draws every button in the plan, highlighting the selected index.
func (r *Renderer) Render(plan Plan, selected int) string {
	spacing := r.layout.ButtonSpacing
	if spacing < 0 {
		spacing = 0
	}
	gap := strings.Repeat(" ", spacing)

	index := 0
	var renderedRows []string
	for _, row := range plan.Rows {
		parts := make([]string, 0, len(row)*2-1)
		for i := range row {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, r.renderButton(&row[i], index == selected))
			index++
		}
		renderedRows = append(renderedRows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	if spacing > 0 && len(renderedRows) > 1 {
		// Blank lines between rows, matching the horizontal gap
		spacer := strings.Repeat("\n", spacing-1)
		withGaps := make([]string, 0, len(renderedRows)*2-1)
		for i, rendered := range renderedRows {
			if i > 0 {
				withGaps = append(withGaps, spacer)
			}
			withGaps = append(withGaps, rendered)
		}
		renderedRows = withGaps
	}

	menu := lipgloss.JoinVertical(lipgloss.Center, renderedRows...)
	margin := r.layout.Margin
	if margin < 0 {
		margin = 0
	}
	return lipgloss.NewStyle().Padding(margin).Render(menu)
}

// renderButton draws one action as a bordered cell with its glyph and name.
func (r *Renderer) renderButton(a *config.ActionConfig, selected bool) string {
	width := r.layout.ButtonSize
	if width < MinButtonWidth {
		width = MinButtonWidth
	}

	glyph, isFallback := icons.Resolve(a.Icon, a.Name)
	glyphStyle := r.styles.ButtonGlyph
	if isFallback {
		glyphStyle = r.styles.FallbackGlyph
	}

	labelStyle := r.styles.ButtonText
	if selected {
		labelStyle = r.styles.ButtonTextSelected
	}
	label := runewidth.Truncate(a.Name, width, "…")

	content := lipgloss.JoinVertical(lipgloss.Center,
		glyphStyle.Render(glyph),
		labelStyle.Render(label),
	)

	style := r.styles.Button
	switch {
	case a.Danger && selected:
		style = r.styles.ButtonDangerSelected
	case a.Danger:
		style = r.styles.ButtonDanger
	case selected:
		style = r.styles.ButtonSelected
	}
	return style.Width(width).Render(content)
}
