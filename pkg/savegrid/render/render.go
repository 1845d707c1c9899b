// Package render draws display grids for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
)

// Theme colors
var (
	ColorBorder = lipgloss.Color("#575653")
	ColorBadge  = lipgloss.Color("#4385BE")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorTotal  = lipgloss.Color("#879A39")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBadge)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTotal)
)

// Grid renders a display grid as a bordered table: every cell shows its badge
// above its value, and the total spans the full width in the last row.
func Grid(view models.DisplayGrid) string {
	cols := view.ColumnCount
	if cols < 1 {
		cols = 1
	}

	width := 1
	for _, row := range view.Rows {
		for _, c := range row {
			width = max(width, lipgloss.Width(c.Badge), lipgloss.Width(c.Value))
		}
	}
	inner := cols*(width+3) - 1
	if w := lipgloss.Width(view.TotalLine) + 2; w > inner {
		width += (w - inner + cols - 1) / cols
		inner = cols*(width+3) - 1
	}

	var b strings.Builder
	if view.Title != "" {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(view.Title))
		b.WriteString("\n")
	}

	b.WriteString(border("╭", "┬", "╮", cols, width))
	for _, row := range view.Rows {
		badges := make([]string, cols)
		values := make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			badges[i] = row[i].Badge
			values[i] = row[i].Value
		}
		b.WriteString(line(badges, width, badgeStyle))
		b.WriteString(line(values, width, valueStyle))
		b.WriteString(border("├", "┼", "┤", cols, width))
	}

	b.WriteString(borderStyle.Render("│"))
	b.WriteString(totalStyle.Render(" " + pad(view.TotalLine, inner-2) + " "))
	b.WriteString(borderStyle.Render("│"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", inner) + "╯"))
	b.WriteString("\n")

	return b.String()
}

func line(cells []string, width int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(borderStyle.Render("│"))
	for i, c := range cells {
		b.WriteString(style.Render(" " + pad(c, width) + " "))
		if i < len(cells)-1 {
			b.WriteString(borderStyle.Render("│"))
		}
	}
	b.WriteString(borderStyle.Render("│"))
	b.WriteString("\n")
	return b.String()
}

func border(left, mid, right string, cols, width int) string {
	segs := make([]string, cols)
	for i := range segs {
		segs[i] = strings.Repeat("─", width+2)
	}
	return borderStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

// pad right-pads s to the display width w.
func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
