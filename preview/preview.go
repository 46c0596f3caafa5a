// Package preview draws keyboards in the terminal, one bordered box per
// cell, so layouts can be checked without a Telegram client.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lojasmm/inlinekb/keyboard"
)

var (
	colorText   = lipgloss.Color("#cdd6f4")
	colorMuted  = lipgloss.Color("#7f849c")
	colorBorder = lipgloss.Color("#89b4fa")
	colorTitle  = lipgloss.Color("#fab387")
)

var cellStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Foreground(colorText).
	Align(lipgloss.Center).
	Padding(0, 1)

var placeholderStyle = cellStyle.
	BorderForeground(colorMuted).
	Foreground(colorMuted)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	tokenStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Render draws kb as a grid. Every cell of a column gets the width of the
// column's widest label.
func Render(kb keyboard.Keyboard) string {
	if len(kb) == 0 {
		return tokenStyle.Render("(empty keyboard)")
	}

	widths := columnWidths(kb)
	rows := make([]string, 0, len(kb))
	for _, row := range kb {
		cells := make([]string, 0, len(row))
		for c, cell := range row {
			style := cellStyle
			if cell.IsPlaceholder() {
				style = placeholderStyle
			}
			cells = append(cells, style.Width(widths[c]+2).Render(cell.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Titled renders kb under a title line and its size.
func Titled(title string, kb keyboard.Keyboard) string {
	head := titleStyle.Render(title) + " " + tokenStyle.Render(kb.Size().String())
	return lipgloss.JoinVertical(lipgloss.Left, head, Render(kb))
}

// Tokens lists the callback token of every cell, row by row.
func Tokens(kb keyboard.Keyboard) string {
	var b strings.Builder
	for r, row := range kb {
		for c, cell := range row {
			fmt.Fprintf(&b, "%d,%d  %-12s %s\n", r, c, cell.Token, tokenStyle.Render(cell.Label))
		}
	}
	return b.String()
}

func columnWidths(kb keyboard.Keyboard) []int {
	var widths []int
	for _, row := range kb {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell.Label); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}
