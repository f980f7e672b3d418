package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn describes one column of a TableGrid. Width is the content
// width in cells, not counting the separator glyphs between columns.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridIndent = 2

var (
	gridRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a3128"))

	gridActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ddd8cf")).
			Background(lipgloss.Color("#241f18")).
			Bold(true)

	gridActiveRuleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3a3128")).
				Background(lipgloss.Color("#241f18"))
)

// TableGrid renders a columnar listing with a header rule, using the same
// rounded border glyphs as the box components. activeRow is a 0-based index
// into rows rendered with a highlight; pass -1 for no highlight.
//
// Width should fit inside a box content area, typically
// BoxContentWidth(termWidth).
func TableGrid(columns []TableColumn, rows [][]string, width, activeRow int) string {
	if width <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", width)
	}

	border := lipgloss.RoundedBorder()
	sep := border.Left
	rule := border.Top
	cross := border.Middle
	if sep == "" {
		sep = "|"
	}
	if rule == "" {
		rule = "-"
	}
	if cross == "" {
		cross = "+"
	}

	cols := sizeGridColumns(columns, sep, width)

	lines := make([]string, 0, len(rows)+2)
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = SanitizeOneLine(c.Header)
	}
	lines = append(lines, gridLine(cols, headers, sep, width, true, false))
	lines = append(lines, gridRule(cols, cross, rule, width))
	for i, row := range rows {
		lines = append(lines, gridLine(cols, row, sep, width, false, i == activeRow))
	}
	return strings.Join(lines, "\n")
}

// sizeGridColumns stretches or shrinks the last column so the row exactly
// fills the grid width.
func sizeGridColumns(columns []TableColumn, sep string, width int) []TableColumn {
	cols := make([]TableColumn, len(columns))
	copy(cols, columns)

	sepW := lipgloss.Width(sep)
	if sepW < 1 {
		sepW = 1
	}
	avail := width - gridIndent
	if avail < len(cols) {
		avail = len(cols)
	}

	used := 0
	for i := range cols {
		if cols[i].Width < 1 {
			cols[i].Width = 1
		}
		used += cols[i].Width
	}
	if len(cols) > 1 {
		used += (len(cols) - 1) * sepW
	}
	last := len(cols) - 1
	cols[last].Width += avail - used
	if cols[last].Width < 1 {
		cols[last].Width = 1
	}
	return cols
}

func gridLine(columns []TableColumn, cells []string, sep string, width int, header, active bool) string {
	sepStyle := gridRuleStyle
	cellStyle := lipgloss.NewStyle()
	switch {
	case header:
		cellStyle = boxLabelStyle.Bold(true)
	case active:
		sepStyle = gridActiveRuleStyle
		cellStyle = gridActiveStyle
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyle.Inline(true).Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		cell := gridCell(text, col.Width, col.Align)
		if header || active {
			// Inline keeps each cell to a single rendered line.
			cell = cellStyle.Inline(true).Render(cell)
		}
		b.WriteString(cell)
	}

	line := b.String()
	if lipgloss.Width(line) < width {
		line = padRight(line, width)
	}
	return line
}

func gridRule(columns []TableColumn, cross, rule string, width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range columns {
		b.WriteString(strings.Repeat(rule, col.Width))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	line := b.String()
	if lipgloss.Width(line) < width {
		line = padRight(line, width)
	}
	return gridRuleStyle.Inline(true).Render(line)
}

func gridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	clamped := ClampTextWidth(text, width)
	w := lipgloss.Width(clamped)
	if w >= width {
		return truncateRunes(clamped, width)
	}
	pad := width - w
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
