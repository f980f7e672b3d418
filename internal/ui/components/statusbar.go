package components

import "github.com/charmbracelet/lipgloss"

var (
	hintTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a9286"))
	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#17140f")).
			Background(lipgloss.Color("#a39a8a")).
			Bold(true).
			Padding(0, 1)
	hintSegmentStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#3a3128")).
				Padding(0, 1).
				MarginRight(1)
	statusBarFrame = lipgloss.NewStyle().
			PaddingLeft(2)
)

// Hint formats a single keybind hint segment.
func Hint(key, desc string) string {
	return hintTextStyle.Render(desc+" ") + hintKeyStyle.Render(key)
}

// StatusBar renders the bottom hint bar. Hints that do not fit the
// terminal width wrap onto additional centered rows.
func StatusBar(hints []string, width int) string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, hintSegmentStyle.Render(h))
	}
	if width <= 0 {
		return statusBarFrame.Render(lipgloss.JoinHorizontal(lipgloss.Top, segments...))
	}

	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	widest := 0
	for _, row := range rows {
		if w := lipgloss.Width(row); w > widest {
			widest = w
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.NewStyle().Width(widest).Align(lipgloss.Center).Render(row))
	}
	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return statusBarFrame.Width(width).Align(lipgloss.Center).Render(block)
}

// wrapSegments packs rendered segments into rows no wider than width.
// A segment wider than the whole row still gets a row of its own.
func wrapSegments(segments []string, width int) []string {
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = []string{seg}
			rowWidth = w
			continue
		}
		row = append(row, seg)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}
