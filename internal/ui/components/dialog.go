package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dialogFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3a3128")).
				Padding(1, 2).
				Width(44)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c2703d")).
				Bold(true)

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a9286"))
)

// ConfirmDialog renders a framed yes/no prompt.
func ConfirmDialog(title, message string) string {
	parts := []string{
		dialogTitleStyle.Render(title),
		dialogHintStyle.Render(message),
		dialogHintStyle.Render("y: confirm | n: cancel"),
	}
	return dialogFrameStyle.Render(strings.Join(parts, "\n\n"))
}

// ConfirmPreviewDialog renders a confirmation with summary rows and, when the
// operation modifies an existing record, the field-level changes it will send.
func ConfirmPreviewDialog(title string, summary []TableRow, diffs []DiffRow, width int) string {
	sections := make([]string, 0, 3)
	if len(summary) > 0 {
		sections = append(sections, Table("Summary", summary, width))
	}
	if len(diffs) > 0 {
		sections = append(sections, DiffTable("Changes", diffs, width))
	}
	sections = append(sections, dialogHintStyle.Render("y: confirm | n: cancel"))

	return TitledBox(title, strings.Join(sections, "\n\n"), width)
}
