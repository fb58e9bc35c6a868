package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ModelView renders the preview model's view as a string.
func ModelView(m model) string {
	switch m.view {
	case viewQuitting:
		return quittingView()
	case viewApplied:
		return appliedView(m)
	default:
		return listView(m)
	}
}

func quittingView() string {
	return "No changes written.\n"
}

func appliedView(m model) string {
	if m.applyErr != nil {
		errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
		return errStyle.Render("write failed: ") + m.applyErr.Error() + "\n"
	}
	okStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	return okStyle.Render(fmt.Sprintf("Wrote %d modified records to %s\n", m.applied, m.outputPath))
}

func listView(m model) string {
	help := lipgloss.NewStyle().Faint(true).Render("enter: write output   q: quit without writing")
	return lipgloss.NewStyle().Padding(1).Render(m.list.View() + "\n" + help)
}
