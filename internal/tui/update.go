package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"catgedit/internal/editor"
)

// appliedMsg reports the outcome of writing the planned output file.
type appliedMsg struct {
	count int
	err   error
}

// applyCmd returns a Bubbletea command that writes the plan to outputPath.
func applyCmd(plan *editor.Plan, outputPath string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(outputPath, plan.Encode(), 0644)
		return appliedMsg{count: plan.Modified(), err: err}
	}
}

// Update handles all Bubbletea update logic for the preview model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case appliedMsg:
		m.view = viewApplied
		m.applied = msg.count
		m.applyErr = msg.err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		if m.view == viewList {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// HandleKeyMsg routes key presses. Enter applies the plan and writes the
// output file; q or ctrl+c leaves without writing anything.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.view = viewQuitting
		return m, tea.Quit
	case "enter":
		if m.view == viewList {
			return m, applyCmd(m.plan, m.outputPath)
		}
		return m, nil
	}

	if m.view == viewList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.SetSize(msg.Width, max(msg.Height-8, 5))
	return m, nil
}
