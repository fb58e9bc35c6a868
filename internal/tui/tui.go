// Package tui provides the interactive preview: the planned edits are listed
// for inspection before the output file is written.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"catgedit/internal/editor"
)

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run builds a plan for content and launches the preview over it. The output
// file is written only if the user confirms; quitting leaves it untouched.
func Run(content []byte, opts editor.Options, outputPath string) error {
	plan, err := editor.BuildPlan(content, opts)
	if err != nil {
		return err
	}

	adapter := &teaModelAdapter{InitialModel(plan, outputPath, 24)}
	p := tea.NewProgram(adapter)

	if _, err := p.Run(); err != nil {
		return err
	}
	return adapter.m.applyErr
}

// teaModelAdapter adapts our model to the tea.Model interface using Update
// and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
