package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"catgedit/internal/editor"
)

// EditItem adapts one planned edit for the list view.
type EditItem struct {
	Edit editor.Edit
}

func (e EditItem) Title() string {
	return fmt.Sprintf("line %4d  %s", e.Edit.LineNo, trimLine(e.Edit.After))
}

func (e EditItem) Description() string {
	return "was: " + trimLine(e.Edit.Before)
}

func (e EditItem) FilterValue() string {
	return e.Edit.After
}

// trimLine keeps list rows on a single line even for very wide records.
func trimLine(s string) string {
	s = strings.TrimRight(s, " ")
	const limit = 70
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

type viewState int

const (
	viewList viewState = iota
	viewApplied
	viewQuitting
)

// model is the Bubbletea model for the preview TUI.
type model struct {
	list       list.Model
	view       viewState
	plan       *editor.Plan
	outputPath string
	applied    int
	applyErr   error
	width      int
	height     int
}

// InitialModel creates the preview model over a built plan.
func InitialModel(plan *editor.Plan, outputPath string, height int) model {
	items := make([]list.Item, len(plan.Edits))
	for i, e := range plan.Edits {
		items[i] = EditItem{Edit: e}
	}

	listHeight := max(height-8, 5)
	defaultWidth := 80
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, defaultWidth, listHeight)
	l.Title = fmt.Sprintf("%d planned edits -> %s", len(plan.Edits), outputPath)

	return model{
		list:       l,
		plan:       plan,
		outputPath: outputPath,
		width:      defaultWidth,
		height:     height,
	}
}
