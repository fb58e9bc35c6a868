package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catgedit/internal/editor"
	"catgedit/pkg/catg"
)

const previewSample = `C #NODES
C 1 100.0 200.0 5 1 0 2 Inlet  2.5 0.3
C 2 150.0 250.0 5 1 0 0 Outlet 3.1 0.2
`

func previewModel(t *testing.T, outputPath string) model {
	t.Helper()
	plan, err := editor.BuildPlan([]byte(previewSample), editor.Options{
		Section: catg.Nodes,
		Field:   "PrintFlag",
		Value:   "1",
	})
	require.NoError(t, err)
	return InitialModel(plan, outputPath, 24)
}

func TestInitialModelListsPlannedEdits(t *testing.T) {
	m := previewModel(t, "out.catg")
	assert.Equal(t, 2, len(m.list.Items()))

	item, ok := m.list.Items()[0].(EditItem)
	require.True(t, ok)
	assert.Equal(t, 2, item.Edit.LineNo)
}

func TestQuitWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.catg")
	m := previewModel(t, output)

	m2, cmd := Update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Equal(t, viewQuitting, m2.view)
	require.NotNil(t, cmd)

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestEnterAppliesPlan(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.catg")
	m := previewModel(t, output)

	m2, cmd := Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "enter should schedule the apply command")

	msg := cmd()
	applied, ok := msg.(appliedMsg)
	require.True(t, ok)
	require.NoError(t, applied.err)
	assert.Equal(t, 2, applied.count)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "C 1 100.0 200.0 5 1 1 2 Inlet  2.5 0.3")

	m3, _ := Update(m2, msg)
	assert.Equal(t, viewApplied, m3.view)
	assert.Equal(t, 2, m3.applied)
}
