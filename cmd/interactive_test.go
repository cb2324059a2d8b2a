package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Beastly713/polysecret/pkg/pipeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m. Returned commands are dropped.
func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

// openSelected presses enter on the selected document and delivers the solve result.
func openSelected(t *testing.T, m model) model {
	t.Helper()
	next, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd, "expected a solve command")
	return send(t, next.(model), cmd())
}

func TestInteractiveSolveAndEvaluate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a_dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shares.json"), []byte(
		`{"keys":{"n":3,"k":3},"1":{"base":"10","value":"10"},"2":{"base":"10","value":"21"},"3":{"base":"10","value":"38"}}`,
	), 0644))

	m := initialModel(dir, pipeline.Options{})
	require.Len(t, m.files, 3, "parent, directory and document only")
	assert.Equal(t, "..", m.files[0].name)

	// Evaluating before solving is refused.
	m = send(t, m, key("e"))
	assert.False(t, m.entering)
	assert.Equal(t, "Solve a document first.", m.status)

	m = send(t, m, key("down"))
	m = send(t, m, key("down"))
	require.Equal(t, 2, m.cursor)

	m = openSelected(t, m)
	require.NotNil(t, m.result)
	assert.InDelta(t, 5, m.result.Secret(), 1e-6)
	assert.Contains(t, m.View(), OutputPrefix+"3x^2 + 2x^1 = 5")

	m = send(t, m, key("e"))
	require.True(t, m.entering)
	m = send(t, m, key("2"))
	assert.Equal(t, "2", m.input.Value())
	m = send(t, m, key("enter"))
	assert.Contains(t, m.status, "p(2) = ")
	assert.Contains(t, m.status, "21")

	m = send(t, m, key("esc"))
	assert.False(t, m.entering)
	assert.Equal(t, browseHelp, m.status)

	m = send(t, m, key("q"))
	assert.True(t, m.quitting)
	assert.Equal(t, "Bye!\n", m.View())
}

func TestInteractiveReportsErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"keys":`), 0644))

	m := initialModel(dir, pipeline.Options{})
	m = send(t, m, key("down"))
	m = openSelected(t, m)

	assert.Nil(t, m.result)
	assert.Contains(t, m.status, "format error")
}

func TestInteractiveNavigatesDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "shares.yaml"), []byte("keys: {n: 1, k: 1}\n"), 0644))

	m := initialModel(dir, pipeline.Options{})
	m = send(t, m, key("down"))
	m = send(t, m, key("enter"))

	assert.Equal(t, sub, m.path)
	require.Len(t, m.files, 2)
	assert.Equal(t, "shares.yaml", m.files[1].name)
}
