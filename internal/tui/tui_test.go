package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyModel(t *testing.T) AppModel {
	t.Helper()
	tmp := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "b.log"), nil, 0644))

	m := InitialModel(tmp, "directories_first")
	msg := m.Init()()
	items, ok := msg.(MsgListingReady)
	require.True(t, ok, "expected a listing, got %T: %v", msg, msg)

	updated, _ := m.Update(items)
	return updated.(AppModel)
}

func TestInitLoadsListing(t *testing.T) {
	m := readyModel(t)
	assert.False(t, m.Loading)
	require.Len(t, m.Items, 3)
	assert.Equal(t, "sub", m.Items[0].Entry.Name)
	assert.Equal(t, []int{0, 1, 2}, m.FilteredIndices)
}

func TestInitReportsError(t *testing.T) {
	m := InitialModel(filepath.Join(t.TempDir(), "missing"), "directories_first")
	msg := m.Init()()
	errMsg, ok := msg.(MsgError)
	require.True(t, ok)

	updated, _ := m.Update(errMsg)
	m = updated.(AppModel)
	assert.Error(t, m.Err)
	assert.Contains(t, m.View(), "Error")
}

func TestNavigationAndDescend(t *testing.T) {
	m := readyModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = updated.(AppModel)
	assert.Equal(t, 1, m.SelectedIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updated.(AppModel)
	assert.Equal(t, 0, m.SelectedIdx)

	// Enter on the directory reloads rooted at it.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(AppModel)
	assert.True(t, m.Loading)
	assert.Equal(t, "sub", filepath.Base(m.Dir))
	require.NotNil(t, cmd)
}

func TestSortCycleReloads(t *testing.T) {
	m := readyModel(t)
	before := m.SortMethod

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(AppModel)
	assert.NotEqual(t, before, m.SortMethod)
	assert.NotNil(t, cmd)
}

func TestFilter(t *testing.T) {
	m := readyModel(t)
	m.InputBuffer.SetValue("a.t")
	m.applyFilter()

	require.Len(t, m.FilteredIndices, 1)
	assert.Equal(t, "a.txt", m.Items[m.FilteredIndices[0]].Entry.Name)
	assert.True(t, m.FilterActive)

	m.InputBuffer.SetValue("")
	m.applyFilter()
	assert.Len(t, m.FilteredIndices, 3)
	assert.False(t, m.FilterActive)
}

func TestViewShowsEntries(t *testing.T) {
	m := readyModel(t)
	m.WindowSize = tea.WindowSizeMsg{Width: 80, Height: 24}

	view := m.View()
	assert.Contains(t, view, "sub")
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "directories_first")
}
