package tui

import (
	"path/filepath"
	"strings"

	"xlsd/internal/listing"
	"xlsd/internal/sorting"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgListingReady indicates that a directory listing has completed.
type MsgListingReady []listing.Item

// MsgError indicates an error occurred.
type MsgError error

// loadListingCmd runs the listing pipeline in the background.
func loadListingCmd(dir, sortMethod string) tea.Cmd {
	return func() tea.Msg {
		items, err := listing.List(dir, sortMethod)
		if err != nil {
			return MsgError(err)
		}
		return MsgListingReady(items)
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgListingReady:
		m.Loading = false
		m.Err = nil
		m.Items = []listing.Item(msg)
		m.applyFilter()
		if m.SelectedIdx >= len(m.FilteredIndices) {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				// Exit filter mode and clear the filter
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "enter", "right", "l":
			if item, ok := m.selectedItem(); ok {
				if isDir, err := item.Entry.IsDir(true); err == nil && isDir {
					return m.changeDir(item.Entry.Path)
				}
			}
		case "backspace", "left", "h":
			return m.changeDir(filepath.Dir(m.Dir))
		case "s":
			m.SortMethod = nextSortMethod(m.SortMethod)
			m.Loading = true
			return m, loadListingCmd(m.Dir, m.SortMethod)
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m AppModel) changeDir(dir string) (tea.Model, tea.Cmd) {
	m.Dir = dir
	m.Loading = true
	m.SelectedIdx = 0
	m.FilterActive = false
	m.InputBuffer.SetValue("")
	return m, loadListingCmd(m.Dir, m.SortMethod)
}

func (m AppModel) selectedItem() (listing.Item, bool) {
	if m.SelectedIdx >= len(m.FilteredIndices) {
		return listing.Item{}, false
	}
	return m.Items[m.FilteredIndices[m.SelectedIdx]], true
}

// nextSortMethod cycles through the registered strategies.
func nextSortMethod(current string) string {
	names := sorting.Names()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (m *AppModel) applyFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.FilterActive = false
		m.FilteredIndices = make([]int, len(m.Items))
		for i := range m.Items {
			m.FilteredIndices[i] = i
		}
	} else {
		m.FilterActive = true
		var result []int
		for i, item := range m.Items {
			if strings.Contains(strings.ToLower(item.Entry.Name), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
