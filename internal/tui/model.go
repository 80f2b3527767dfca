package tui

import (
	"xlsd/internal/listing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Dir        string
	SortMethod string
	Items      []listing.Item
	Loading    bool
	Err        error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Items to show
	FilterActive    bool
}

// InitialModel returns the initial state, rooted at dir.
func InitialModel(dir, sortMethod string) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Dir:         dir,
		SortMethod:  sortMethod,
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init starts loading the first listing.
func (m AppModel) Init() tea.Cmd {
	return loadListingCmd(m.Dir, m.SortMethod)
}
