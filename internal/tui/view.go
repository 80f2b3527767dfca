package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xlsd/internal/listing"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	symlinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading directory... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			errStyle.Render(fmt.Sprintf("Error: %v", m.Err)),
			dimStyle.Render("backspace: parent dir • q: quit"))
	}

	height := m.WindowSize.Height
	if height == 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Dir))
	b.WriteString(dimStyle.Render("  sort: " + m.SortMethod))
	b.WriteString("\n\n")

	// Windowing: header is 2 lines, footer 2 lines.
	visibleItems := height - 4
	if visibleItems < 1 {
		visibleItems = 1
	}
	start := 0
	if m.SelectedIdx >= visibleItems {
		start = m.SelectedIdx - visibleItems + 1
	}

	for i := start; i < len(m.FilteredIndices) && i < start+visibleItems; i++ {
		item := m.Items[m.FilteredIndices[i]]
		line := renderItem(item)
		if i == m.SelectedIdx {
			line = selectedItemStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("  (no matching entries)") + "\n")
	}

	b.WriteString("\n")
	if m.InputMode {
		b.WriteString("  /" + m.InputBuffer.View())
	} else {
		help := "j/k: move • enter: open • backspace: up • s: sort • /: filter • q: quit"
		if m.FilterActive {
			help = "filter: " + m.InputBuffer.Value() + " • esc: clear • " + help
		}
		b.WriteString(dimStyle.Render("  " + help))
	}

	return b.String()
}

func renderItem(item listing.Item) string {
	name := item.Entry.Name
	if item.Entry.IsSymlink() {
		name += symlinkStyle.Render(" → " + item.Entry.Target())
	}
	return item.Icon + " " + name
}
