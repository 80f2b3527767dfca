// Package render turns listing items into plain-text output. Column
// layout lives here, on top of the fixed-width icons the tables
// guarantee.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"xlsd/internal/entry"
	"xlsd/internal/listing"
)

// The four named color slots of the long format.
var (
	symlinkTargetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	ownerUserStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // intense yellow
	ownerGroupStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	sizeUnitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
)

// Short writes one "icon name" line per item.
func Short(w io.Writer, items []listing.Item) {
	for _, item := range items {
		name := item.Entry.Name
		if item.Entry.IsSymlink() {
			name += " → " + symlinkTargetStyle.Render(item.Entry.Target())
		}
		fmt.Fprintf(w, "%s %s\n", item.Icon, name)
	}
}

// Long writes ls -l style rows: mode, owner, group, size, icon, name.
func Long(w io.Writer, items []listing.Item) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, longRow(item))
	}

	widths := columnWidths(rows)
	for _, row := range rows {
		for col, cell := range row[:len(row)-1] {
			// Pad by display width: styled cells carry escape codes, so
			// fmt's %-*s would count bytes and misalign the columns.
			fmt.Fprint(w, cell, strings.Repeat(" ", widths[col]-lipgloss.Width(cell)+1))
		}
		fmt.Fprintln(w, row[len(row)-1])
	}
}

func longRow(item listing.Item) []string {
	if item.Err != nil {
		return []string{"?", "?", "?", "?", item.Icon, item.Entry.Name}
	}

	userName, groupName := entry.Owner(item.Info)
	name := item.Entry.Name
	if item.Entry.IsSymlink() {
		name += " → " + symlinkTargetStyle.Render(item.Entry.Target())
	}

	return []string{
		item.Info.Mode().String(),
		ownerUserStyle.Render(userName),
		ownerGroupStyle.Render(groupName),
		size(item),
		item.Icon,
		name,
	}
}

// size humanizes a byte count and colors the unit. Directories report
// whatever the filesystem says their size is, like ls does.
func size(item listing.Item) string {
	humanized := humanize.IBytes(uint64(item.Info.Size()))
	amount, unit, found := strings.Cut(humanized, " ")
	if !found {
		return humanized
	}
	return amount + " " + sizeUnitStyle.Render(unit)
}

func columnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			if w := lipgloss.Width(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}
