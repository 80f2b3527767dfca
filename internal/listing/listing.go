// Package listing runs the pipeline that turns a directory path into an
// ordered, classified sequence of entries: enumerate → wrap → sort →
// resolve icons. Rendering is somebody else's job.
package listing

import (
	"io/fs"
	"os"
	"path/filepath"

	"xlsd/internal/entry"
	"xlsd/internal/icons"
	"xlsd/internal/sorting"
)

// Item is one classified row of a directory listing.
type Item struct {
	Entry *entry.PathEntry
	Icon  string
	Info  fs.FileInfo // lstat metadata, nil when Err is set
	Err   error       // per-entry stat failure; never aborts the listing
}

// List enumerates dir, sorts the entries with the named strategy and
// classifies each one. An unknown strategy name or an unreadable
// directory fails the whole call; a stat failure on an individual entry
// is recorded on its Item instead.
func List(dir string, strategyName string) ([]Item, error) {
	strategy, err := sorting.Get(strategyName)
	if err != nil {
		return nil, err
	}

	// Read through an open handle instead of os.ReadDir, which sorts by
	// filename and would destroy the order the as_is strategy preserves.
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dirents, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]*entry.PathEntry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, entry.New(filepath.Join(dir, d.Name())))
	}

	entries = strategy(entries)

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := Item{Entry: e, Icon: icons.IconFor(e)}
		item.Info, item.Err = e.Stat(false)
		items = append(items, item)
	}
	return items, nil
}
