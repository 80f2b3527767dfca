package sorting

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"xlsd/internal/entry"
)

// Strategy is a pure reordering function applied to a full directory
// listing. A strategy must return a permutation of its input and leave
// the input slice's elements intact.
type Strategy func([]*entry.PathEntry) []*entry.PathEntry

// ErrUnknownStrategy is returned by Get for names nobody registered.
// It is a configuration error, distinct from any filesystem failure.
var ErrUnknownStrategy = errors.New("unknown sort strategy")

var registry = map[string]Strategy{}

// Register makes a strategy selectable by name. Re-registering a name
// overwrites the previous strategy. Registration is meant for init time;
// the registry is read-only once a listing starts and is not safe for
// concurrent mutation.
func Register(name string, strategy Strategy) {
	registry[name] = strategy
}

// Get returns the strategy registered under name.
func Get(name string) (Strategy, error) {
	strategy, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return strategy, nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("directories_first", DirectoriesFirst)
	Register("alphabetical", Alphabetical)
	Register("as_is", AsIs)
}

// lowercaseName is the sort key for name-based strategies. Using only
// the lowercase name keeps the sorts stable for case-colliding names.
func lowercaseName(e *entry.PathEntry) string {
	return strings.ToLower(e.Name)
}

func sortByName(entries []*entry.PathEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lowercaseName(entries[i]) < lowercaseName(entries[j])
	})
}

// DirectoriesFirst sorts the entries in alphabetical order, directories
// first. An entry whose directory check fails (probably a circular
// symbolic link) is kept with the directories so one bad entry doesn't
// abort the whole listing.
func DirectoriesFirst(entries []*entry.PathEntry) []*entry.PathEntry {
	var directories, files []*entry.PathEntry

	for _, e := range entries {
		isDir, err := e.IsDir(true)
		if err != nil || isDir {
			directories = append(directories, e)
		} else {
			files = append(files, e)
		}
	}

	sortByName(directories)
	sortByName(files)

	return append(directories, files...)
}

// Alphabetical sorts the entries in case-insensitive alphabetical order.
func Alphabetical(entries []*entry.PathEntry) []*entry.PathEntry {
	sorted := make([]*entry.PathEntry, len(entries))
	copy(sorted, entries)
	sortByName(sorted)
	return sorted
}

// AsIs keeps the entries in the same order they were returned by the OS.
func AsIs(entries []*entry.PathEntry) []*entry.PathEntry {
	return entries
}
