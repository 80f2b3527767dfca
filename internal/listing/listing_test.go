package listing

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xlsd/internal/icons"
	"xlsd/internal/sorting"
)

func TestListDirectoriesFirst(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "B.PY"), []byte("print()\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "Sub"), 0755))

	items, err := List(tmp, "directories_first")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Sub", items[0].Entry.Name)
	assert.Equal(t, "B.PY", items[1].Entry.Name)
	assert.Equal(t, "a.txt", items[2].Entry.Name)

	assert.Equal(t, icons.StatIcons.Get(fs.ModeDir), items[0].Icon)
	assert.Equal(t, icons.LSIcons.Get("python"), items[1].Icon)
	assert.Equal(t, icons.LSIcons.Get("text"), items[2].Icon)

	for _, item := range items {
		require.NoError(t, item.Err)
		assert.NotNil(t, item.Info)
	}
}

func TestListUnknownStrategyIsConfigError(t *testing.T) {
	_, err := List(t.TempDir(), "nope")
	assert.ErrorIs(t, err, sorting.ErrUnknownStrategy)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestListUnreadableDirectoryFails(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), "as_is")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestListSurvivesBrokenEntries(t *testing.T) {
	tmp := t.TempDir()
	loop := filepath.Join(tmp, "loop")
	require.NoError(t, os.Symlink(loop, loop))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "ok.txt"), nil, 0644))

	items, err := List(tmp, "directories_first")
	require.NoError(t, err, "one broken entry must not abort the listing")
	require.Len(t, items, 2)

	// The circular symlink sorts with the directories and still gets an
	// icon; its lstat metadata is intact.
	assert.Equal(t, "loop", items[0].Entry.Name)
	assert.Equal(t, icons.StatIcons.Get(fs.ModeSymlink), items[0].Icon)
	require.NoError(t, items[0].Err)
	assert.Equal(t, fs.ModeSymlink, items[0].Info.Mode().Type())
}

func TestListPaths(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "f"), nil, 0644))

	items, err := List(tmp, "as_is")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, filepath.Join(tmp, "f"), items[0].Entry.Path)
	assert.Equal(t, "f", items[0].Entry.Name)
}
