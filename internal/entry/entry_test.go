package entry

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetsNameToBasename(t *testing.T) {
	assert.Equal(t, "bin", New("/usr/bin").Name)
	assert.Equal(t, "file.txt", New("relative/file.txt").Name)
	assert.Equal(t, "plain", New("plain").Name)
}

func TestIsDirAndIsFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0644))
	sub := filepath.Join(tmp, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	dirEntry := New(sub)
	isDir, err := dirEntry.IsDir(true)
	require.NoError(t, err)
	assert.True(t, isDir)
	isFile, err := dirEntry.IsFile(true)
	require.NoError(t, err)
	assert.False(t, isFile)

	fileEntry := New(file)
	isDir, err = fileEntry.IsDir(true)
	require.NoError(t, err)
	assert.False(t, isDir)
	isFile, err = fileEntry.IsFile(true)
	require.NoError(t, err)
	assert.True(t, isFile)
}

func TestSymlinkFollowControl(t *testing.T) {
	tmp := t.TempDir()
	sub := filepath.Join(tmp, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	link := filepath.Join(tmp, "link")
	require.NoError(t, os.Symlink(sub, link))

	e := New(link)
	assert.True(t, e.IsSymlink())

	// Following, the link counts as a directory.
	isDir, err := e.IsDir(true)
	require.NoError(t, err)
	assert.True(t, isDir)

	// Not following, the link itself is not a directory.
	isDir, err = e.IsDir(false)
	require.NoError(t, err)
	assert.False(t, isDir)

	assert.Equal(t, sub, e.Target())
	assert.False(t, New(sub).IsSymlink())
}

func TestDanglingSymlink(t *testing.T) {
	tmp := t.TempDir()
	link := filepath.Join(tmp, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(tmp, "nowhere"), link))

	e := New(link)
	assert.True(t, e.IsSymlink())

	// Following stat fails, non-following succeeds.
	_, err := e.Stat(true)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	info, err := e.Stat(false)
	require.NoError(t, err)
	assert.Equal(t, fs.ModeSymlink, info.Mode().Type())
}

func TestStatErrorsPropagate(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := e.Stat(true)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = e.IsDir(true)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = e.IsFile(false)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.False(t, e.IsSymlink())
}
