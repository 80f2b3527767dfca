package entry

import (
	"io/fs"
	"os"
	"path/filepath"
)

// PathEntry represents a single filesystem entry at a given path.
//
// It mirrors the behavior of os.DirEntry for arbitrary paths: entries
// returned by a directory scan come with "follow symlinks" semantics baked
// in, while this wrapper re-derives both variants on demand from a bare
// path string. That lets any caller ask either question about any path,
// including ones that never came from a directory scan (e.g. explicit CLI
// arguments).
type PathEntry struct {
	Path string // as given, absolute or relative
	Name string // basename of Path, set once at construction
}

// New wraps path in a PathEntry.
func New(path string) *PathEntry {
	return &PathEntry{
		Path: path,
		Name: filepath.Base(path),
	}
}

// Stat performs a stat system call on the entry's path. When followSymlinks
// is true symlink chains are resolved (os.Stat), otherwise the link itself
// is inspected (os.Lstat). Filesystem errors (not-found, permission,
// too many levels of symbolic links) are returned undecorated.
func (e *PathEntry) Stat(followSymlinks bool) (fs.FileInfo, error) {
	if followSymlinks {
		return os.Stat(e.Path)
	}
	return os.Lstat(e.Path)
}

// IsDir reports whether the entry is a directory. With followSymlinks a
// symlink pointing at a directory counts; without, the link itself is
// inspected and never counts.
func (e *PathEntry) IsDir(followSymlinks bool) (bool, error) {
	info, err := e.Stat(followSymlinks)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether the entry is a regular file, with the same
// symlink semantics as IsDir.
func (e *PathEntry) IsFile(followSymlinks bool) (bool, error) {
	info, err := e.Stat(followSymlinks)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsSymlink reports whether the path itself, without following, is a
// symbolic link. An unstatable path is not a symlink.
func (e *PathEntry) IsSymlink() bool {
	info, err := os.Lstat(e.Path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// Target returns what a symlink points at, or "" for non-symlinks.
func (e *PathEntry) Target() string {
	target, err := os.Readlink(e.Path)
	if err != nil {
		return ""
	}
	return target
}
