package icons

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"xlsd/internal/entry"
)

// CategoryForExtension returns the icon category for a file extension
// (without the leading dot, any case), or ok=false when no set contains
// it. The first declared set containing the extension wins.
func CategoryForExtension(ext string) (category string, ok bool) {
	ext = strings.ToLower(ext)
	for _, rule := range ExtensionIcons {
		if _, found := rule.exts[ext]; found {
			return rule.category, true
		}
	}
	return "", false
}

// CategoryForMimetype returns the icon category for a MIME type string.
// Exact rules are tried first in declared order, then "type/*" wildcard
// rules matched on the type prefix alone. Any ";charset=..." parameter
// is ignored.
func CategoryForMimetype(mime string) (category string, ok bool) {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	for _, rule := range MimetypeIcons {
		if rule.pattern == mime {
			return rule.category, true
		}
	}

	class, _, _ := strings.Cut(mime, "/")
	for _, rule := range MimetypeIcons {
		if prefix, isWildcard := strings.CutSuffix(rule.pattern, "/*"); isWildcard && prefix == class {
			return rule.category, true
		}
	}
	return "", false
}

// IconForMode returns the icon for a stat mode's file-type bits.
func IconForMode(mode fs.FileMode) string {
	return StatIcons.Get(mode.Type())
}

// IconFor picks exactly one display icon for a directory entry.
//
// The file-type bits from the (following) stat are authoritative for
// everything that isn't a regular file: sockets, devices, fifos and
// directories never consult the content heuristics. Regular files go
// through extension lookup, then MIME sniffing, then the default
// category. A path that cannot be statted at all gets the error icon; a
// dangling symlink keeps the symlink icon.
func IconFor(e *entry.PathEntry) string {
	info, err := e.Stat(true)
	if err != nil {
		if e.IsSymlink() {
			return StatIcons.Get(fs.ModeSymlink)
		}
		return LSIcons.Get("error")
	}

	if typ := info.Mode().Type(); typ != 0 {
		return StatIcons.Get(typ)
	}

	// os.path.splitext semantics: a leading dot alone is not an extension.
	ext := filepath.Ext(e.Name)
	if ext == e.Name {
		ext = ""
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		if category, ok := CategoryForExtension(ext); ok {
			return LSIcons.Get(category)
		}
	}

	if mtype, err := mimetype.DetectFile(e.Path); err == nil {
		if category, ok := CategoryForMimetype(mtype.String()); ok {
			return LSIcons.Get(category)
		}
	}

	return LSIcons.Get("default")
}
