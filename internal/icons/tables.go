package icons

import "io/fs"

// Centralized icon tables for classifying directory entries.
// Loaded once at process start and treated as immutable afterward;
// Add remains available as an init-time extension point.

// StatIcons maps the file-type bits of a stat mode to an icon. Keys are
// fs.FileMode type bits (mode.Type()), with 0 standing for regular files.
var StatIcons = NewIconSet(map[fs.FileMode]string{
	fs.ModeSocket:                     "🌐",
	fs.ModeSymlink:                    "🔗",
	0:                                 "📄",
	fs.ModeDevice:                     "💾",
	fs.ModeDir:                        "📁",
	fs.ModeDevice | fs.ModeCharDevice: "🖶",
	fs.ModeNamedPipe:                  "🚿",
})

// LSIcons maps an icon category to its glyph.
var LSIcons = NewIconSet(map[string]string{
	"default":     "❔",
	"error":       "🚫",
	"folder":      "📁",
	"text":        "📄",
	"chart":       "📊",
	"music":       "🎵",
	"video":       "🎬",
	"photo":       "📷",
	"iso":         "💿",
	"compressed":  "🗜",
	"application": "⚙",
	"rich_text":   "📰",
	"stylesheet":  "🎨",
	"contacts":    "📇",
	"calendar":    "📅",
	"config":      "🔧",
	"lock":        "🔒",
	"pirate":      "🕱",
	"database":    "🗃",
	"package":     "📦",
	"mail":        "✉",
	// os
	"windows": "🍷",
	"linux":   "🐧",
	// language
	"java":    "☕",
	"python":  "🐍",
	"php":     "🐘",
	"rust":    "🦀",
	"lua":     "🌙",
	"perl":    "🧅",
	"c":       "𝐂",
	"xonsh":   "🐚",
	"haskell": "λ",
})

type mimeRule struct {
	// pattern is an exact MIME type, or "type/*" matching a whole class.
	pattern  string
	category string
}

// MimetypeIcons maps MIME types to icon categories. Order matters: the
// first matching rule wins, and exact patterns are consulted before
// wildcards regardless of position.
var MimetypeIcons = []mimeRule{
	{"inode/directory", "folder"},
	// Rich text
	{"application/pdf", "rich_text"},
	{"application/vnd.oasis.opendocument.text", "rich_text"},
	{"application/msword", "rich_text"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "rich_text"},
	{"text/html", "rich_text"},
	// Tabular data/charts
	{"application/vnd.oasis.opendocument.spreadsheet", "chart"},
	{"application/vnd.ms-excel", "chart"},
	{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "chart"},
	{"text/csv", "chart"},
	// Java
	{"application/java-archive", "java"},
	{"application/x-java-applet", "java"},
	// Misc
	{"application/x-iso9660-image", "iso"},
	{"application/zip", "compressed"},
	{"application/x-dosexec", "windows"},
	{"text/x-script.python", "python"},
	{"text/x-php", "php"},
	{"application/x-pie-executable", "linux"},
	{"text/vcard", "contacts"},
	{"text/calendar", "calendar"},
	// Generics
	{"text/*", "text"},
	{"application/*", "application"},
	{"image/*", "photo"},
	{"audio/*", "music"},
	{"video/*", "video"},
}

type extensionRule struct {
	exts     map[string]struct{}
	category string
}

// ExtensionIcons maps sets of lowercase file extensions to icon
// categories. Order matters: an extension listed in two sets resolves to
// the earlier one (e.g. "pl" is perl, not a POSIX executable).
var ExtensionIcons = []extensionRule{
	// Text
	{exts("txt", "log"), "text"},
	{exts("json", "yml", "toml", "xml", "ini", "conf", "rc", "cfg", "vbox", "vbox-prev"), "config"},
	{exts("eml"), "mail"},
	// Photo
	{exts("jpe", "jpg", "jpeg", "png", "apng", "gif", "bmp", "ico", "tif", "tiff", "tga", "webp", "xpm", "xcf", "svg"), "photo"},
	// Music
	{exts("flac", "ogg", "mp3", "wav"), "music"},
	// Video
	{exts("avi", "mp4"), "video"},
	// Rich text
	{exts("pdf", "odt", "doc", "docx", "html", "htm", "xhtm", "xhtml", "md", "rtf", "tex", "rst"), "rich_text"},
	// Tabular data/charts
	{exts("ods", "xls", "xlsx", "csv"), "chart"},
	// Programming languages
	{exts("jar", "jad", "java"), "java"},
	{exts("py", "pyc"), "python"},
	{exts("php"), "php"},
	{exts("rs", "rlib", "rmeta"), "rust"},
	{exts("lua"), "lua"},
	{exts("pl"), "perl"},
	{exts("css", "less", "colorscheme", "theme", "xsl"), "stylesheet"},
	{exts("c", "h"), "c"},
	{exts("xsh", "xonshrc"), "xonsh"},
	{exts("hs", "lhs", "hi"), "haskell"},
	// Compressed files
	{exts("zip", "7z", "rar", "gz", "xz"), "compressed"},
	// Executables
	{exts("exe", "bat", "cmd", "dll"), "windows"},
	{exts("so", "elf", "sh", "zsh", "ksh", "pl", "o"), "linux"},
	// Misc
	{exts("iso", "cue"), "iso"},
	{exts("vcard"), "contacts"},
	{exts("ics"), "calendar"},
	{exts("lock", "lck"), "lock"},
	{exts("reg"), "windows"},
	{exts("pkg", "deb", "rpm", "apk"), "package"},
	{exts("db", "sqlite", "sqlite3", "kdbx"), "database"},
	{exts("torrent"), "pirate"},
}

func exts(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
