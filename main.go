package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xlsd/internal/listing"
	"xlsd/internal/render"
	"xlsd/internal/sorting"
	"xlsd/internal/tui"
	"xlsd/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Version is the released version of xlsd.
const Version = "0.2.0"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "cafehaine",
		Repository: "xlsd",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/cafehaine/xlsd/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xlsd [options] [directory]\n\n")
		fmt.Fprintf(os.Stderr, "xlsd is an ls with icons.\n")
		fmt.Fprintf(os.Stderr, "Entries are classified by file type, extension and content, and each\n")
		fmt.Fprintf(os.Stderr, "gets a fixed-width icon so the columns always line up.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSort methods: %s\n", strings.Join(sorting.Names(), ", "))
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xlsd                    # List the current directory\n")
		fmt.Fprintf(os.Stderr, "  xlsd -l ~/Downloads     # Long listing with owner and size\n")
		fmt.Fprintf(os.Stderr, "  xlsd -s alphabetical    # Pick a sort method\n")
		fmt.Fprintf(os.Stderr, "  xlsd --tui              # Browse directories interactively\n")
	}

	sortFlag := pflag.StringP("sort", "s", "directories_first", "Sort method for the listing")
	longFlag := pflag.BoolP("long", "l", false, "Long format: mode, owner, group, size")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the listing as JSON")
	tuiFlag := pflag.BoolP("tui", "t", false, "Start TUI mode (interactive browser)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("xlsd version %s\n", Version)
		return
	}

	if *updateFlag {
		checkUpdate(Version)
		return
	}

	dir := "."
	if pflag.NArg() > 0 {
		dir = expandTilde(pflag.Arg(0))
	}

	if *webFlag {
		web.StartServer(dir, *sortFlag)
		return
	}

	if *tuiFlag {
		runTuiMode(dir, *sortFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(dir, *sortFlag)
		return
	}

	runListMode(dir, *sortFlag, *longFlag)
}

func runListMode(dir, sortMethod string, long bool) {
	items, err := listing.List(dir, sortMethod)
	if err != nil {
		fail(err)
	}

	if long {
		render.Long(os.Stdout, items)
	} else {
		render.Short(os.Stdout, items)
	}
}

func runJsonMode(dir, sortMethod string) {
	items, err := listing.List(dir, sortMethod)
	if err != nil {
		fail(err)
	}

	type row struct {
		Name    string    `json:"name"`
		Path    string    `json:"path"`
		Icon    string    `json:"icon"`
		Size    int64     `json:"size,omitempty"`
		Mode    string    `json:"mode,omitempty"`
		ModTime time.Time `json:"mtime,omitzero"`
		Target  string    `json:"target,omitempty"`
		Error   string    `json:"error,omitempty"`
	}

	rows := make([]row, 0, len(items))
	for _, item := range items {
		r := row{
			Name:   item.Entry.Name,
			Path:   item.Entry.Path,
			Icon:   strings.TrimSpace(item.Icon),
			Target: item.Entry.Target(),
		}
		if item.Err != nil {
			r.Error = item.Err.Error()
		} else {
			r.Size = item.Info.Size()
			r.Mode = item.Info.Mode().String()
			r.ModTime = item.Info.ModTime()
		}
		rows = append(rows, r)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(rows)
}

func runTuiMode(dir, sortMethod string) {
	m := tui.InitialModel(dir, sortMethod)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// fail reports the error and exits, keeping "I don't know how to sort"
// visibly apart from "I couldn't read the directory".
func fail(err error) {
	if errors.Is(err, sorting.ErrUnknownStrategy) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available sort methods: %s\n", strings.Join(sorting.Names(), ", "))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
