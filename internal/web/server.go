package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"xlsd/internal/listing"
	"xlsd/internal/sorting"
)

// lsRow is the JSON shape of one listing entry.
type lsRow struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Icon    string    `json:"icon"`
	IsDir   bool      `json:"is_dir"`
	Size    int64     `json:"size,omitempty"`
	Mode    string    `json:"mode,omitempty"`
	ModTime time.Time `json:"mtime,omitzero"`
	Target  string    `json:"target,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// defaults supplied by the CLI layer, used when query params are absent.
var (
	defaultDir  = "."
	defaultSort = "directories_first"
)

// StartServer starts the web server on the default port 8080.
func StartServer(dir, sortMethod string) {
	defaultDir = dir
	defaultSort = sortMethod

	mux := http.NewServeMux()

	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/api/ls", handleLs)
	mux.HandleFunc("/api/sorts", handleSorts)

	port := "8080"
	fmt.Printf("Starting xlsd web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s in your browser.\n", port)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// handleLs lists a directory: /api/ls?path=DIR&sort=METHOD
func handleLs(w http.ResponseWriter, r *http.Request) {
	dir := r.URL.Query().Get("path")
	if dir == "" {
		dir = defaultDir
	}
	sortMethod := r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = defaultSort
	}

	items, err := listing.List(dir, sortMethod)
	if err != nil {
		// Bad sort name is the client's mistake, an unreadable
		// directory is not.
		status := http.StatusInternalServerError
		if errors.Is(err, sorting.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		} else if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	rows := make([]lsRow, 0, len(items))
	for _, item := range items {
		row := lsRow{
			Name:   item.Entry.Name,
			Path:   item.Entry.Path,
			Icon:   strings.TrimSpace(item.Icon),
			Target: item.Entry.Target(),
		}
		if isDir, err := item.Entry.IsDir(true); err == nil {
			row.IsDir = isDir
		}
		if item.Err != nil {
			row.Error = item.Err.Error()
		} else {
			row.Size = item.Info.Size()
			row.Mode = item.Info.Mode().String()
			row.ModTime = item.Info.ModTime()
		}
		rows = append(rows, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func handleSorts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sorting.Names())
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>xlsd</title>
<style>
body { font-family: monospace; margin: 2em; }
li { list-style: none; line-height: 1.6; }
a { text-decoration: none; color: inherit; }
.target { color: teal; }
</style></head>
<body>
<h1 id="dir"></h1>
<ul id="list"></ul>
<script>
async function ls(path) {
  const res = await fetch('/api/ls?path=' + encodeURIComponent(path));
  if (!res.ok) { document.getElementById('list').textContent = await res.text(); return; }
  const rows = await res.json();
  document.getElementById('dir').textContent = path;
  const list = document.getElementById('list');
  list.innerHTML = '';
  for (const row of rows) {
    const li = document.createElement('li');
    const label = row.icon + ' ' + row.name + (row.target ? ' → ' + row.target : '');
    if (row.is_dir) {
      const a = document.createElement('a');
      a.href = '#';
      a.onclick = () => { ls(row.path); return false; };
      a.textContent = label;
      li.appendChild(a);
    } else {
      li.textContent = label;
    }
    list.appendChild(li);
  }
}
ls('.');
</script>
</body>
</html>`
