package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader loads custom boards from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans the root and loads every board file. Files that
// fail to parse or validate are skipped with a warning; one bad board must
// not take down the rest of the catalog. Results are sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var boards []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		board, err := l.LoadFile(path)
		if err != nil {
			log.Warn("skipping invalid board file", "path", path, "error", err)
			return nil
		}
		boards = append(boards, board)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
	return boards, nil
}

// LoadFile loads a single board file.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	board, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return board, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Catalog returns the built-in boards followed by the custom boards under
// dir, if any. An empty dir, a missing directory, or a scan failure yields
// just the built-ins; custom boards shadowing a built-in ID are dropped.
func Catalog(dir string) []Layout {
	boards := Builtin()
	if dir == "" {
		return boards
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		log.Warn("could not scan custom board directory", "dir", dir, "error", err)
		return boards
	}

	seen := make(map[string]bool, len(boards))
	for _, b := range boards {
		seen[b.ID] = true
	}
	for _, b := range custom {
		if seen[b.ID] {
			log.Warn("custom board shadows an existing ID", "id", b.ID)
			continue
		}
		seen[b.ID] = true
		boards = append(boards, b)
	}
	return boards
}

// Find resolves a board ID against the catalog.
func Find(dir, id string) (Layout, error) {
	for _, b := range Catalog(dir) {
		if b.ID == id {
			return b, nil
		}
	}
	return Layout{}, fmt.Errorf("board not found: %s", id)
}
