// Package jsonl persists glance's open-history as JSON Lines.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry kinds.
const (
	KindFile      = "file"
	KindWorkspace = "workspace"
)

// Entry is one open event in the history file.
type Entry struct {
	Kind     string    `json:"kind"`
	Path     string    `json:"path"`
	Name     string    `json:"name,omitempty"`
	ID       string    `json:"id,omitempty"`
	OpenedAt time.Time `json:"opened_at"`
}

// History reads and appends open events in a JSONL file.
type History struct {
	path string
}

// NewHistory creates a history store backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads all entries in file order. Returns nil if the file
// doesn't exist yet.
func (h *History) Load() ([]Entry, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Append records one entry at the end of the file, creating the file
// and its directory as needed.
func (h *History) Append(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Recent returns up to limit entries of the given kind, newest first,
// deduplicated by path (the newest occurrence wins).
func (h *History) Recent(kind string, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	entries, err := h.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	recent := make([]Entry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(recent) < limit; i-- {
		e := entries[i]
		if e.Kind != kind || seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		recent = append(recent, e)
	}

	return recent, nil
}
