package shell

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/consts"
)

// History is the list of input lines, backed by a file that every entry is
// appended to as it is added. The file is trimmed to the last
// consts.HistoryLength entries when the history is closed.
type History struct {
	path    string
	file    *os.File
	entries []string

	// lines counts the lines in the file, which may exceed len(entries)
	lines int
}

// NewMemoryHistory returns a history that isn't saved anywhere.
func NewMemoryHistory() *History {
	return &History{}
}

// OpenHistory loads the history in path, creating the file (and its
// directory) when it doesn't exist. A leading "~" is expanded.
func OpenHistory(path string) (*History, error) {
	path = config.ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(path), consts.ModeDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create history directory for %s", path)
	}

	h := &History{path: path}
	if err := h.load(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.ModeHistory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open history file: %s", path)
	}

	h.file = f
	slog.Debug("Loaded history", "path", path, "entries", len(h.entries))
	return h, nil
}

// Path returns the history file, or "" for an in-memory history.
func (h *History) Path() string {
	return h.path
}

// Entries returns the history, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Add records entry and appends it to the history file.
func (h *History) Add(entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > consts.HistoryLength {
		h.entries = h.entries[len(h.entries)-consts.HistoryLength:]
	}

	if h.file == nil {
		return nil
	}

	if _, err := h.file.WriteString(entry + "\n"); err != nil {
		return errors.Wrapf(err, "failed to write history file: %s", h.path)
	}
	h.lines++

	return h.file.Sync()
}

// Close closes the history file, trimming it when it has grown past
// consts.HistoryLength entries.
func (h *History) Close() error {
	if h.file == nil {
		return nil
	}

	err := h.file.Close()
	h.file = nil
	if err != nil {
		return errors.Wrapf(err, "failed to close history file: %s", h.path)
	}

	if h.lines <= consts.HistoryLength {
		return nil
	}

	data := strings.Join(h.entries, "\n") + "\n"
	if err := os.WriteFile(h.path, []byte(data), consts.ModeHistory); err != nil {
		return errors.Wrapf(err, "failed to trim history file: %s", h.path)
	}

	return nil
}

func (h *History) load() error {
	f, err := os.Open(h.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to open history file: %s", h.path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		h.lines++
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			h.entries = append(h.entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read history file: %s", h.path)
	}

	if len(h.entries) > consts.HistoryLength {
		h.entries = h.entries[len(h.entries)-consts.HistoryLength:]
	}

	return nil
}
