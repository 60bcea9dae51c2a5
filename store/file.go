package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Axel-Naumann/coffeetable/types"
)

const (
	backendFile   = "file"
	fileExtension = ".json"
	fileMode      = 0o644
)

// File stores each event's history as <dir>/<event>.json.
//
// Saves write a temporary file in the same directory and rename it over the
// previous document, so a crash never leaves a half-written history behind.
type File struct {
	dir  string
	opts options
}

var _ types.HistoryStore = (*File)(nil)

// NewFile creates a file store rooted at dir.
//
// The directory is created on the first Save if it does not exist.
//
// Example:
//
//	st := store.NewFile("/var/lib/coffeetable", store.WithLogger(logger))
//	history, err := st.Load(ctx, "friday-coffee")
func NewFile(dir string, opts ...Option) *File {
	return &File{dir: dir, opts: applyOptions(opts)}
}

// Path returns the document path for event.
func (f *File) Path(event string) string {
	return filepath.Join(f.dir, event+fileExtension)
}

// Load reads and decodes the event's document. A missing file is an empty history.
func (f *File) Load(ctx context.Context, event string) (types.History, error) {
	defer f.opts.observe(backendFile, "load", time.Now())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateEvent(event); err != nil {
		return nil, err
	}

	path := f.Path(event)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f.opts.logger.Debug("no stored history", "backend", backendFile, "path", path)
		return types.History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrHistoryLoadFailed, err)
	}

	history, err := DecodeHistory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return history, nil
}

// Save encodes history and atomically replaces the event's document.
func (f *File) Save(ctx context.Context, event string, history types.History) error {
	defer f.opts.observe(backendFile, "save", time.Now())

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateEvent(event); err != nil {
		return err
	}

	data, err := EncodeHistory(history)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrHistorySaveFailed, err)
	}

	if err := f.writeAtomic(f.Path(event), data); err != nil {
		return fmt.Errorf("%w: %w", types.ErrHistorySaveFailed, err)
	}

	f.opts.logger.Debug("history saved", "backend", backendFile, "event", event, "rounds", len(history))

	return nil
}

func (f *File) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}
	// CreateTemp uses 0600; histories stay readable like a plain write would leave them.
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
