package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Axel-Naumann/coffeetable/types"
)

// commentPrefix marks a roster line that is skipped.
const commentPrefix = "#"

// ParseParticipants reads one name per line from r.
//
// Names are trimmed; empty lines and lines starting with "#" (after trimming)
// are skipped. Duplicates are kept; the roster owner is responsible for
// unique names.
//
// Parameters:
//   - r: Roster text
//
// Returns:
//   - []string: Names in file order
//   - error: Read error
func ParseParticipants(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read participants: %w", err)
	}

	return NormalizeNames(lines), nil
}

// NormalizeNames applies the roster rules to names given one per entry.
//
// Entries are trimmed; entries that are empty or start with "#" after trimming
// are dropped. The input slice is not modified.
//
// Example:
//
//	names := source.NormalizeNames(os.Args[1:])
//	src := source.NewStatic(names)
func NormalizeNames(entries []string) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry)
		if name == "" || strings.HasPrefix(name, commentPrefix) {
			continue
		}
		names = append(names, name)
	}

	return names
}

// Text implements a participant source backed by roster text.
type Text struct {
	static *Static
}

var _ types.ParticipantSource = (*Text)(nil)

// NewText parses text once and serves the resulting names.
func NewText(text string) (*Text, error) {
	names, err := ParseParticipants(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	return &Text{static: NewStatic(names)}, nil
}

// ListParticipants returns the parsed names.
func (t *Text) ListParticipants(ctx context.Context) ([]string, error) {
	return t.static.ListParticipants(ctx)
}

// File implements a participant source that re-reads a roster file on every call.
type File struct {
	path string
}

var _ types.ParticipantSource = (*File)(nil)

// NewFile creates a source reading the roster at path.
//
// The file is not opened until ListParticipants is called, so edits between
// events are picked up without restarting.
func NewFile(path string) *File {
	return &File{path: path}
}

// ListParticipants reads and parses the roster file.
func (f *File) ListParticipants(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open participants file: %w", err)
	}
	defer file.Close()

	return ParseParticipants(file)
}
