// Package listfile reads levelspec list files: one levelspec per line, with
// blank lines and lines starting with # ignored.
package listfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/levelspec/levelspec"
)

// Comment starts a comment line.
const Comment = "#"

// Entry is one levelspec line. Err is set when Text does not parse.
type Entry struct {
	Line   int // 1-based
	Column int // 0-based byte offset of Text within the line
	Text   string
	Spec   levelspec.LevelSpec
	Err    error
}

// End returns the byte offset just past Text.
func (e Entry) End() int {
	return e.Column + len(e.Text)
}

// Parse parses every levelspec line of text.
func Parse(text string, opts ...levelspec.Option) []Entry {
	entries, _ := Read(strings.NewReader(text), opts...)
	return entries
}

// Read parses every levelspec line read from r.
func Read(r io.Reader, opts ...levelspec.Option) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if entry, ok := parseLine(n, scanner.Text(), opts); ok {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read: %w", err)
	}
	return entries, nil
}

// ReadFile parses every levelspec line of the file at path.
func ReadFile(path string, opts ...levelspec.Option) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opts...)
}

// Errors returns the entries that failed to parse.
func Errors(entries []Entry) []Entry {
	var failed []Entry
	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}

// At returns the entry on line n.
func At(entries []Entry, n int) (Entry, bool) {
	for _, e := range entries {
		if e.Line == n {
			return e, true
		}
	}
	return Entry{}, false
}

func parseLine(n int, line string, opts []levelspec.Option) (Entry, bool) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, Comment) {
		return Entry{}, false
	}
	entry := Entry{
		Line:   n,
		Column: strings.Index(line, text),
		Text:   text,
	}
	entry.Spec, entry.Err = levelspec.Parse(text, opts...)
	return entry, true
}
