package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/levelspec/levelspec"
)

// LineEncoder writes one tab separated record per levelspec:
//
//	levelspec depth show sequence shot flags
//
// Missing levels are written as "-", relative levels as "~". flags is a comma
// separated subset of concrete and absolute, or "-".
type LineEncoder struct {
	w  io.Writer
	ls levelspec.LevelSpec
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(ls levelspec.LevelSpec) error {
	e.ls = ls
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	ls := e.ls
	fields := []string{ls.String(), ls.Depth().String()}
	for _, name := range levelspec.Levels {
		fields = append(fields, lineLevel(ls, name))
	}
	fields = append(fields, lineFlags(ls))
	return []byte(fmt.Sprintln(strings.Join(fields, "\t"))), nil
}

func lineLevel(ls levelspec.LevelSpec, name levelspec.LevelName) string {
	tok, ok := ls.Level(name)
	switch {
	case !ok:
		return "-"
	case tok.IsRelative():
		return "~"
	default:
		return tok.String()
	}
}

func lineFlags(ls levelspec.LevelSpec) string {
	var flags []string
	if ls.IsConcrete() {
		flags = append(flags, "concrete")
	}
	if ls.IsAbsolute() {
		flags = append(flags, "absolute")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
