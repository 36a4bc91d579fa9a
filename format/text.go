package format

import (
	"io"

	"github.com/dhamidi/levelspec/levelspec"
)

// TextEncoder writes the dotted form of each levelspec on its own line.
type TextEncoder struct {
	w  io.Writer
	ls levelspec.LevelSpec
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(ls levelspec.LevelSpec) error {
	e.ls = ls
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.ls.String() + "\n"), nil
}
