// Package format writes levelspecs in the output formats of the levelspec
// command.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/levelspec/levelspec"
)

// Encoder writes one levelspec per call to Encode. MarshalText returns the
// encoding of the most recently encoded levelspec.
type Encoder interface {
	encoding.TextMarshaler
	Encode(ls levelspec.LevelSpec) error
}

// Names lists the formats accepted by New.
var Names = []string{"text", "line", "json"}

// New returns the encoder called name writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// write encodes through m and copies the result to w.
func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
