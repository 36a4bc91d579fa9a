package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/levelspec/levelspec"
)

// JSONEncoder writes each levelspec as an indented JSON object.
type JSONEncoder struct {
	w  io.Writer
	ls levelspec.LevelSpec
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(ls levelspec.LevelSpec) error {
	e.ls = ls
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(e.buildData(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type jsonLevelSpec struct {
	LevelSpec string     `json:"levelspec"`
	Depth     string     `json:"depth"`
	Show      jsonToken  `json:"show"`
	Sequence  *jsonToken `json:"sequence,omitempty"`
	Shot      *jsonToken `json:"shot,omitempty"`
	Concrete  bool       `json:"concrete"`
	Absolute  bool       `json:"absolute"`
}

type jsonToken struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

func (e *JSONEncoder) buildData() jsonLevelSpec {
	ls := e.ls
	data := jsonLevelSpec{
		LevelSpec: ls.String(),
		Depth:     ls.Depth().String(),
		Show:      buildToken(ls.Show()),
		Concrete:  ls.IsConcrete(),
		Absolute:  ls.IsAbsolute(),
	}
	if tok, ok := ls.Sequence(); ok {
		t := buildToken(tok)
		data.Sequence = &t
	}
	if tok, ok := ls.Shot(); ok {
		t := buildToken(tok)
		data.Shot = &t
	}
	return data
}

func buildToken(tok levelspec.Token) jsonToken {
	t := jsonToken{Kind: tok.Kind().String()}
	if tok.IsTerm() {
		t.Text = tok.String()
	}
	return t
}
