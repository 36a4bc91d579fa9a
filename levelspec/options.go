package levelspec

import (
	"fmt"
	"strings"

	"github.com/dhamidi/levelspec/charclass"
)

// CaseMode selects which letter case the grammar accepts.
type CaseMode int

const (
	// Strict accepts uppercase names only and matches ASSETDEV exactly.
	Strict CaseMode = iota
	// Relaxed accepts either case and matches ASSETDEV case-insensitively.
	Relaxed
)

// ParseCaseMode converts "strict" or "relaxed" to a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "relaxed":
		return Relaxed, nil
	default:
		return Strict, fmt.Errorf("unknown case mode %q (expected strict or relaxed)", s)
	}
}

func (m CaseMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Relaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

func (m CaseMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CaseMode) UnmarshalText(text []byte) error {
	mode, err := ParseCaseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m CaseMode) letters() charclass.Case {
	if m == Relaxed {
		return charclass.Any
	}
	return charclass.Upper
}

type options struct {
	mode CaseMode
}

// Option configures Parse and the From* constructors.
type Option func(*options)

// WithCaseMode selects the case mode. The default is Strict.
func WithCaseMode(mode CaseMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

func buildOptions(opts []Option) options {
	o := options{mode: Strict}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
