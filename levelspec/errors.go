package levelspec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved is reported when a resolver has no value for a relative level.
	ErrUnresolved = errors.New("no value for relative level")
	// ErrStillRelative is reported when a resolver answers with an empty value.
	ErrStillRelative = errors.New("resolved value is relative")
)

// ParseError reports input that matches no levelspec alternative.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse levelspec for %q", e.Input)
}

// ResolveError reports a relative level that could not be made absolute.
type ResolveError struct {
	Level LevelName
	Value string
	Err   error
}

func (e *ResolveError) Error() string {
	if errors.Is(e.Err, ErrStillRelative) {
		return fmt.Sprintf("resolve %s: %v: %q", e.Level, e.Err, e.Value)
	}
	return fmt.Sprintf("resolve %s: %v", e.Level, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
