package levelspec

// Resolver supplies values for relative levels.
type Resolver interface {
	// Resolve returns the value for level name, or false if it has none.
	Resolve(name LevelName) (string, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name LevelName) (string, bool)

func (f ResolverFunc) Resolve(name LevelName) (string, bool) {
	return f(name)
}

// RelToAbs returns a copy of ls with every relative level replaced by the
// value r supplies for it. r is consulted once per relative level, show
// first. Levels that are not relative, wildcards included, are kept.
func (ls LevelSpec) RelToAbs(r Resolver) (LevelSpec, error) {
	out := ls
	slots := []*Token{&out.show, &out.sequence, &out.shot}
	for _, name := range Levels[:ls.depth+1] {
		slot := slots[name]
		if !slot.IsRelative() {
			continue
		}
		value, ok := r.Resolve(name)
		if !ok {
			return LevelSpec{}, &ResolveError{Level: name, Err: ErrUnresolved}
		}
		tok := NewToken(value)
		if tok.IsRelative() {
			return LevelSpec{}, &ResolveError{Level: name, Value: value, Err: ErrStillRelative}
		}
		*slot = tok
	}
	return out, nil
}
