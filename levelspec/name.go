package levelspec

// LevelName selects one of the three levels of a LevelSpec.
type LevelName int

const (
	Show LevelName = iota
	Sequence
	Shot
)

// Levels lists every level, outermost first.
var Levels = []LevelName{Show, Sequence, Shot}

func (n LevelName) String() string {
	switch n {
	case Show:
		return "show"
	case Sequence:
		return "sequence"
	case Shot:
		return "shot"
	default:
		return "unknown"
	}
}
