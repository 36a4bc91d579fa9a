package levelspec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  LevelSpec
	}{
		{"DEV01", LevelSpec{show: NewToken("DEV01"), depth: Show}},
		{"DEV01.RD", LevelSpec{show: NewToken("DEV01"), sequence: NewToken("RD"), depth: Sequence}},
		{"DEV01.RD.0001", LevelSpec{show: NewToken("DEV01"), sequence: NewToken("RD"), shot: NewToken("0001"), depth: Shot}},
		{"DEV01.RD.%", LevelSpec{show: NewToken("DEV01"), sequence: NewToken("RD"), shot: WildcardToken(), depth: Shot}},
		{".RD", LevelSpec{sequence: NewToken("RD"), depth: Sequence}},
		{".RD.0001", LevelSpec{sequence: NewToken("RD"), shot: NewToken("0001"), depth: Shot}},
		{".RD.", LevelSpec{sequence: NewToken("RD"), depth: Shot}},
		{"..9999", LevelSpec{shot: NewToken("9999"), depth: Shot}},
		{"%", LevelSpec{show: WildcardToken(), depth: Show}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseLiteralCases(t *testing.T) {
	ls := MustParse("DEV01.RD.0001")
	if got := ls.Show(); got != NewToken("DEV01") {
		t.Errorf("Show = %v, want DEV01", got)
	}
	if got, ok := ls.Sequence(); !ok || got != NewToken("RD") {
		t.Errorf("Sequence = %v, %v, want RD, true", got, ok)
	}
	if got, ok := ls.Shot(); !ok || got != NewToken("0001") {
		t.Errorf("Shot = %v, %v, want 0001, true", got, ok)
	}

	ls = MustParse("DEV01.ASSETDEV.FOOBAR")
	if got, _ := ls.Shot(); got != NewToken("FOOBAR") {
		t.Errorf("ASSETDEV shot = %v, want FOOBAR", got)
	}

	for _, input := range []string{"DEV01.RD.00%", "DEV_01"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}

	ls = MustParse(".RD.")
	if diff := cmp.Diff(toks("", "RD", ""), ls.Tokens()); diff != "" {
		t.Errorf(".RD. tokens mismatch (-want +got):\n%s", diff)
	}

	ls = MustParse("%")
	if !ls.Show().IsWildcard() {
		t.Errorf("Show = %v, want wildcard", ls.Show())
	}
	if ls.IsConcrete() {
		t.Error("IsConcrete() = true for %")
	}
}

func TestParseWithCaseMode(t *testing.T) {
	if _, err := Parse("dev01"); err == nil {
		t.Error("Parse(dev01) succeeded in strict mode")
	}
	ls, err := Parse("dev01.rd.0001", WithCaseMode(Relaxed))
	if err != nil {
		t.Fatalf("Parse relaxed: %v", err)
	}
	if ls.String() != "dev01.rd.0001" {
		t.Errorf("String = %q, want dev01.rd.0001", ls.String())
	}
	if got := ls.Upper(); !got.Equal(FromShot("DEV01", "RD", "0001")) {
		t.Errorf("Upper = %v, want DEV01.RD.0001", got)
	}
}

func TestParseShowProperty(t *testing.T) {
	tests := []struct {
		mode  CaseMode
		shows []string
	}{
		{Strict, []string{"A", "DEV01", "X9", "ABC123DEF", "%"}},
		{Relaxed, []string{"a", "dev01", "Dev01", "x9Y", "%"}},
	}

	for _, tt := range tests {
		for _, show := range tt.shows {
			t.Run(tt.mode.String()+"/"+show, func(t *testing.T) {
				ls, err := Parse(show, WithCaseMode(tt.mode))
				if err != nil {
					t.Fatalf("Parse(%q): %v", show, err)
				}
				if ls.Show() != NewToken(show) {
					t.Errorf("Show = %v, want %v", ls.Show(), show)
				}
				if _, ok := ls.Sequence(); ok {
					t.Error("Sequence present")
				}
				if _, ok := ls.Shot(); ok {
					t.Error("Shot present")
				}
			})
		}
	}
}

func TestRoundTrip(t *testing.T) {
	specs := []LevelSpec{
		FromShow("DEV01"),
		FromSequence("DEV01", "RD"),
		FromShot("DEV01", "RD", "0001"),
		FromShot("DEV01", "ASSETDEV", "FOOBAR"),
		FromShot("DEV01", "ASSETDEV", "0001"),
		FromShot("A", "B", "0"),
	}

	for _, ls := range specs {
		t.Run(ls.String(), func(t *testing.T) {
			got, err := Parse(ls.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", ls.String(), err)
			}
			if !got.Equal(ls) {
				t.Errorf("Parse(%q) = %#v, want %#v", ls.String(), got, ls)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []string{
		"DEV01", "DEV01.RD", "DEV01.RD.0001", "DEV01.%.0001", ".RD", ".RD.", "..0001", "DEV01..", "DEV01.",
	}
	for _, input := range tests {
		if got := MustParse(input).String(); got != input {
			t.Errorf("MustParse(%q).String() = %q", input, got)
		}
	}
}

func TestFromParts(t *testing.T) {
	tests := []struct {
		name string
		got  LevelSpec
		want []Token
	}{
		{"show strict", FromShow("dev01"), toks("DEV01")},
		{"show relaxed", FromShow("dev01", WithCaseMode(Relaxed)), toks("dev01")},
		{"sequence strict", FromSequence("dev01", "rd"), toks("DEV01", "RD")},
		{"sequence relaxed", FromSequence("dev01", "rd", WithCaseMode(Relaxed)), toks("dev01", "rd")},
		{"shot strict", FromShot("dev01", "rd", "0001"), toks("DEV01", "RD", "0001")},
		{"shot relaxed", FromShot("dev01", "rd", "0001", WithCaseMode(Relaxed)), toks("dev01", "rd", "0001")},
		{"wildcard", FromShot("dev01", "%", "0001"), toks("DEV01", "%", "0001")},
		{"relative", FromShot("", "rd", ""), toks("", "RD", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Tokens()); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNew(t *testing.T) {
	ls, err := New(toks("DEV01", "RD")...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !ls.Equal(FromSequence("DEV01", "RD")) {
		t.Errorf("New = %v, want DEV01.RD", ls)
	}

	for _, n := range []int{0, 4} {
		if _, err := New(make([]Token, n)...); err == nil {
			t.Errorf("New with %d tokens succeeded", n)
		}
	}
}

func TestFromTokensPanicsOnBadCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("fromTokens did not panic")
		}
	}()
	fromTokens(make([]Token, 4))
}

func TestAccessors(t *testing.T) {
	show := FromShow("DEV01")
	if show.Depth() != Show {
		t.Errorf("Depth = %v, want show", show.Depth())
	}
	if _, ok := show.Sequence(); ok {
		t.Error("show has a sequence")
	}
	if _, ok := show.Level(Shot); ok {
		t.Error("show has a shot")
	}

	shot := FromShot("DEV01", "RD", "0001")
	if shot.Depth() != Shot {
		t.Errorf("Depth = %v, want shot", shot.Depth())
	}
	for i, name := range Levels {
		tok, ok := shot.Level(name)
		if !ok || tok != shot.Tokens()[i] {
			t.Errorf("Level(%v) = %v, %v", name, tok, ok)
		}
	}
	if _, ok := shot.Level(LevelName(5)); ok {
		t.Error("Level(5) present")
	}
}

func TestUpper(t *testing.T) {
	ls := MustParse("dev01.%.", WithCaseMode(Relaxed))
	once := ls.Upper()
	twice := once.Upper()
	if !once.Equal(twice) {
		t.Errorf("Upper not idempotent: %v then %v", once, twice)
	}
	if diff := cmp.Diff(toks("DEV01", "%", ""), once.Tokens()); diff != "" {
		t.Errorf("Upper tokens mismatch (-want +got):\n%s", diff)
	}
	if ls.String() != "dev01.%." {
		t.Errorf("Upper mutated its receiver: %v", ls)
	}

	ls.SetUpper()
	if !ls.Equal(once) {
		t.Errorf("SetUpper = %v, want %v", ls, once)
	}
}

func TestIsConcrete(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"DEV01.RD.0001", true},
		{".RD.0001", true},
		{"..0001", true},
		{"DEV01..", true},
		{"DEV01", true},
		{"%.RD.0001", false},
		{"DEV01.%.0001", false},
		{"DEV01.RD.%", false},
		{"..%", false},
		{"%", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).IsConcrete(); got != tt.want {
				t.Errorf("IsConcrete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"DEV01.RD.0001", true},
		{"DEV01.%.0001", true},
		{".RD.0001", false},
		{"DEV01.RD.", false},
		{"DEV01.", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).IsAbsolute(); got != tt.want {
				t.Errorf("IsAbsolute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern   string
		candidate string
		want      bool
	}{
		{"DEV01.%.0001", "DEV01.RD.0001", true},
		{"DEV01.%.0001", "DEV01.RD.0002", false},
		{"DEV01.%.0001", "DEV01.RD", false},
		{"%", "DEV02", true},
		{"%", "DEV02.RD", false},
		{"%.%.%", "DEV01.ASSETDEV.FOOBAR", true},
		{"DEV01.RD.0001", "DEV01.RD.0001", true},
		{"DEV01.RD", "DEV01.AB", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"~"+tt.candidate, func(t *testing.T) {
			got := MustParse(tt.pattern).Matches(MustParse(tt.candidate))
			if got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("DEV_01")
}

func TestParseReturnsParseError(t *testing.T) {
	_, err := Parse("DEV01.RD.00%")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Input != "DEV01.RD.00%" {
		t.Errorf("Input = %q", perr.Input)
	}
}
