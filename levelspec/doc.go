// Package levelspec parses and models levelspecs, the dotted
// SHOW.SEQUENCE.SHOT names used to address the show/sequence/shot hierarchy
// of a production.
//
// # Notation
//
//	DEV01             show
//	DEV01.RD          sequence RD of show DEV01
//	DEV01.RD.0001     shot 0001 of sequence RD
//	DEV01.ASSETDEV.FOOBAR
//	                  shots under the ASSETDEV sequence are alphanumeric
//	DEV01.%.0001      % matches any value at its level
//	.RD.0001          an elided level is relative: it is filled in from
//	..0001            context by RelToAbs
//	DEV01.RD.
//
// Shows and sequences are a letter followed by letters and digits. Shots are
// digits, except after the ASSETDEV sequence where they are named like
// sequences. A wildcard is a whole level: DEV01.RD.00% is not a levelspec.
//
// # Case modes
//
// Strict, the default, accepts uppercase letters only. Relaxed accepts
// either case and recognizes the ASSETDEV keyword in any case. The mode is
// chosen per call:
//
//	ls, err := levelspec.Parse("dev01.rd.0001", levelspec.WithCaseMode(levelspec.Relaxed))
//	ls = ls.Upper() // DEV01.RD.0001
//
// # Tokens
//
// Each level is a Token of kind Term, Wildcard or Relative. Text converts to
// tokens with NewToken: "" is Relative, "%" is Wildcard and everything else
// is a Term.
//
// # Relative levelspecs
//
// RelToAbs replaces relative levels using a Resolver:
//
//	abs, err := levelspec.MustParse("..0001").RelToAbs(levelspec.ResolverFunc(
//		func(name levelspec.LevelName) (string, bool) {
//			switch name {
//			case levelspec.Show:
//				return "DEV01", true
//			case levelspec.Sequence:
//				return "RD", true
//			}
//			return "", false
//		}))
//	// abs.String() == "DEV01.RD.0001"
//
// All functions in this package are pure and safe for concurrent use.
package levelspec
