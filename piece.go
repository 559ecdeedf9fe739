package hive

import "fmt"

// Piece is a bug of a given color, disambiguated by an ordinal when its bug
// kind can have multiples. Ordinal is 0 for unique bugs (Queen, Ladybug,
// Mosquito, Pillbug); otherwise it runs 1..3.
type Piece struct {
	Bug     Bug
	Color   Color
	Ordinal int8
}

// NewPiece builds a piece. Ordinal is ignored (forced to 0) for bug kinds
// that never carry one.
func NewPiece(bug Bug, color Color, ordinal int8) Piece {
	if !bug.hasOrdinal() {
		ordinal = 0
	}
	return Piece{Bug: bug, Color: color, Ordinal: ordinal}
}

// String renders the piece token: color letter, bug letter, ordinal digit
// when present.
func (p Piece) String() string {
	if p.Bug.hasOrdinal() {
		return fmt.Sprintf("%s%c%d", p.Color, p.Bug.Letter(), p.Ordinal)
	}
	return fmt.Sprintf("%s%c", p.Color, p.Bug.Letter())
}

// ParsePiece parses a piece token of the form <color><bug><ordinal?>.
func ParsePiece(s string) (Piece, error) {
	if len(s) < 2 {
		return Piece{}, &ParseError{Found: s, Kind: "piece"}
	}
	color, err := ColorFromString(s[0:1])
	if err != nil {
		return Piece{}, &ParseError{Found: s, Kind: "piece"}
	}
	bug, err := BugFromLetter(s[1])
	if err != nil {
		return Piece{}, &ParseError{Found: s, Kind: "piece"}
	}
	var ordinal int8
	switch {
	case len(s) == 2:
		ordinal = 0
	case len(s) == 3 && s[2] >= '0' && s[2] <= '9':
		ordinal = int8(s[2] - '0')
	default:
		return Piece{}, &ParseError{Found: s, Kind: "piece"}
	}
	return NewPiece(bug, color, ordinal), nil
}
