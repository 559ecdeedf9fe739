package hive

import "fmt"

// leftAdorner and rightAdorner map a direction to the single glyph that
// precedes (west side) or follows (east side) a reference piece token in a
// position string. Only the three directions on each side ever need an
// adorner; NW/W/SW sit to the reference piece's left, NE/E/SE to its right.
func leftAdorner(d Direction) (byte, bool) {
	switch d {
	case NW:
		return '\\', true
	case W:
		return '-', true
	case SW:
		return '/', true
	default:
		return 0, false
	}
}

func rightAdorner(d Direction) (byte, bool) {
	switch d {
	case NE:
		return '/', true
	case E:
		return '-', true
	case SE:
		return '\\', true
	default:
		return 0, false
	}
}

func directionForLeftAdorner(c byte) (Direction, bool) {
	switch c {
	case '\\':
		return NW, true
	case '-':
		return W, true
	case '/':
		return SW, true
	default:
		return 0, false
	}
}

func directionForRightAdorner(c byte) (Direction, bool) {
	switch c {
	case '/':
		return NE, true
	case '-':
		return E, true
	case '\\':
		return SE, true
	default:
		return 0, false
	}
}

// FormatPosition renders the position token for piece, which must already
// be placed at pos on b: "." if it is the game's first piece, the bare
// token of the piece now directly beneath it if it landed on a stack,
// otherwise an adorned reference to one occupied neighbor.
func FormatPosition(b *Board, piece Piece, pos Position) (string, error) {
	stack := b.stacks[pos]
	if len(stack) == 0 {
		return "", fmt.Errorf("piece %v is not placed at %v", piece, pos)
	}
	if len(stack) > 1 {
		beneath := stack[len(stack)-2]
		return beneath.String(), nil
	}
	for _, d := range AllDirections() {
		n := pos.To(d)
		ref, ok := b.Top(n)
		if !ok || ref == piece {
			continue
		}
		fromRef := n.DirectionTo(pos)
		if glyph, ok := leftAdorner(fromRef); ok {
			return fmt.Sprintf("%c%s", glyph, ref.String()), nil
		}
		if glyph, ok := rightAdorner(fromRef); ok {
			return fmt.Sprintf("%s%c", ref.String(), glyph), nil
		}
	}
	return ".", nil
}

// ResolvePosition parses a position token in the context of board b,
// returning the absolute position it names. tok is one of:
//
//	"."                 the very first placement
//	"<piece>"           stacked on top of the named piece
//	"<adorner><piece>"  the named piece's NW/W/SW neighbor
//	"<piece><adorner>"  the named piece's NE/E/SE neighbor
func ResolvePosition(b *Board, tok string) (Position, error) {
	if tok == "." {
		if !b.IsEmpty() {
			return Position{}, &ParseError{Found: tok, Kind: "position"}
		}
		return Origin, nil
	}
	if len(tok) == 0 {
		return Position{}, &ParseError{Found: tok, Kind: "position"}
	}

	if d, ok := directionForLeftAdorner(tok[0]); ok {
		ref, err := ParsePiece(tok[1:])
		if err != nil {
			return Position{}, &ParseError{Found: tok, Kind: "position"}
		}
		refPos, ok := b.PositionOf(ref)
		if !ok {
			return Position{}, &ParseError{Found: tok, Kind: "position"}
		}
		return refPos.To(d), nil
	}

	if d, ok := directionForRightAdorner(tok[len(tok)-1]); ok {
		ref, err := ParsePiece(tok[:len(tok)-1])
		if err == nil {
			if refPos, ok := b.PositionOf(ref); ok {
				return refPos.To(d), nil
			}
		}
		// fall through: the un-adorned parse below then reports the
		// token as an invalid position, since no piece token ends in an
		// adorner glyph.
	}

	ref, err := ParsePiece(tok)
	if err != nil {
		return Position{}, &ParseError{Found: tok, Kind: "position"}
	}
	refPos, ok := b.PositionOf(ref)
	if !ok {
		return Position{}, &ParseError{Found: tok, Kind: "position"}
	}
	return refPos, nil
}
