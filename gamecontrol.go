package hive

// GameControl enumerates the non-move messages two players exchange around
// a game: offers and responses for aborting, drawing, resigning, and
// taking a move back. Most of these are purely advisory — recognized by
// the engine but with no effect on board state — and exist so a server or
// client built on this package has a shared vocabulary for them. Only
// Resign and DrawAccept are engine-observable: see State.ApplyControl.
type GameControl uint8

const (
	AbortAccept GameControl = iota
	AbortOffer
	AbortReject
	DrawAccept
	DrawOffer
	DrawReject
	Resign
	TakebackAccept
	TakebackOffer
	TakebackReject
)

func (g GameControl) String() string {
	switch g {
	case AbortAccept:
		return "Abort Accept"
	case AbortOffer:
		return "Abort"
	case AbortReject:
		return "Abort Reject"
	case DrawAccept:
		return "Draw Accept"
	case DrawOffer:
		return "Draw"
	case DrawReject:
		return "Draw Reject"
	case Resign:
		return "Resign"
	case TakebackAccept:
		return "Takeback Accept"
	case TakebackOffer:
		return "Takeback"
	case TakebackReject:
		return "Takeback Reject"
	default:
		return "Unknown"
	}
}

// GameControlFromString parses the text forms produced by String.
func GameControlFromString(s string) (GameControl, error) {
	switch s {
	case "Abort Accept":
		return AbortAccept, nil
	case "Abort":
		return AbortOffer, nil
	case "Abort Reject":
		return AbortReject, nil
	case "Draw Accept":
		return DrawAccept, nil
	case "Draw":
		return DrawOffer, nil
	case "Draw Reject":
		return DrawReject, nil
	case "Resign":
		return Resign, nil
	case "Takeback Accept":
		return TakebackAccept, nil
	case "Takeback":
		return TakebackOffer, nil
	case "Takeback Reject":
		return TakebackReject, nil
	default:
		return 0, &ParseError{Found: s, Kind: "game control string"}
	}
}
