package hive

import "fmt"

// Status describes where a game stands: not yet started, in progress, or
// finished with a recorded Result.
type Status uint8

const (
	NotStarted Status = iota
	InProgress
	Finished
)

// Result is only meaningful once Status is Finished.
type Result uint8

const (
	Unknown Result = iota
	WinWhite
	WinBlack
	Draw
)

func (r Result) String() string {
	switch r {
	case WinWhite:
		return "White won"
	case WinBlack:
		return "Black won"
	case Draw:
		return "It's a draw"
	default:
		return "Unknown"
	}
}

// ActionKind discriminates the four ways a turn can be played.
type ActionKind uint8

const (
	ActionPlace ActionKind = iota
	ActionMove
	ActionThrow
	ActionPass
)

// Action is one legal turn: a placement of a new piece, a move of one
// already on the board, a pillbug throw of a neighbor, or a pass.
type Action struct {
	Kind   ActionKind
	Piece  Piece    // the piece placed, moved, or thrown
	Actor  Piece    // the pillbug (or mosquito) performing a throw; zero otherwise
	From   Position // unused for ActionPlace
	To     Position // unused for ActionPass
}

// State is the full game state machine: the board, the turn counter, the
// game type, and the terminal status once the game has ended.
type State struct {
	Board    *Board
	GameType GameType
	Turn     int // 0-indexed ply count; White moves on even plies
	status   Status
	result   Result
	history  History

	// lastWasShutout records whether the most recently completed ply was an
	// automatic shutout pass, so FromHistory can recognize the matching
	// "<color> pass" history line as already having been applied rather
	// than replaying it a second time.
	lastWasShutout bool
}

// NewState starts a fresh game of the given type.
func NewState(gt GameType) *State {
	return &State{
		Board:    NewBoard(),
		GameType: gt,
		Turn:     0,
		status:   NotStarted,
		history:  History{GameType: gt},
	}
}

// Status reports the game's current status.
func (s *State) Status() Status { return s.status }

// Result reports the terminal result; only meaningful once Status is
// Finished.
func (s *State) Result() Result { return s.result }

// History returns the turn-by-turn record played so far.
func (s *State) History() History { return s.history }

// LastWasShutout reports whether the ply just completed was an automatic
// shutout pass: the side to move had no legal action but pass, and the
// engine played it without the caller submitting anything.
func (s *State) LastWasShutout() bool { return s.lastWasShutout }

// ToMove returns the color whose turn it is.
func (s *State) ToMove() Color {
	if s.Turn%2 == 0 {
		return White
	}
	return Black
}

// LegalActions enumerates every action ToMove may legally play this turn,
// including a pass whenever nothing else is legal (a shutout).
func (s *State) LegalActions() []Action {
	if s.status == Finished {
		return nil
	}
	color := s.ToMove()
	var actions []Action

	queenForced := s.Board.QueenRequired(s.Turn, color)
	for bug, count := range s.Board.Reserve(color, s.GameType) {
		if count <= 0 {
			continue
		}
		if queenForced && bug != Queen {
			continue
		}
		if bug == Queen && s.Turn < 2 {
			// either color's first placement may not be the queen
			continue
		}
		ordinal := s.GameType.InitialCount(bug) - count + 1
		piece := NewPiece(bug, color, ordinal)
		for _, pos := range s.Board.SpawnablePositions(color) {
			actions = append(actions, Action{Kind: ActionPlace, Piece: piece, To: pos})
		}
	}

	if !queenForced {
		for _, pos := range s.Board.PositionsForColor(color) {
			piece, _ := s.Board.Top(pos)
			if Movable(s.Board, pos) {
				for _, dest := range LegalDestinations(s.Board, pos) {
					actions = append(actions, Action{Kind: ActionMove, Piece: piece, From: pos, To: dest})
				}
			}
			for _, throw := range AvailableThrows(s.Board, pos) {
				actions = append(actions, Action{
					Kind: ActionThrow, Piece: throw.Victim, Actor: throw.Actor,
					From: throw.From, To: throw.To,
				})
			}
		}
	}

	if len(actions) == 0 {
		actions = append(actions, Action{Kind: ActionPass})
	}
	return actions
}

// ApplyAction validates and commits action, then advances the turn and
// recomputes terminal status. It returns the closed error taxonomy from
// errors.go — never a panic — on any invalid input.
func (s *State) ApplyAction(action Action) error {
	if s.status == Finished {
		return ErrGameOver
	}
	color := s.ToMove()
	legal := s.LegalActions()

	matched := false
	for _, candidate := range legal {
		if candidate == action {
			matched = true
			break
		}
	}
	if !matched {
		if len(legal) == 1 && legal[0].Kind == ActionPass && action.Kind != ActionPass {
			return ErrShutoutRequired
		}
		return s.diagnoseRejection(action, color)
	}

	switch action.Kind {
	case ActionPass:
		s.history.RecordPass(color)
	case ActionPlace:
		s.Board.Insert(action.To, action.Piece)
		pos, _ := s.Board.PositionOf(action.Piece)
		tok, _ := FormatPosition(s.Board, action.Piece, pos)
		s.history.RecordMove(action.Piece.String(), tok)
	case ActionMove:
		s.Board.MovePiece(action.Piece, action.From, action.To)
		tok, _ := FormatPosition(s.Board, action.Piece, action.To)
		s.history.RecordMove(action.Piece.String(), tok)
	case ActionThrow:
		s.Board.MovePiece(action.Piece, action.From, action.To)
		tok, _ := FormatPosition(s.Board, action.Piece, action.To)
		s.history.RecordMove(action.Piece.String(), tok)
	}

	s.status = InProgress
	s.Turn++
	s.result = s.computeResult()
	if s.result != Unknown {
		s.status = Finished
		s.lastWasShutout = false
		return nil
	}

	s.lastWasShutout = false
	if s.isShutout() {
		s.history.RecordPass(s.ToMove())
		s.Turn++
		s.lastWasShutout = true
	}
	return nil
}

// isShutout reports whether the side now to move has no legal action but
// pass.
func (s *State) isShutout() bool {
	actions := s.LegalActions()
	return len(actions) == 1 && actions[0].Kind == ActionPass
}

// diagnoseRejection turns a not-found action into the most specific
// InvalidMove it can, so callers get a Reason instead of a bare "not legal".
func (s *State) diagnoseRejection(action Action, color Color) error {
	reason := ReasonNotReachable
	switch action.Kind {
	case ActionPlace:
		if _, ok := s.Board.index[action.Piece]; ok {
			reason = ReasonWrongColor
		} else if s.Board.QueenRequired(s.Turn, color) && action.Piece.Bug != Queen {
			reason = ReasonQueenRequired
		} else if s.Turn < 2 && action.Piece.Bug == Queen {
			reason = ReasonQueenForbiddenTurn1
		} else if !s.Board.Spawnable(color, action.To) {
			reason = ReasonNotSpawnable
		} else if s.Board.Reserve(color, s.GameType)[action.Piece.Bug] <= 0 {
			reason = ReasonNoReserve
		}
	case ActionMove:
		top, ok := s.Board.Top(action.From)
		switch {
		case !ok || top != action.Piece:
			reason = ReasonWrongColor
		case s.Board.Pinned(action.From):
			reason = ReasonPinned
		case s.Board.LastMoved != nil && s.Board.LastMoved.Piece == action.Piece:
			reason = ReasonLastMovedImmobile
		case !s.Board.QueenPlayed(color):
			reason = ReasonQueenRequired
		case s.Board.Occupied(action.To) && action.Piece.Bug != Beetle && action.Piece.Bug != Mosquito:
			reason = ReasonCannotStack
		}
	case ActionThrow:
		reason = ReasonGated
	}
	return &InvalidMove{
		Piece:  action.Piece.String(),
		From:   action.From.String(),
		To:     action.To.String(),
		Turn:   s.Turn,
		Reason: reason,
	}
}

// computeResult checks both colors for a surrounded queen; a simultaneous
// surround (each color surrounds the other on the same move — only possible
// via a beetle or pillbug throw) is a draw.
func (s *State) computeResult() Result {
	whiteSurrounded := s.queenSurrounded(White)
	blackSurrounded := s.queenSurrounded(Black)
	switch {
	case whiteSurrounded && blackSurrounded:
		return Draw
	case whiteSurrounded:
		return WinBlack
	case blackSurrounded:
		return WinWhite
	default:
		return Unknown
	}
}

func (s *State) queenSurrounded(c Color) bool {
	queen := NewPiece(Queen, c, 0)
	pos, ok := s.Board.PositionOf(queen)
	if !ok {
		return false
	}
	return len(s.Board.PositionsTakenAround(pos)) == 6
}

// ApplyControl handles a GameControl message that isn't itself a move.
// Only Resign and DrawAccept change the game's status; a DrawAccept ends
// the game in a draw without checking that a DrawOffer preceded it. Every
// other control (abort/takeback negotiation, a draw offer or rejection) is
// recognized but left for the caller's own lobby logic to act on.
func (s *State) ApplyControl(control GameControl, by Color) error {
	if s.status == Finished {
		return ErrGameOver
	}
	switch control {
	case Resign:
		s.status = Finished
		if by == White {
			s.result = WinBlack
		} else {
			s.result = WinWhite
		}
		return nil
	case DrawAccept:
		s.status = Finished
		s.result = Draw
		return nil
	default:
		return nil
	}
}

// FromHistory rebuilds a State by replaying a parsed History from the
// start, validating every turn against the rules as it goes. If the
// history carries a trailing result annotation, the caller should compare
// it against the replayed State.Result() and raise ResultMismatch itself;
// FromHistory only replays moves.
//
// A pass entry immediately following a ply that itself triggered an
// automatic shutout pass (State.LastWasShutout) is the engine's own record
// of that automatic pass, already applied — it is skipped rather than
// replayed a second time, mirroring the original engine's
// last_turn == Shutout check in play_turn_from_notation.
func FromHistory(h History) (*State, error) {
	s := NewState(h.GameType)
	for i, entry := range h.Entries {
		if entry.IsPass() {
			if s.lastWasShutout {
				s.lastWasShutout = false
				continue
			}
			if err := s.ApplyAction(Action{Kind: ActionPass}); err != nil {
				return nil, fmt.Errorf("turn %d: %w", i+1, err)
			}
			continue
		}
		piece, err := ParsePiece(entry.Piece)
		if err != nil {
			return nil, err
		}
		to, err := ResolvePosition(s.Board, entry.Position)
		if err != nil {
			return nil, err
		}
		action, err := s.classifyAction(piece, to)
		if err != nil {
			return nil, err
		}
		if err := s.ApplyAction(action); err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
	}
	return s, nil
}

// classifyAction determines, from piece and its destination alone, whether
// the intended turn is a placement, a move, or a throw — the text format
// does not distinguish these, so replay must infer it from board state.
func (s *State) classifyAction(piece Piece, to Position) (Action, error) {
	if from, ok := s.Board.PositionOf(piece); ok {
		for _, pos := range s.Board.PositionsForColor(s.ToMove()) {
			for _, throw := range AvailableThrows(s.Board, pos) {
				if throw.Victim == piece && throw.To == to {
					actor, _ := s.Board.Top(pos)
					return Action{Kind: ActionThrow, Piece: piece, Actor: actor, From: throw.From, To: to}, nil
				}
			}
		}
		return Action{Kind: ActionMove, Piece: piece, From: from, To: to}, nil
	}
	return Action{Kind: ActionPlace, Piece: piece, To: to}, nil
}
