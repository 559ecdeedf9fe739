package hive

import (
	"fmt"
	"strconv"
	"strings"
)

// HistoryEntry is one played turn: either a placement/move, recorded as the
// piece token and the position token it resolved to at the time, or a pass,
// recorded as the acting color's token and the literal position "pass".
type HistoryEntry struct {
	Piece    string // the piece token, or the passing color's token for a pass
	Position string // the position token, or "pass"
}

// IsPass reports whether this entry records a passed turn.
func (e HistoryEntry) IsPass() bool {
	return e.Position == "pass"
}

// History is the ordered list of turns played so far, plus the game type
// they were played under. Mirrors the text format read and written by the
// original engine's .pgn-style history file: one "N. <piece> <position>"
// line per turn (or "N. <color> pass" for a pass), an optional trailing
// result line.
type History struct {
	GameType GameType
	Entries  []HistoryEntry
}

func (e HistoryEntry) String() string {
	return fmt.Sprintf("%s %s", e.Piece, e.Position)
}

// String renders the full history as text: a "GameType <tag>" line followed
// by one numbered line per turn.
func (h History) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GameType %s\n", h.GameType)
	for i, e := range h.Entries {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, e.String())
	}
	return sb.String()
}

// RecordMove appends a played placement/move to the history.
func (h *History) RecordMove(piece, position string) {
	h.Entries = append(h.Entries, HistoryEntry{Piece: piece, Position: position})
}

// RecordPass appends a passed turn to the history, carrying which color
// passed — the original engine's record_move(turn_color.to_string(),
// "pass") does the same, reusing the ordinary move-recording shape rather
// than a distinct annotation format.
func (h *History) RecordPass(color Color) {
	h.Entries = append(h.Entries, HistoryEntry{Piece: color.String(), Position: "pass"})
}

// ParseHistory parses the text format written by String: a leading
// "GameType <tag>" line, then one "<n>. <piece> <position>" or
// "<n>. <color> pass" line per turn. Lines reporting a final result
// ("White won", "It's a draw") are recognized and discarded; ResultMismatch
// is the caller's job to raise by comparing that reported result against
// the replayed state, not ParseHistory's.
func ParseHistory(text string) (History, error) {
	var h History
	gotType := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "GameType ") {
			gt, err := GameTypeFromString(strings.TrimSpace(strings.TrimPrefix(line, "GameType ")))
			if err != nil {
				return History{}, err
			}
			h.GameType = gt
			gotType = true
			continue
		}
		if isResultLine(line) {
			continue
		}
		rest, ok := splitTurnNumber(line)
		if !ok {
			return History{}, &ParseError{Found: line, Kind: "history line"}
		}
		fields := strings.SplitN(rest, " ", 2)
		if len(fields) != 2 {
			return History{}, &ParseError{Found: line, Kind: "history line"}
		}
		if fields[1] == "pass" {
			color, err := ColorFromString(fields[0])
			if err != nil {
				return History{}, &ParseError{Found: line, Kind: "history line"}
			}
			h.RecordPass(color)
			continue
		}
		h.RecordMove(fields[0], fields[1])
	}
	if !gotType {
		h.GameType = Base
	}
	return h, nil
}

// splitTurnNumber strips a leading "<digits>. " turn marker.
func splitTurnNumber(line string) (string, bool) {
	dot := strings.Index(line, ".")
	if dot <= 0 {
		return "", false
	}
	if _, err := strconv.Atoi(line[:dot]); err != nil {
		return "", false
	}
	return strings.TrimSpace(line[dot+1:]), true
}

func isResultLine(line string) bool {
	return strings.HasSuffix(line, "won") || line == "It's a draw"
}
