package hive

import (
	"fmt"
	"sort"
	"strings"
)

// Placement names a piece and the position of the stack it currently sits
// on top of.
type Placement struct {
	Piece    Piece
	Position Position
}

// Board maps positions to the stack of pieces occupying them. The top of
// each stack (the last element) is the visible piece; lower pieces are
// covered. Board also remembers the most recent placement made on it, used
// to forbid moving the same piece (or a pillbug's victim) on the opponent's
// very next turn.
//
// Cyclic references are avoided by keeping two disjoint value stores: the
// position->stack map, and a derived piece->position index rebuilt on every
// mutation. Pieces never hold a back-pointer to their position.
type Board struct {
	stacks    map[Position][]Piece
	index     map[Piece]Position
	LastMoved *Placement
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		stacks: make(map[Position][]Piece),
		index:  make(map[Piece]Position),
	}
}

// Clone returns a deep copy of the board. Exploring alternative futures
// (legal-action enumeration that needs to try a move and see what follows)
// always works on a clone; Board itself carries no locks or background
// state, so a clone is the only concurrency primitive the engine needs.
func (b *Board) Clone() *Board {
	nb := &Board{
		stacks: make(map[Position][]Piece, len(b.stacks)),
		index:  make(map[Piece]Position, len(b.index)),
	}
	for pos, stack := range b.stacks {
		cp := make([]Piece, len(stack))
		copy(cp, stack)
		nb.stacks[pos] = cp
	}
	for piece, pos := range b.index {
		nb.index[piece] = pos
	}
	if b.LastMoved != nil {
		lm := *b.LastMoved
		nb.LastMoved = &lm
	}
	return nb
}

// Top returns the top piece at pos, if any.
func (b *Board) Top(pos Position) (Piece, bool) {
	stack := b.stacks[pos]
	if len(stack) == 0 {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

// Level returns the stack height at pos (0 if empty).
func (b *Board) Level(pos Position) int {
	return len(b.stacks[pos])
}

// PositionOf returns the position of piece, if it has been placed.
func (b *Board) PositionOf(piece Piece) (Position, bool) {
	pos, ok := b.index[piece]
	return pos, ok
}

// IsPlaced reports whether piece has already been placed on the board.
func (b *Board) IsPlaced(piece Piece) bool {
	_, ok := b.index[piece]
	return ok
}

// Insert pushes piece onto the stack at pos and records it as the last
// moved piece.
func (b *Board) Insert(pos Position, piece Piece) {
	b.stacks[pos] = append(b.stacks[pos], piece)
	b.index[piece] = pos
	b.LastMoved = &Placement{Piece: piece, Position: pos}
}

// MovePiece relocates the top piece at from to the top of to. from must
// currently hold piece on top; otherwise MovePiece panics, since that
// indicates a bug in validation, not bad user input.
func (b *Board) MovePiece(piece Piece, from, to Position) {
	top, ok := b.Top(from)
	if !ok || top != piece {
		panic(fmt.Sprintf("tried to move %v from %v, but it is not the top piece there", piece, from))
	}
	stack := b.stacks[from]
	b.stacks[from] = stack[:len(stack)-1]
	if len(b.stacks[from]) == 0 {
		delete(b.stacks, from)
	}
	b.Insert(to, piece)
}

// Occupied reports whether any piece sits at pos.
func (b *Board) Occupied(pos Position) bool {
	return len(b.stacks[pos]) > 0
}

// IsEmpty reports whether no piece has been placed yet.
func (b *Board) IsEmpty() bool {
	return len(b.stacks) == 0
}

// Size returns the number of occupied positions.
func (b *Board) Size() int {
	return len(b.stacks)
}

// PositionsTakenAround returns the occupied neighbors of pos.
func (b *Board) PositionsTakenAround(pos Position) []Position {
	var out []Position
	for _, n := range pos.Neighbors() {
		if b.Occupied(n) {
			out = append(out, n)
		}
	}
	return out
}

// PositionsAvailableAround returns the empty neighbors of pos.
func (b *Board) PositionsAvailableAround(pos Position) []Position {
	var out []Position
	for _, n := range pos.Neighbors() {
		if !b.Occupied(n) {
			out = append(out, n)
		}
	}
	return out
}

// TopLayerNeighbors returns the top piece of every occupied neighbor of
// pos.
func (b *Board) TopLayerNeighbors(pos Position) []Piece {
	var out []Piece
	for _, n := range pos.Neighbors() {
		if p, ok := b.Top(n); ok {
			out = append(out, p)
		}
	}
	return out
}

// NeighborIsA reports whether any top-layer neighbor of pos is the given
// bug.
func (b *Board) NeighborIsA(pos Position, bug Bug) bool {
	for _, p := range b.TopLayerNeighbors(pos) {
		if p.Bug == bug {
			return true
		}
	}
	return false
}

// Gated reports whether a move from "from" to "to" is blocked at the given
// height: true iff the two common-adjacent (shoulder) positions of the edge
// both have stacks at least as tall as level. A slider (or climber) of the
// given height cannot squeeze through two stacks that tall.
func (b *Board) Gated(level int, from, to Position) bool {
	a, c := from.CommonAdjacent(to)
	return b.Level(a) >= level && b.Level(c) >= level
}

// NegativeSpace returns every empty hex adjacent to at least one occupied
// hex.
func (b *Board) NegativeSpace() []Position {
	seen := make(map[Position]bool)
	var out []Position
	for pos := range b.stacks {
		for _, n := range pos.Neighbors() {
			if b.Occupied(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// PositionsForColor returns every position whose top piece is the given
// color.
func (b *Board) PositionsForColor(c Color) []Position {
	var out []Position
	for pos, stack := range b.stacks {
		if stack[len(stack)-1].Color == c {
			out = append(out, pos)
		}
	}
	return out
}

// QueenPlayed reports whether color's queen has been placed.
func (b *Board) QueenPlayed(c Color) bool {
	_, ok := b.index[NewPiece(Queen, c, 0)]
	return ok
}

// QueenRequired reports whether it is color's fourth turn (0-based: turn 6
// for White, turn 7 for Black) and its queen is still unplaced.
func (b *Board) QueenRequired(turn int, c Color) bool {
	if turn == 6 && c == White && !b.QueenPlayed(White) {
		return true
	}
	if turn == 7 && c == Black && !b.QueenPlayed(Black) {
		return true
	}
	return false
}

// Pinned reports whether removing the top piece at pos would disconnect
// the hive. A stack more than one piece tall is never pinned: lifting its
// top piece leaves the rest of the stack still occupying (and connecting)
// that hex, so only a single-piece stack can ever disconnect the hive by
// moving away.
func (b *Board) Pinned(pos Position) bool {
	if b.Level(pos) > 1 {
		return false
	}
	if !b.Occupied(pos) {
		return false
	}
	total := len(b.stacks)
	if total <= 1 {
		return false
	}
	var seed Position
	found := false
	for p := range b.stacks {
		if p != pos {
			seed = p
			found = true
			break
		}
	}
	if !found {
		return false
	}
	visited := b.walk(seed, pos, make(map[Position]bool))
	return len(visited) < total-1
}

// walk performs an iterative flood fill over occupied positions starting at
// start, never stepping onto excluded. An explicit stack avoids the
// recursion-depth risk a naive recursive flood fill would carry on large
// boards.
func (b *Board) walk(start, excluded Position, visited map[Position]bool) map[Position]bool {
	stack := []Position{start}
	visited[start] = true
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.PositionsTakenAround(pos) {
			if n == excluded || visited[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return visited
}

// Spawnable reports whether color may place a new piece at pos: the hex
// must be empty, and — once at least two pieces are on the board — none of
// its top-layer neighbors may belong to the opposing color.
func (b *Board) Spawnable(c Color, pos Position) bool {
	if b.Occupied(pos) {
		return false
	}
	if len(b.stacks) < 2 {
		return true
	}
	for _, p := range b.TopLayerNeighbors(pos) {
		if p.Color == c.Opposite() {
			return false
		}
	}
	return true
}

// SpawnablePositions returns every position color may place a new piece on.
func (b *Board) SpawnablePositions(c Color) []Position {
	if b.IsEmpty() {
		return []Position{Origin}
	}
	var out []Position
	for _, pos := range b.NegativeSpace() {
		if b.Spawnable(c, pos) {
			out = append(out, pos)
		}
	}
	return out
}

// Reserve returns, for each bug kind, how many of color's pieces remain
// unplaced under the given game type.
func (b *Board) Reserve(c Color, gt GameType) map[Bug]int8 {
	counts := make(map[Bug]int8)
	for _, bug := range AllBugs() {
		counts[bug] = gt.InitialCount(bug)
	}
	for piece := range b.index {
		if piece.Color == c {
			counts[piece.Bug]--
		}
	}
	return counts
}

// Levels iterates every (position, piece, level, hasPieceAbove) tuple on
// the board, bottom layer first, positions in row-major order within each
// layer.
func (b *Board) Levels() []struct {
	Position Position
	Piece    Piece
	Level    int
	HasMore  bool
} {
	type entry = struct {
		Position Position
		Piece    Piece
		Level    int
		HasMore  bool
	}
	var out []entry
	maxLen := 0
	positions := make([]Position, 0, len(b.stacks))
	for pos, stack := range b.stacks {
		positions = append(positions, pos)
		if len(stack) > maxLen {
			maxLen = len(stack)
		}
	}
	positions = sortedPositions(positions)
	for lvl := 0; lvl < maxLen; lvl++ {
		for _, pos := range positions {
			stack := b.stacks[pos]
			if lvl >= len(stack) {
				continue
			}
			out = append(out, entry{Position: pos, Piece: stack[lvl], Level: lvl, HasMore: lvl+1 < len(stack)})
		}
	}
	return out
}

// bounds returns the smallest axis-aligned range containing every occupied
// position.
func (b *Board) bounds() (minX, minY, maxX, maxY int) {
	first := true
	for pos := range b.stacks {
		if first {
			minX, maxX, minY, maxY = pos.X, pos.X, pos.Y, pos.Y
			first = false
			continue
		}
		if pos.X < minX {
			minX = pos.X
		}
		if pos.X > maxX {
			maxX = pos.X
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if pos.Y > maxY {
			maxY = pos.Y
		}
	}
	return
}

// String renders a grid dump of the board: one row per y, odd rows half
// indented to show the hex offset, top piece of each stack only.
func (b *Board) String() string {
	if b.IsEmpty() {
		return ""
	}
	minX, minY, maxX, maxY := b.bounds()
	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		if y%2 != 0 {
			sb.WriteString("  ")
		}
		for x := minX; x <= maxX; x++ {
			if p, ok := b.Top(Position{x, y}); ok {
				fmt.Fprintf(&sb, "%-4s", p.String())
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sortedPositions is a small helper used by deterministic-order callers
// (Levels) that would otherwise iterate a map in random order.
func sortedPositions(positions []Position) []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
