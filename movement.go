package hive

// This file holds the per-bug legal-destination generators: the heart of
// the engine, the way movegen.go is the heart of the teacher's move
// generator. Every generator assumes pos currently holds the top piece of
// the bug in question and returns the set of hexes it could legally end its
// turn on, ignoring turn-level bookkeeping (queen-required, last-moved,
// whose turn it is) — that bookkeeping lives in state.go.

// crawl returns the ground-slide destinations reachable from pos in a
// single step: for each occupied neighbor, its two common-adjacent
// "shoulder" hexes are candidates, filtered by emptiness and by the
// height-1 gate (a slider cannot squeeze between two stacks that are
// themselves at least one piece tall).
func crawl(b *Board, pos Position) []Position {
	occupied := b.PositionsTakenAround(pos)
	occupiedSet := make(map[Position]bool, len(occupied))
	for _, p := range occupied {
		occupiedSet[p] = true
	}
	seen := make(map[Position]bool)
	var out []Position
	for _, n := range occupied {
		a, c := pos.CommonAdjacent(n)
		for _, cand := range [2]Position{a, c} {
			if occupiedSet[cand] || seen[cand] {
				continue
			}
			if b.Gated(1, pos, cand) {
				continue
			}
			seen[cand] = true
			out = append(out, cand)
		}
	}
	return out
}

// climb returns the occupied neighbors of pos a beetle-like piece could
// step up onto: not gated at the height it would be climbing to.
func climb(b *Board, pos Position) []Position {
	var out []Position
	for _, n := range b.PositionsTakenAround(pos) {
		if !b.Gated(b.Level(n)+1, pos, n) {
			out = append(out, n)
		}
	}
	return out
}

// descend returns the empty neighbors of pos a beetle-like piece could step
// down onto: not gated at the height it is descending from.
func descend(b *Board, pos Position) []Position {
	var out []Position
	for _, n := range b.PositionsAvailableAround(pos) {
		if !b.Gated(b.Level(pos), pos, n) {
			out = append(out, n)
		}
	}
	return out
}

// queenMoves and pillbugMoves are both a single ground-slide step.
func queenMoves(b *Board, pos Position) []Position {
	return crawl(b, pos)
}

func pillbugMoves(b *Board, pos Position) []Position {
	return crawl(b, pos)
}

// antMoves computes the fixed point of crawl-reachability from pos, on a
// board with pos itself temporarily vacated, so the ant's own hex doesn't
// block (or get revisited as) a destination.
func antMoves(b *Board, pos Position) []Position {
	scratch := b.Clone()
	delete(scratch.stacks, pos)

	found := make(map[Position]bool)
	unexplored := []Position{pos}
	for len(unexplored) > 0 {
		cur := unexplored[len(unexplored)-1]
		unexplored = unexplored[:len(unexplored)-1]
		if found[cur] {
			continue
		}
		found[cur] = true
		for _, n := range crawl(scratch, cur) {
			if !found[n] {
				unexplored = append(unexplored, n)
			}
		}
	}
	delete(found, pos)
	out := make([]Position, 0, len(found))
	for p := range found {
		out = append(out, p)
	}
	return out
}

// spiderMoves enumerates every walk of exactly three ground-slide steps
// from pos (pos removed from the board after the first step, so the spider
// cannot re-enter its own start hex), forbidding any walk that revisits a
// position, and collects the endpoints.
func spiderMoves(b *Board, pos Position) []Position {
	scratch := b.Clone()
	paths := [][]Position{{pos}}
	for step := 0; step < 3; step++ {
		var next [][]Position
		for _, path := range paths {
			last := path[len(path)-1]
			for _, cand := range crawl(scratch, last) {
				dup := false
				for _, visited := range path {
					if visited == cand {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				np := make([]Position, len(path)+1)
				copy(np, path)
				np[len(path)] = cand
				next = append(next, np)
			}
		}
		paths = next
		if step == 0 {
			delete(scratch.stacks, pos)
		}
	}
	seen := make(map[Position]bool)
	var out []Position
	for _, path := range paths {
		end := path[len(path)-1]
		if !seen[end] {
			seen[end] = true
			out = append(out, end)
		}
	}
	return out
}

// beetleMoves combines climbing onto a neighbor with either crawling (while
// still on the ground) or descending (while perched atop the hive).
func beetleMoves(b *Board, pos Position) []Position {
	seen := make(map[Position]bool)
	var out []Position
	add := func(positions []Position) {
		for _, p := range positions {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	add(climb(b, pos))
	if b.Level(pos) == 1 {
		add(crawl(b, pos))
	} else {
		add(descend(b, pos))
	}
	return out
}

// grasshopperMoves steps repeatedly in each occupied-neighbor direction
// until it finds the first empty hex past the run of pieces.
func grasshopperMoves(b *Board, pos Position) []Position {
	var out []Position
	for _, d := range AllDirections() {
		if !b.Occupied(pos.To(d)) {
			continue
		}
		cur := pos
		for b.Occupied(cur.To(d)) {
			cur = cur.To(d)
		}
		out = append(out, cur.To(d))
	}
	return out
}

// ladybugMoves performs climb, climb, descend: two climbing steps across
// the top of the hive followed by one descent to an empty hex, forbidding
// the second climb from revisiting pos or the first intermediate hex, and
// forbidding the final descent from landing back on pos.
func ladybugMoves(b *Board, pos Position) []Position {
	first := climb(b, pos)
	secondSeen := make(map[Position]bool)
	var second []Position
	for _, p1 := range first {
		for _, p2 := range climb(b, p1) {
			if p2 == pos || p2 == p1 || secondSeen[p2] {
				continue
			}
			secondSeen[p2] = true
			second = append(second, p2)
		}
	}
	thirdSeen := make(map[Position]bool)
	var third []Position
	for _, p2 := range second {
		for _, p3 := range b.PositionsAvailableAround(p2) {
			if p3 == pos || thirdSeen[p3] {
				continue
			}
			if b.Gated(b.Level(p2)+1, p2, p3) {
				continue
			}
			thirdSeen[p3] = true
			third = append(third, p3)
		}
	}
	return third
}

// mosquitoMoves inherits the movement of each distinct top bug among its
// neighbors when at ground level (a mosquito contributes nothing through
// another mosquito neighbor), or moves as a beetle once it has itself
// climbed onto the hive.
func mosquitoMoves(b *Board, pos Position) []Position {
	if b.Level(pos) != 1 {
		return beetleMoves(b, pos)
	}
	seenBug := make(map[Bug]bool)
	seenPos := make(map[Position]bool)
	var out []Position
	for _, p := range b.TopLayerNeighbors(pos) {
		if p.Bug == Mosquito || seenBug[p.Bug] {
			continue
		}
		seenBug[p.Bug] = true
		for _, dest := range destinationsForBug(p.Bug, b, pos) {
			if !seenPos[dest] {
				seenPos[dest] = true
				out = append(out, dest)
			}
		}
	}
	return out
}

// destinationsForBug dispatches to the generator for bug, as if pos held a
// piece of that kind. Used directly by mosquitoMoves (borrowing a
// neighbor's locomotion) and by LegalDestinations.
func destinationsForBug(bug Bug, b *Board, pos Position) []Position {
	switch bug {
	case Queen:
		return queenMoves(b, pos)
	case Ant:
		return antMoves(b, pos)
	case Beetle:
		return beetleMoves(b, pos)
	case Grasshopper:
		return grasshopperMoves(b, pos)
	case Spider:
		return spiderMoves(b, pos)
	case Ladybug:
		return ladybugMoves(b, pos)
	case Mosquito:
		return mosquitoMoves(b, pos)
	case Pillbug:
		return pillbugMoves(b, pos)
	default:
		return nil
	}
}

// LegalDestinations returns the legal move-destinations for the top piece
// at pos, ignoring whether that piece is currently allowed to move at all
// (pinned, last-moved, queen-not-placed) — see Movable.
func LegalDestinations(b *Board, pos Position) []Position {
	piece, ok := b.Top(pos)
	if !ok {
		return nil
	}
	return destinationsForBug(piece.Bug, b, pos)
}

// Throw describes one legal pillbug (or mosquito-as-pillbug) ability use:
// actor throws victim (currently at From) to To.
type Throw struct {
	Actor  Piece
	Victim Piece
	From   Position
	To     Position
}

// hasPillbugAbility reports whether the top piece at pos may use the
// pillbug throw ability: either it is a Pillbug, or it is a Mosquito at
// ground level adjacent to a Pillbug.
func hasPillbugAbility(b *Board, pos Position) bool {
	piece, ok := b.Top(pos)
	if !ok {
		return false
	}
	if piece.Bug == Pillbug {
		return true
	}
	return piece.Bug == Mosquito && b.Level(pos) == 1 && b.NeighborIsA(pos, Pillbug)
}

// AvailableThrows enumerates every throw the piece at pos may perform this
// turn: for each unpinned, ground-level, not-gated neighbor, every
// not-gated empty destination around pos.
func AvailableThrows(b *Board, pos Position) []Throw {
	if !hasPillbugAbility(b, pos) {
		return nil
	}
	actor, _ := b.Top(pos)
	var destinations []Position
	for _, to := range b.PositionsAvailableAround(pos) {
		if !b.Gated(2, pos, to) {
			destinations = append(destinations, to)
		}
	}
	if len(destinations) == 0 {
		return nil
	}
	var out []Throw
	for _, from := range b.PositionsTakenAround(pos) {
		if b.Level(from) > 1 {
			continue
		}
		if b.Gated(2, from, pos) {
			continue
		}
		if b.Pinned(from) {
			continue
		}
		victim, _ := b.Top(from)
		if b.LastMoved != nil && b.LastMoved.Piece == victim {
			continue
		}
		for _, to := range destinations {
			out = append(out, Throw{Actor: actor, Victim: victim, From: from, To: to})
		}
	}
	return out
}

// Movable reports whether the piece currently at pos is eligible to move
// this turn at all: present, not pinned, its color's queen already placed,
// and not the piece (or throw victim) that moved last turn.
func Movable(b *Board, pos Position) bool {
	piece, ok := b.Top(pos)
	if !ok {
		return false
	}
	if b.Pinned(pos) {
		return false
	}
	if !b.QueenPlayed(piece.Color) {
		return false
	}
	if b.LastMoved != nil && b.LastMoved.Piece == piece {
		return false
	}
	return true
}
