package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func containsPos(positions []Position, want Position) bool {
	for _, p := range positions {
		if p == want {
			return true
		}
	}
	return false
}

func TestAntReachabilityThreePieceRow(t *testing.T) {
	b := NewBoard()
	p0 := Origin
	p1 := p0.To(E)
	p2 := p1.To(E)
	ant := NewPiece(Ant, White, 1)
	b.Insert(p0, ant)
	b.Insert(p1, NewPiece(Queen, White, 0))
	b.Insert(p2, NewPiece(Queen, Black, 0))

	dests := antMoves(b, p0)
	// the ant should be able to reach all the way around the three-piece
	// row and back, but never onto an occupied hex
	assert.False(t, containsPos(dests, p1))
	assert.False(t, containsPos(dests, p2))
	assert.True(t, len(dests) > 0)
	for _, d := range dests {
		assert.False(t, b.Occupied(d), d)
	}
}

func TestGrasshopperJumpsToFirstEmpty(t *testing.T) {
	b := NewBoard()
	start := Origin
	mid := start.To(E)
	far := mid.To(E)
	b.Insert(start, NewPiece(Grasshopper, White, 1))
	b.Insert(mid, NewPiece(Queen, Black, 0))

	dests := grasshopperMoves(b, start)
	assert.True(t, containsPos(dests, far))
	assert.Equal(t, 1, len(dests))
}

func TestGrasshopperCannotJumpOverNothing(t *testing.T) {
	b := NewBoard()
	start := Origin
	b.Insert(start, NewPiece(Grasshopper, White, 1))
	assert.Empty(t, grasshopperMoves(b, start))
}

func TestSpiderMovesExactlyThreeSteps(t *testing.T) {
	b := NewBoard()
	// a single neighbor for the spider to crawl around
	center := Origin
	spider := NewPiece(Spider, White, 1)
	b.Insert(center, spider)
	b.Insert(center.To(E), NewPiece(Beetle, Black, 1))
	dests := spiderMoves(b, center)
	// three steps around the lone neighbor, either way, end on the hex
	// opposite the start
	assert.Equal(t, []Position{center.To(E).To(E)}, dests)
	assert.False(t, containsPos(dests, center))
	for _, d := range dests {
		assert.False(t, b.Occupied(d), d)
	}
}

func TestBeetleClimbsOntoNeighbor(t *testing.T) {
	b := NewBoard()
	beetlePos := Origin
	neighborPos := Origin.To(E)
	b.Insert(neighborPos, NewPiece(Queen, Black, 0))
	b.Insert(beetlePos, NewPiece(Beetle, White, 1))

	dests := beetleMoves(b, beetlePos)
	assert.True(t, containsPos(dests, neighborPos), "beetle should be able to climb onto an adjacent piece")
}

func TestPillbugThrowImmobilizesVictimNextTurn(t *testing.T) {
	b := NewBoard()
	pillbugPos := Origin
	victimPos := Origin.To(E)
	blackQueenPos := Origin.To(W)
	whiteQueenPos := blackQueenPos.To(W)

	b.Insert(pillbugPos, NewPiece(Pillbug, White, 0))
	b.Insert(victimPos, NewPiece(Grasshopper, Black, 1))
	b.Insert(blackQueenPos, NewPiece(Queen, Black, 0))
	b.Insert(whiteQueenPos, NewPiece(Queen, White, 0))

	throws := AvailableThrows(b, pillbugPos)
	assert.NotEmpty(t, throws)

	chosen := throws[0]
	victim, _ := b.Top(victimPos)
	b.MovePiece(victim, victimPos, chosen.To)

	assert.False(t, Movable(b, chosen.To), "a just-thrown piece must be immobile for one ply")
}
