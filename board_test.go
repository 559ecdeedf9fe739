package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnableFirstTwoPlacements(t *testing.T) {
	b := NewBoard()
	require.True(t, b.Spawnable(White, Origin))

	wQ := NewPiece(Queen, White, 0)
	b.Insert(Origin, wQ)

	// with only one piece down, any empty neighbor is fair game regardless
	// of color
	for _, n := range Origin.Neighbors() {
		assert.True(t, b.Spawnable(Black, n), n)
	}

	bQ := NewPiece(Queen, Black, 0)
	target := Origin.To(E)
	b.Insert(target, bQ)

	// once two pieces are down, a new piece may not touch the opposing
	// color
	for _, n := range target.Neighbors() {
		if n == Origin {
			continue
		}
		assert.False(t, b.Spawnable(White, n), n)
	}
}

func TestPinnedSingleBridge(t *testing.T) {
	b := NewBoard()
	a := NewPiece(Ant, White, 1)
	q := NewPiece(Queen, White, 0)
	g := NewPiece(Grasshopper, Black, 1)

	posA := Origin
	posQ := Origin.To(E)
	posG := posQ.To(E)

	b.Insert(posA, a)
	b.Insert(posQ, q)
	b.Insert(posG, g)

	// the queen is the only link between the ant and the grasshopper; it
	// cannot move without splitting the hive
	assert.True(t, b.Pinned(posQ))
	assert.False(t, b.Pinned(posA))
}

func TestPinnedNeverTrueAboveGroundLevel(t *testing.T) {
	b := NewBoard()
	bottom := NewPiece(Beetle, White, 1)
	top := NewPiece(Beetle, Black, 2)
	b.Insert(Origin, bottom)
	b.Insert(Origin, top)

	assert.False(t, b.Pinned(Origin))
}

func TestGatedRequiresBothShoulders(t *testing.T) {
	b := NewBoard()
	center := Origin
	target := center.To(NE)
	shoulder1 := center.To(NW)
	shoulder2 := center.To(E)

	b.Insert(shoulder2, NewPiece(Ant, Black, 1))
	assert.False(t, b.Gated(1, center, target), "only one shoulder occupied should not gate")

	b.Insert(shoulder1, NewPiece(Ant, White, 1))
	assert.True(t, b.Gated(1, center, target), "both shoulders occupied should gate a height-1 move")
}

func TestReserveConservation(t *testing.T) {
	b := NewBoard()
	gt := BaseMLP
	before := b.Reserve(White, gt)
	b.Insert(Origin, NewPiece(Ant, White, 1))
	after := b.Reserve(White, gt)
	assert.Equal(t, before[Ant]-1, after[Ant])
	assert.Equal(t, before[Queen], after[Queen])
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Insert(Origin, NewPiece(Queen, White, 0))
	clone := b.Clone()
	clone.Insert(Origin.To(E), NewPiece(Ant, Black, 1))

	assert.Equal(t, 1, b.Size())
	assert.Equal(t, 2, clone.Size())
}
