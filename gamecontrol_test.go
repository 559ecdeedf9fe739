package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameControlStringRoundTrip(t *testing.T) {
	all := []GameControl{
		AbortAccept, AbortOffer, AbortReject,
		DrawAccept, DrawOffer, DrawReject,
		Resign,
		TakebackAccept, TakebackOffer, TakebackReject,
	}
	for _, gc := range all {
		got, err := GameControlFromString(gc.String())
		require.NoError(t, err)
		assert.Equal(t, gc, got)
	}
}

func TestResignEndsTheGame(t *testing.T) {
	s := NewState(Base)
	require.NoError(t, s.ApplyControl(Resign, White))
	assert.Equal(t, Finished, s.Status())
	assert.Equal(t, WinBlack, s.Result())
}

func TestDrawAcceptEndsTheGameInADraw(t *testing.T) {
	s := NewState(Base)
	require.NoError(t, s.ApplyControl(DrawAccept, Black))
	assert.Equal(t, Finished, s.Status())
	assert.Equal(t, Draw, s.Result())
}
