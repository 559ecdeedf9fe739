package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameTypeOptionalBugs(t *testing.T) {
	assert.False(t, Base.HasMosquito())
	assert.True(t, BaseMLP.HasMosquito())
	assert.True(t, BaseMLP.HasLadybug())
	assert.True(t, BaseMLP.HasPillbug())
	assert.True(t, BaseM.HasMosquito())
	assert.False(t, BaseM.HasLadybug())
}

func TestGameTypeStringRoundTrip(t *testing.T) {
	for _, gt := range []GameType{Base, BaseM, BaseL, BaseP, BaseML, BaseMP, BaseLP, BaseMLP} {
		got, err := GameTypeFromString(gt.String())
		assert.NoError(t, err)
		assert.Equal(t, gt, got)
	}
}

func TestInitialCountOmitsAbsentExpansions(t *testing.T) {
	assert.EqualValues(t, 0, Base.InitialCount(Mosquito))
	assert.EqualValues(t, 1, BaseM.InitialCount(Mosquito))
	assert.EqualValues(t, 1, Base.InitialCount(Queen))
	assert.EqualValues(t, 3, Base.InitialCount(Ant))
}

func TestBugFromLetterRejectsUnknown(t *testing.T) {
	_, err := BugFromLetter('Z')
	assert.Error(t, err)
}
