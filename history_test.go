package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryTextRoundTrip(t *testing.T) {
	h := History{GameType: BaseMLP}
	h.RecordMove("wA1", ".")
	h.RecordMove("bG1", "-wA1")
	h.RecordPass(White)

	text := h.String()
	parsed, err := ParseHistory(text)
	require.NoError(t, err)

	require.Equal(t, h.GameType, parsed.GameType)
	require.Len(t, parsed.Entries, 3)
	assert.Equal(t, h.Entries[0], parsed.Entries[0])
	assert.Equal(t, h.Entries[1], parsed.Entries[1])
	assert.True(t, parsed.Entries[2].IsPass())
	assert.Equal(t, "w", parsed.Entries[2].Piece)
}

func TestParseHistoryParsesPassLine(t *testing.T) {
	text := "GameType Base\n1. wQ .\n2. bQ -wQ\n3. w pass\n"
	parsed, err := ParseHistory(text)
	require.NoError(t, err)
	require.Len(t, parsed.Entries, 3)
	assert.True(t, parsed.Entries[2].IsPass())
	assert.Equal(t, "w", parsed.Entries[2].Piece)
}

func TestParseHistorySkipsResultLine(t *testing.T) {
	text := "GameType Base\n1. wQ .\n2. bQ -wQ\nWhite won\n"
	parsed, err := ParseHistory(text)
	require.NoError(t, err)
	assert.Len(t, parsed.Entries, 2)
}

func TestParseHistoryDefaultsGameType(t *testing.T) {
	text := "1. wQ .\n"
	parsed, err := ParseHistory(text)
	require.NoError(t, err)
	assert.Equal(t, Base, parsed.GameType)
}
