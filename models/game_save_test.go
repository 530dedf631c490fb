package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmicclicker/game"
)

func TestGameSaveStateRoundTrip(t *testing.T) {
	state := game.NewState(time.UnixMilli(1_700_000_000_000))
	state.Stardust = 42_000
	state.Username = "astra"
	state.TotalStardustEarned = 5_000_000
	state.PrestigeCount = 2

	var save GameSave
	require.NoError(t, save.SetState(&state))

	// leaderboard columns track the snapshot
	assert.Equal(t, "astra", save.Username)
	assert.Equal(t, 5_000_000.0, save.TotalStardustEarned)
	assert.Equal(t, 2, save.PrestigeCount)

	restored, err := save.GetState()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, state.Stardust, restored.Stardust)
	assert.Equal(t, state.Username, restored.Username)
}

func TestGameSaveEmptyState(t *testing.T) {
	var save GameSave
	state, err := save.GetState()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestGameSaveCorruptState(t *testing.T) {
	save := GameSave{StateJSON: "{not json"}
	_, err := save.GetState()
	assert.Error(t, err)
}
