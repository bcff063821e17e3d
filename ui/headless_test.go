package ui_test

import (
	"testing"

	"the-snake/game"
	"the-snake/game/types"
	"the-snake/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type noWait struct{}

func (noWait) WaitForNextTick(int) {}

func TestHeadlessRunsToTickLimit(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.MaxTicks = 200
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(8)), nil)
	require.NoError(t, err)

	h := &ui.Headless{}
	require.NoError(t, g.Run(h, h, noWait{}))

	assert.Equal(t, 200, h.Frames)
	assert.Equal(t, 200, g.Steps)
	assert.Equal(t, g.Snake.Length, len(g.Snake.Positions))
	assert.NotContains(t, g.Snake.Positions[1:], g.Snake.Head())
}
