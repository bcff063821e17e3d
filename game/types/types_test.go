package types_test

import (
	"errors"
	"testing"

	"the-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridWrap(t *testing.T) {
	grid := types.Grid{Width: 32, Height: 24}

	tests := []struct {
		name string
		from types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge", types.Point{X: 31, Y: 5}, types.Right, types.Point{X: 0, Y: 5}},
		{"left edge", types.Point{X: 0, Y: 5}, types.Left, types.Point{X: 31, Y: 5}},
		{"bottom edge", types.Point{X: 7, Y: 23}, types.Down, types.Point{X: 7, Y: 0}},
		{"top edge", types.Point{X: 7, Y: 0}, types.Up, types.Point{X: 7, Y: 23}},
		{"interior", types.Point{X: 10, Y: 10}, types.Right, types.Point{X: 11, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grid.Wrap(tt.from.Add(tt.dir.Vector()))
			assert.Equal(t, tt.want, got)
			assert.True(t, grid.Contains(got))
		})
	}
}

func TestGridWrapLargeOffsets(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	assert.Equal(t, types.Point{X: 1, Y: 2}, grid.Wrap(types.Point{X: -7, Y: -4}))
	assert.Equal(t, types.Point{X: 2, Y: 0}, grid.Wrap(types.Point{X: 10, Y: 9}))
}

func TestGridCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	cells := grid.Cells()

	require.Len(t, cells, 6)
	assert.Equal(t, types.Point{X: 0, Y: 0}, cells[0])
	assert.Equal(t, types.Point{X: 0, Y: 1}, cells[1])
	assert.Equal(t, types.Point{X: 2, Y: 1}, cells[5])

	seen := make(map[types.Point]bool)
	for _, c := range cells {
		assert.False(t, seen[c], "duplicate cell %v", c)
		seen[c] = true
	}
}

func TestGridCenter(t *testing.T) {
	assert.Equal(t, types.Point{X: 16, Y: 12}, types.Grid{Width: 32, Height: 24}.Center())
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range types.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, types.Point{}, d.Vector().Add(d.Opposite().Vector()))
	}
	assert.Equal(t, types.Down, types.Up.Opposite())
	assert.Equal(t, types.Left, types.Right.Opposite())
}

func TestDirectionVectors(t *testing.T) {
	assert.Equal(t, types.Point{X: 0, Y: -1}, types.Up.Vector())
	assert.Equal(t, types.Point{X: 0, Y: 1}, types.Down.Vector())
	assert.Equal(t, types.Point{X: -1, Y: 0}, types.Left.Vector())
	assert.Equal(t, types.Point{X: 1, Y: 0}, types.Right.Vector())

	var none types.Direction
	assert.False(t, none.Valid())
	assert.Equal(t, types.Point{}, none.Vector())
	assert.Equal(t, "none", none.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.Grid{Width: 32, Height: 24}, cfg.Grid())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Config)
	}{
		{"zero cell", func(c *types.Config) { c.CellSize = 0 }},
		{"negative width", func(c *types.Config) { c.ScreenWidth = -640 }},
		{"not a multiple", func(c *types.Config) { c.ScreenWidth = 650 }},
		{"zero speed", func(c *types.Config) { c.TicksPerSecond = 0 }},
		{"negative max ticks", func(c *types.Config) { c.MaxTicks = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidConfig))
		})
	}
}
