package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Food struct {
	Position types.Point
	Appearance

	grid types.Grid
	rng  *rand.Rand
}

// NewFood places food on a random cell outside excluded.
func NewFood(grid types.Grid, look Appearance, rng *rand.Rand, excluded []types.Point) *Food {
	f := &Food{
		Position:   grid.Center(),
		Appearance: look,
		grid:       grid,
		rng:        rng,
	}
	f.Relocate(excluded)
	return f
}

// Relocate moves the food to a uniformly random free cell. With no free cell
// left the food stays where it is.
func (f *Food) Relocate(excluded []types.Point) {
	taken := make(map[types.Point]struct{}, len(excluded))
	for _, p := range excluded {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, f.grid.Width*f.grid.Height)
	for _, c := range f.grid.Cells() {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return
	}
	f.Position = free[f.rng.Intn(len(free))]
}

func (f *Food) Draw(c Canvas) {
	c.DrawRect(f.Position, f.Fill, f.Border)
}
