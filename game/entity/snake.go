package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Snake struct {
	Positions []types.Point
	Direction types.Direction
	Pending   types.PendingDirection
	Length    int
	Appearance

	start types.Point
	grid  types.Grid
	rng   *rand.Rand
}

func NewSnake(grid types.Grid, start types.Point, look Appearance, rng *rand.Rand) *Snake {
	return &Snake{
		Positions:  []types.Point{start},
		Direction:  types.Right,
		Length:     1,
		Appearance: look,
		start:      start,
		grid:       grid,
		rng:        rng,
	}
}

func (s *Snake) Head() types.Point {
	return s.Positions[0]
}

// Start is the cell the snake respawns on.
func (s *Snake) Start() types.Point {
	return s.start
}

// SetPendingDirection queues a turn for the next tick. A turn straight back
// into the neck is dropped.
func (s *Snake) SetPendingDirection(d types.Direction) {
	if !d.Valid() || d == s.Direction.Opposite() {
		return
	}
	s.Pending = types.PendingDirection{Direction: d, Valid: true}
}

func (s *Snake) ApplyPendingDirection() {
	if !s.Pending.Valid {
		return
	}
	s.Direction = s.Pending.Direction
	s.Pending = types.PendingDirection{}
}

// Step advances the head one cell. It returns true when the move ran into the
// body and the snake was reset instead.
func (s *Snake) Step(grew bool) bool {
	next := s.grid.Wrap(s.Head().Add(s.Direction.Vector()))

	// The neck and the cell behind it can never be hit by a legal move.
	if len(s.Positions) > 2 {
		for _, p := range s.Positions[2:] {
			if p == next {
				s.Reset()
				return true
			}
		}
	}

	s.Positions = append(s.Positions, types.Point{})
	copy(s.Positions[1:], s.Positions)
	s.Positions[0] = next
	if grew {
		s.Length++
	}
	for len(s.Positions) > s.Length {
		s.Positions = s.Positions[:len(s.Positions)-1]
	}
	return false
}

// Reset puts the snake back on its start cell with length 1 and a random heading.
func (s *Snake) Reset() {
	s.Length = 1
	s.Positions = []types.Point{s.start}
	s.Direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.Pending = types.PendingDirection{}
}

func (s *Snake) Draw(c Canvas) {
	for _, p := range s.Positions {
		c.DrawRect(p, s.Fill, s.Border)
	}
	// Head last so it stays on top.
	c.DrawRect(s.Head(), s.Fill, s.Border)
}
