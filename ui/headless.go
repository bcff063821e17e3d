package ui

import (
	"the-snake/game"
	"the-snake/game/types"
)

// Headless draws nothing and never produces input. Paired with a tick limit
// it runs the game without a display.
type Headless struct {
	Frames int
}

func (h *Headless) Clear(bg types.Color) {}

func (h *Headless) DrawRect(pos types.Point, fill, border types.Color) {}

func (h *Headless) DrawStatus(text string) {}

func (h *Headless) Present() {
	h.Frames++
}

func (h *Headless) Poll() []game.Event {
	return nil
}
