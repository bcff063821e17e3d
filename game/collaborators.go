package game

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

// Renderer draws one frame. Clear starts the frame and Present shows it.
type Renderer interface {
	entity.Canvas
	Clear(bg types.Color)
	DrawStatus(text string)
	Present()
}

type EventKind int

const (
	EventKeyDown EventKind = iota + 1
	EventQuit
)

// Event is a discrete input event. Direction is only set for EventKeyDown.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

// InputSource hands over every event queued since the last call. It never
// blocks; an empty slice is the usual answer.
type InputSource interface {
	Poll() []Event
}

// Clock paces the loop at a fixed rate.
type Clock interface {
	WaitForNextTick(ticksPerSecond int)
}
