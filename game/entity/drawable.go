package entity

import "the-snake/game/types"

// Canvas is the one drawing primitive entities need: fill a board cell.
type Canvas interface {
	DrawRect(pos types.Point, fill, border types.Color)
}

// Drawable is anything that can paint itself on a Canvas.
type Drawable interface {
	Draw(c Canvas)
}

// Appearance is the colour data shared by every entity.
type Appearance struct {
	Fill   types.Color
	Border types.Color
}
