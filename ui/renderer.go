package ui

import (
	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusPadding = 5

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

// Window is the raylib backend. It is both the game.Renderer and the
// game.InputSource, since raylib owns the window and its event queue.
type Window struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	fontSize     int32
	statusColor  rl.Color
}

// NewWindow opens the game window. Close must be called on exit.
func NewWindow(cfg types.Config, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), title)
	rl.SetExitKey(rl.KeyEscape)

	return &Window{
		cellSize:     int32(cfg.CellSize),
		screenWidth:  int32(cfg.ScreenWidth),
		screenHeight: int32(cfg.ScreenHeight),
		fontSize:     max(int32(cfg.ScreenHeight/40), 10),
		statusColor:  toColor(cfg.Border, 160),
	}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) Clear(bg types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(bg, 255))
}

func (w *Window) DrawRect(pos types.Point, fill, border types.Color) {
	x := int32(pos.X) * w.cellSize
	y := int32(pos.Y) * w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toColor(fill, 255))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toColor(border, 255))
}

func (w *Window) DrawStatus(text string) {
	rl.DrawText(text, statusPadding, w.screenHeight-w.fontSize-statusPadding, w.fontSize, w.statusColor)
}

func (w *Window) Present() {
	rl.EndDrawing()
}

// Poll drains raylib's key queue. Closing the window or pressing Esc quits.
func (w *Window) Poll() []game.Event {
	if rl.WindowShouldClose() {
		return []game.Event{{Kind: game.EventQuit}}
	}
	var events []game.Event
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := keyDirections[key]; ok {
			events = append(events, game.Event{Kind: game.EventKeyDown, Direction: d})
		}
	}
	return events
}

func toColor(c types.Color, alpha uint8) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: alpha}
}
