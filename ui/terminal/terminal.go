// Package terminal renders the board in a text terminal with tcell. Each board
// cell is two columns wide so cells come out roughly square.
package terminal

import (
	"fmt"

	"the-snake/game"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 32

type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	done   chan struct{}
}

// New opens the controlling terminal for a board of the configured size.
func New(cfg types.Config) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewWithScreen(s, cfg.Grid())
}

// NewWithScreen takes over an uninitialised screen.
func NewWithScreen(s tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards tcell's blocking event stream so Poll never blocks.
func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

func (t *Terminal) Clear(bg types.Color) {
	t.screen.Clear()
	st := tcell.StyleDefault.Background(toColor(bg))
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width*2; x++ {
			t.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (t *Terminal) DrawRect(pos types.Point, fill, border types.Color) {
	st := tcell.StyleDefault.Background(toColor(fill)).Foreground(toColor(border))
	t.screen.SetContent(pos.X*2, pos.Y, '[', nil, st)
	t.screen.SetContent(pos.X*2+1, pos.Y, ']', nil, st)
}

func (t *Terminal) DrawStatus(text string) {
	x := 0
	for _, r := range text {
		t.screen.SetContent(x, t.grid.Height, r, nil, tcell.StyleDefault)
		x++
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

// Poll drains whatever arrived since the last tick. Arrow keys steer; Esc,
// Ctrl-C and q quit. Anything else is dropped.
func (t *Terminal) Poll() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if out, ok := translateKey(e); ok {
					events = append(events, out)
				}
			}
		default:
			return events
		}
	}
}

func translateKey(e *tcell.EventKey) (game.Event, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return game.Event{Kind: game.EventKeyDown, Direction: types.Up}, true
	case tcell.KeyDown:
		return game.Event{Kind: game.EventKeyDown, Direction: types.Down}, true
	case tcell.KeyLeft:
		return game.Event{Kind: game.EventKeyDown, Direction: types.Left}, true
	case tcell.KeyRight:
		return game.Event{Kind: game.EventKeyDown, Direction: types.Right}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Event{Kind: game.EventQuit}, true
	case tcell.KeyRune:
		if e.Rune() == 'q' {
			return game.Event{Kind: game.EventQuit}, true
		}
	}
	return game.Event{}, false
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
