package types

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything fixed for the lifetime of the process. It is built
// once at startup and handed to the game and the renderers.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	CellSize       int
	TicksPerSecond int
	// MaxTicks stops the loop after that many ticks; 0 runs until quit.
	MaxTicks int
	Seed     uint64

	Background Color
	Border     Color
	FoodColor  Color
	SnakeColor Color
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:    640,
		ScreenHeight:   480,
		CellSize:       20,
		TicksPerSecond: 20,
		Background:     Color{R: 0, G: 0, B: 0},
		Border:         Color{R: 93, G: 216, B: 228},
		FoodColor:      Color{R: 255, G: 0, B: 0},
		SnakeColor:     Color{R: 0, G: 255, B: 0},
	}
}

// Grid returns the board in cells.
func (c Config) Grid() Grid {
	return Grid{
		Width:  c.ScreenWidth / c.CellSize,
		Height: c.ScreenHeight / c.CellSize,
	}
}

// Validate checks the board can be tiled exactly by cells.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks per second must be positive, got %d", ErrInvalidConfig, c.TicksPerSecond)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max ticks must not be negative, got %d", ErrInvalidConfig, c.MaxTicks)
	}
	return nil
}
