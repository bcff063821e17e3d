package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type Game struct {
	UUID      string
	Config    types.Config
	Grid      types.Grid
	Snake     *entity.Snake
	Food      *entity.Food
	Stats     *manager.StateManager
	Steps     int
	StartTime time.Time

	logger *log.Logger
}

// NewGame builds the board, a length 1 snake on the centre cell heading right,
// and food on some other cell. A nil logger discards output.
func NewGame(cfg types.Config, rng *rand.Rand, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	grid := cfg.Grid()
	snake := entity.NewSnake(grid, grid.Center(), entity.Appearance{
		Fill:   cfg.SnakeColor,
		Border: cfg.Border,
	}, rng)
	food := entity.NewFood(grid, entity.Appearance{
		Fill:   cfg.FoodColor,
		Border: cfg.Border,
	}, rng, snake.Positions)

	g := &Game{
		UUID:      uuid.New().String(),
		Config:    cfg,
		Grid:      grid,
		Snake:     snake,
		Food:      food,
		Stats:     manager.NewStateManager(),
		StartTime: time.Now(),
		logger:    logger,
	}
	g.logger.Printf("game %s: board %dx%d cells, %d ticks/s", g.UUID, grid.Width, grid.Height, cfg.TicksPerSecond)
	return g, nil
}

// ElapsedTime returns how long the game has been running, in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// Run drives the loop until a quit event arrives, or until Config.MaxTicks
// ticks when that is set.
func (g *Game) Run(r Renderer, in InputSource, clock Clock) error {
	for g.Config.MaxTicks == 0 || g.Steps < g.Config.MaxTicks {
		clock.WaitForNextTick(g.Config.TicksPerSecond)
		if g.Tick(r, in) {
			g.logger.Printf("game %s: quit after %d ticks (%.1fs)", g.UUID, g.Steps, g.ElapsedTime())
			return nil
		}
	}
	g.logger.Printf("game %s: stopped after %d ticks", g.UUID, g.Steps)
	return nil
}

// Tick runs one frame: draw, read input, move, present. It returns true as
// soon as a quit event is seen; the rest of the frame is skipped.
func (g *Game) Tick(r Renderer, in InputSource) bool {
	r.Clear(g.Config.Background)
	g.Food.Draw(r)
	g.Snake.Draw(r)
	r.DrawStatus(g.Status())

	for _, ev := range in.Poll() {
		switch ev.Kind {
		case EventQuit:
			return true
		case EventKeyDown:
			g.Snake.SetPendingDirection(ev.Direction)
		}
	}
	g.Snake.ApplyPendingDirection()

	g.Steps++
	g.Stats.Step()
	length := g.Snake.Length

	// The food check looks at the head from before this step, so a meal is
	// credited on the tick after the head reaches the food.
	var reset bool
	if g.Snake.Head() == g.Food.Position {
		reset = g.Snake.Step(true)
		g.Food.Relocate(g.Snake.Positions)
		if !reset {
			g.Stats.FoodEaten(g.Snake.Length)
			g.logger.Printf("game %s: food eaten, length %d, next food at (%d,%d)",
				g.UUID, g.Snake.Length, g.Food.Position.X, g.Food.Position.Y)
		}
	} else {
		reset = g.Snake.Step(false)
	}
	if reset {
		run := g.Stats.EndRun(length)
		g.logger.Printf("game %s: self-collision at length %d after %d steps, snake reset heading %s",
			g.UUID, run.Length, run.Steps, g.Snake.Direction)
	}

	r.Present()
	return false
}

// Status is the one-line HUD text.
func (g *Game) Status() string {
	return fmt.Sprintf("Length: %d  Best: %d  Resets: %d  [%.8s]",
		g.Snake.Length, g.Stats.GetBestLength(), g.Stats.GetResets(), g.UUID)
}
