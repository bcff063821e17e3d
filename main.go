package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"the-snake/game"
	"the-snake/game/types"
	"the-snake/ui"
	"the-snake/ui/terminal"

	"golang.org/x/exp/rand"
)

const windowTitle = "Snake"

func main() {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.TicksPerSecond, "speed", cfg.TicksPerSecond, "Game speed in ticks per second")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Board width in pixels")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Board height in pixels")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flag.IntVar(&cfg.MaxTicks, "max-ticks", 0, "Stop after N ticks (0 = run until quit)")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")
	backend := flag.String("backend", "window", "Renderer: window, terminal or headless")
	logFile := flag.String("logfile", "", "Write logs to file instead of stderr")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("snake: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	var out io.Writer = os.Stderr
	if *backend == "terminal" {
		// Anything written to stderr would scribble over the board.
		out = io.Discard
	}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("snake: failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "snake ", log.LstdFlags)
	logger.Printf("seed %d, backend %s", cfg.Seed, *backend)

	g, err := game.NewGame(cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	clock := game.NewFrameClock()

	switch *backend {
	case "window":
		w := ui.NewWindow(cfg, windowTitle)
		defer w.Close()
		err = g.Run(w, w, clock)
	case "terminal":
		t, terr := terminal.New(cfg)
		if terr != nil {
			log.Fatalf("snake: %v", terr)
		}
		defer t.Close()
		err = g.Run(t, t, clock)
	case "headless":
		h := &ui.Headless{}
		err = g.Run(h, h, clock)
	default:
		log.Fatalf("snake: unknown backend %q", *backend)
	}
	if err != nil {
		logger.Printf("game %s: %v", g.UUID, err)
	}

	logger.Printf("game %s: %d resets, best length %d, average length %.1f, %d food eaten",
		g.UUID, g.Stats.GetResets(), g.Stats.GetBestLength(), g.Stats.GetAverageLength(), g.Stats.GetFoodEaten())
}
