// Package game drives a simulation from a tcell screen: it maps keys and
// mouse input to simulation events, steps the simulation at a fixed rate
// and redraws after every tick.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"terrasky/internal/config"
	"terrasky/internal/geom"
	"terrasky/internal/render"
	"terrasky/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Game. Zero values pick the defaults.
type Options struct {
	// Screen is an initialized screen to draw on. Nil opens the local
	// terminal.
	Screen tcell.Screen
	Config *config.Config
	Logger *slog.Logger
	// SaveRun appends a RunLog line to the data dir when Run returns.
	SaveRun bool
}

// Game is the top-level orchestrator for one player.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sim      *sim.Simulation
	logger   *slog.Logger
	tick     time.Duration
	seed     int64
	saveRun  bool

	role    sim.Role
	pointer geom.Point
	mouseDn bool
	quit    bool
}

// New opens the local terminal and creates a Game with the default
// configuration.
func New() (*Game, error) {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Game from opts. A screen it opens itself is
// initialized here; a supplied screen must already be initialized.
func NewWithOptions(opts Options) (*Game, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
	}
	screen.EnableMouse()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		logger:   logger,
		tick:     time.Second / time.Duration(cfg.TickRate),
		seed:     seed,
		saveRun:  opts.SaveRun,
	}
	g.sim = cfg.NewSimulation(rand.New(rand.NewSource(seed)), g.renderer.Viewport(), logger)
	g.role = g.sim.Role
	g.renderer.FocusSky(g.sim.Player.Pos)
	logger.Info("game created", "seed", seed, "tick_rate", cfg.TickRate)
	return g, nil
}

// Sim returns the simulation the game drives.
func (g *Game) Sim() *sim.Simulation { return g.sim }

// Seed returns the world seed in use.
func (g *Game) Seed() int64 { return g.seed }

// Run is the main loop. It returns when the player quits or ctx is done,
// and finalizes the screen on the way out.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)
	go g.pollEvents(events, stop)

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	defer g.finish()

	g.draw()
	for !g.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			g.HandleEvent(ev)
		case <-ticker.C:
			g.Step()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or stop
// is closed.
func (g *Game) pollEvents(out chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

func (g *Game) finish() {
	g.logger.Info("game ended", "tick", g.sim.Tick, "science", g.sim.Economy.Science)
	if g.saveRun {
		saveRunLog(newRunLog(g.sim, g.seed), g.logger)
	}
}

// Step advances the simulation one tick and redraws.
func (g *Game) Step() {
	g.sim.Step()
	if g.sim.Role != g.role {
		g.role = g.sim.Role
		if g.role == sim.Sky {
			g.renderer.FocusSky(g.sim.Player.Pos)
		}
	}
	g.draw()
}

// Quit reports whether the player asked to leave.
func (g *Game) Quit() bool { return g.quit }

// HandleEvent translates one tcell event. Simulation events are queued and
// applied on the next Step in arrival order.
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.sim.SetViewport(g.renderer.Viewport())
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		records, zoom := mouseToEvents(ev, &g.mouseDn)
		for _, r := range records {
			g.pointer = r.Pos
			g.sim.Push(r)
		}
		if g.role == sim.Sky {
			g.zoom(zoom)
		}
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	sky := g.renderer.Sky()
	switch keyToCommand(ev, g.role) {
	case cmdQuit:
		g.quit = true
		return
	case cmdZoomIn:
		g.zoom(-1)
		return
	case cmdZoomOut:
		g.zoom(1)
		return
	case cmdPanUp:
		sky.Pan(0, -1)
		return
	case cmdPanDown:
		sky.Pan(0, 1)
		return
	case cmdPanLeft:
		sky.Pan(-1, 0)
		return
	case cmdPanRight:
		sky.Pan(1, 0)
		return
	}

	action := keyToAction(ev, g.role)
	if action == sim.ActionNone {
		return
	}
	g.sim.Push(sim.Event{
		Kind:   sim.KeyDown,
		Pos:    g.pointer,
		Action: action,
		Target: g.renderer.PointerToWorld(g.role, g.pointer),
	})
}

// zoom steps the overview camera: negative zooms in, positive zooms out.
func (g *Game) zoom(step int) {
	switch {
	case step < 0:
		g.renderer.Sky().ZoomIn()
	case step > 0:
		g.renderer.Sky().ZoomOut()
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.sim, g.pointer)
}
