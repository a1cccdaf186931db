package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/panel"
	"github.com/iburimskiy/particle-canvas/internal/particle"
	"github.com/iburimskiy/particle-canvas/internal/render"
	"github.com/iburimskiy/particle-canvas/internal/sim"
)

// Options seed a new Game.
type Options struct {
	Store        *config.Store // nil starts from config.Default
	Seed         int64
	Sound        bool
	ShowSettings bool
	Width        int
	Height       int
}

type Game struct {
	store *config.Store
	sim   *sim.Simulation
	rng   *rand.Rand
	frame render.DisplayList
	stats sim.Stats

	// viewport, updated by Layout on resize
	width  int
	height int

	// spawn target, last set by the pointer or the auto-spawn timer
	target    particle.Target
	autoSpawn *sim.AutoSpawner

	// input edge detection
	cursorX, cursorY int
	cursorSeen       bool
	lastPress        time.Time

	panel  *panel.Panel
	player *player
	sound  bool

	lastErr error
}

func NewGame(opts Options) *Game {
	rng := rand.New(rand.NewSource(opts.Seed))
	store := opts.Store
	if store == nil {
		store = config.NewStore(config.Default())
	}
	g := &Game{
		store:     store,
		sim:       sim.New(rng),
		rng:       rng,
		width:     opts.Width,
		height:    opts.Height,
		autoSpawn: sim.NewAutoSpawner(),
		panel:     panel.New(store, opts.ShowSettings),
		player:    newPlayer(),
		sound:     opts.Sound,
	}
	store.Subscribe(g.onSettingsChange)
	return g
}

func (g *Game) onSettingsChange(c config.Change) {
	v, err := c.New.Number(c.Field)
	if err != nil {
		g.report(err)
		return
	}
	log.Printf("setting %s = %v", c.Field, v)
}

func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handlePointer()
	g.handleAutoSpawn()

	stats, err := g.sim.Step(&g.frame, g.store.Current())
	if err != nil {
		g.report(err)
	}
	g.stats = stats
	g.player.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(screenCanvas{dst: screen})
	if g.panel.Visible {
		g.drawPanel(screen)
	}
	g.drawHUD(screen)
}

// Layout keeps the canvas sized to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// spawn pushes CountOnClick particles at the current target.
func (g *Game) spawn() {
	s := g.store.Current()
	if _, err := g.sim.Spawn(g.target, s); err != nil {
		g.report(err)
		return
	}
	if g.sound {
		if err := g.player.blip(g.sim.Hue(), time.Now()); err != nil {
			g.sound = false
			g.report(err)
		}
	}
}

// report logs err once and keeps it for the status line.
func (g *Game) report(err error) {
	if g.lastErr == nil || g.lastErr.Error() != err.Error() {
		log.Printf("%v", err)
	}
	g.lastErr = err
}
