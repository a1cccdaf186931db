package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/particle"
)

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound = !g.sound
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.player.openDialog(); err != nil {
			g.report(err)
		}
	}
	return nil
}

// handlePointer spawns on click and on cursor movement. Input over the
// visible settings panel goes to the panel instead.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		now := time.Now()
		double := !g.lastPress.IsZero() && now.Sub(g.lastPress) < config.DoubleClickWindow
		g.lastPress = now

		handled, err := g.panel.Press(x, y)
		if err != nil {
			g.report(err)
		}
		if !handled {
			g.target = particle.At(x, y)
			g.spawn()
		}
		if double {
			g.panel.Toggle()
			g.lastPress = time.Time{}
		}
	}

	if g.panel.Dragging() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			if err := g.panel.Drag(x); err != nil {
				g.report(err)
			}
		} else {
			g.panel.Release()
		}
	}

	moved := g.cursorSeen && (mx != g.cursorX || my != g.cursorY)
	g.cursorX, g.cursorY, g.cursorSeen = mx, my, true
	if moved && g.panel.PassesMove(x, y) {
		g.target = particle.At(x, y)
		g.spawn()
	}
}

// handleAutoSpawn fires the fixed-interval spawn at random viewport points.
func (g *Game) handleAutoSpawn() {
	dt := time.Second / time.Duration(ebiten.TPS())
	for _, target := range g.autoSpawn.Tick(dt, g.store.Current(), g.width, g.height, g.rng) {
		g.target = target
		g.spawn()
	}
}
