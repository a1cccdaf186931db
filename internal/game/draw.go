package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/panel"
	"github.com/iburimskiy/particle-canvas/internal/particle"
	"github.com/iburimskiy/particle-canvas/internal/render"
)

var (
	panelFill   = color.RGBA{R: 20, G: 25, B: 35, A: 210}
	panelBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	trackColor  = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	labelColor  = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	helpColor   = color.RGBA{R: 150, G: 160, B: 180, A: 255}
)

func (g *Game) drawPanel(screen *ebiten.Image) {
	b := g.panel.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), panelFill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, panelBorder, false)

	face := basicfont.Face7x13
	y := int(b.Y) + config.PanelPadding + 10
	for _, line := range panel.HelpText {
		text.Draw(screen, line, face, int(b.X)+config.PanelPadding, y, helpColor)
		y += 16
	}

	// knobs and fills follow the current hue so the panel matches new particles
	accent := particle.HueColor(g.sim.Hue())

	for _, r := range g.panel.Rows() {
		text.Draw(screen, g.panel.Label(r), face, int(b.X)+config.PanelPadding, int(r.Top)+12, labelColor)

		switch r.Field.Kind {
		case config.KindRange:
			t := r.Track
			frac := g.panel.Fraction(r)
			vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.W), float32(t.H), trackColor, false)
			vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.W*frac), float32(t.H), accent, false)
			vector.DrawFilledCircle(screen, float32(t.X+t.W*frac), float32(t.Y+t.H/2), config.KnobRadius, labelColor, true)
		case config.KindCheckbox:
			box := r.Box
			vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, labelColor, false)
			if g.panel.Checked(r) {
				vector.DrawFilledRect(screen, float32(box.X+3), float32(box.Y+3), float32(box.W-6), float32(box.H-6), accent, false)
			}
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("Particles: %d  Lines: %d  FPS: %.0f", g.stats.Particles, g.frame.Count(render.OpLine), ebiten.ActualFPS())
	if g.sound {
		status += "  Sound: on (M)"
	} else {
		status += "  Sound: off (M)"
	}
	if !g.player.playing() {
		status += "  |  O: open soundtrack"
	} else if g.player.paused {
		status += "  |  Paused - Space to play"
	} else {
		status += "  |  Space to pause"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.player.playing() {
		g.drawLevelMeter(screen)
	}
}

func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	const (
		meterWidth  = 160
		meterHeight = 8
	)
	x := float32(g.width - meterWidth - 20)
	y := float32(g.height - meterHeight - 24)
	level := g.player.meter.Value()

	r, gr, b := colorful.Hsv(120*(1-level), 0.8, 0.9).RGB255()
	vector.DrawFilledRect(screen, x, y, meterWidth, meterHeight, trackColor, false)
	vector.DrawFilledRect(screen, x, y, float32(meterWidth*level), meterHeight, color.RGBA{R: r, G: gr, B: b, A: 255}, false)

	timing := formatDuration(g.player.position()) + " / " + formatDuration(g.player.duration)
	ebitenutil.DebugPrintAt(screen, timing, int(x), int(y)+meterHeight+4)
}
