package particle

import (
	"errors"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/render"
)

// ErrNoTarget is returned when a particle is built before any spawn target exists.
var ErrNoTarget = errors.New("no x or y coordinate")

// Target is the last known spawn location. The zero value is "not established".
type Target struct {
	X, Y  float64
	Valid bool
}

func At(x, y float64) Target { return Target{X: x, Y: y, Valid: true} }

// Rand is the randomness source a particle draws its size and velocity from.
type Rand interface {
	Float64() float64
}

type Particle struct {
	X, Y   float64
	Size   float64
	SpeedX float64
	SpeedY float64
	Hue    float64
	Color  color.RGBA
}

// New builds a particle at target. Size is drawn from [1, s.Size+1), each
// velocity component from [-s.MoveSpeed/2, s.MoveSpeed/2).
func New(target Target, s config.Settings, hue float64, rng Rand) (*Particle, error) {
	if !target.Valid {
		return nil, ErrNoTarget
	}
	return &Particle{
		X:      target.X,
		Y:      target.Y,
		Size:   rng.Float64()*s.Size + 1,
		SpeedX: rng.Float64()*s.MoveSpeed - s.MoveSpeed/2,
		SpeedY: rng.Float64()*s.MoveSpeed - s.MoveSpeed/2,
		Hue:    hue,
		Color:  HueColor(hue),
	}, nil
}

// Update moves the particle one frame and shrinks it.
func (p *Particle) Update(s config.Settings) {
	p.X += p.SpeedX
	p.Y += p.SpeedY

	if p.Size > config.ShrinkFloor {
		p.Size -= s.DecreaseSize
	}
}

func (p *Particle) Dead() bool { return p.Size <= config.DeathThreshold }

func (p *Particle) Draw(c render.Canvas) {
	c.FillCircle(p.X, p.Y, p.Size, p.Color)
}

// Distance is the Euclidean distance between two particle centers.
func Distance(a, b *Particle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// HueColor is hsl(hue, 100%, 50%), with hue wrapping around the color wheel.
func HueColor(hue float64) color.RGBA {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, 1, 0.5).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
