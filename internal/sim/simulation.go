package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/particle"
	"github.com/iburimskiy/particle-canvas/internal/render"
)

// ErrNoCanvas is returned by Step when there is nothing to draw onto.
var ErrNoCanvas = errors.New("canvas is not defined")

// Stats summarizes one frame.
type Stats struct {
	Particles int
	Lines     int
	Removed   int
}

// Simulation owns the particle collection and the hue counter.
// It is not safe for concurrent use.
type Simulation struct {
	particles []*particle.Particle
	hue       float64
	rng       particle.Rand
}

func New(rng particle.Rand) *Simulation {
	return &Simulation{rng: rng}
}

// Spawn pushes s.CountOnClick particles at target. Nothing is added when the
// target is not established.
func (sm *Simulation) Spawn(target particle.Target, s config.Settings) (int, error) {
	if !target.Valid {
		return 0, fmt.Errorf("spawn: %w", particle.ErrNoTarget)
	}
	for i := 0; i < s.CountOnClick; i++ {
		p, err := particle.New(target, s, sm.hue, sm.rng)
		if err != nil {
			return i, fmt.Errorf("spawn: %w", err)
		}
		sm.particles = append(sm.particles, p)
	}
	return s.CountOnClick, nil
}

// Step runs one animation frame: every particle is updated and drawn, lines
// are drawn to every later particle (itself included) closer than
// s.MaxDistance, and dead particles are removed in the same pass.
func (sm *Simulation) Step(c render.Canvas, s config.Settings) (Stats, error) {
	if c == nil {
		log.Printf("%v", ErrNoCanvas)
		return Stats{Particles: len(sm.particles)}, ErrNoCanvas
	}
	c.Clear()

	var st Stats
	for i := 0; i < len(sm.particles); i++ {
		p := sm.particles[i]
		p.Update(s)
		p.Draw(c)

		for j := i; j < len(sm.particles); j++ {
			q := sm.particles[j]
			if particle.Distance(p, q) < s.MaxDistance {
				c.StrokeLine(p.X, p.Y, q.X, q.Y, config.LineWidth, p.Color)
				st.Lines++
			}
		}

		if p.Dead() {
			sm.remove(i)
			i--
			st.Removed++
		}
	}

	sm.hue += config.HueStep
	st.Particles = len(sm.particles)
	return st, nil
}

// remove deletes index i keeping insertion order.
func (sm *Simulation) remove(i int) {
	copy(sm.particles[i:], sm.particles[i+1:])
	sm.particles[len(sm.particles)-1] = nil
	sm.particles = sm.particles[:len(sm.particles)-1]
}

func (sm *Simulation) Len() int     { return len(sm.particles) }
func (sm *Simulation) Hue() float64 { return sm.hue }

// Particles exposes the collection for read-only inspection.
func (sm *Simulation) Particles() []*particle.Particle { return sm.particles }

// Reset drops every particle. The hue keeps rotating.
func (sm *Simulation) Reset() {
	clear(sm.particles)
	sm.particles = sm.particles[:0]
}
