package sim

import (
	"time"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/particle"
)

// AutoSpawner picks random viewport targets on a fixed interval while
// automatic generation is on. While it is off no time accumulates, so turning
// it back on starts a fresh interval.
type AutoSpawner struct {
	Interval Interval
}

func NewAutoSpawner() *AutoSpawner {
	return &AutoSpawner{Interval: Interval{Every: config.AutoSpawnInterval}}
}

// Tick advances by dt and returns one target per fire inside [0,w)x[0,h).
func (a *AutoSpawner) Tick(dt time.Duration, s config.Settings, w, h int, rng particle.Rand) []particle.Target {
	if !s.GenerateAutomatically {
		a.Interval.Reset()
		return nil
	}
	fires := a.Interval.Advance(dt)
	if fires == 0 {
		return nil
	}
	targets := make([]particle.Target, fires)
	for i := range targets {
		targets[i] = particle.At(float64(w)*rng.Float64(), float64(h)*rng.Float64())
	}
	return targets
}
