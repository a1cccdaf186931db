package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/game"
)

func main() {
	log.SetPrefix("particles: ")
	log.SetFlags(log.Ltime)

	def := config.Default()
	var (
		count    = flag.Int("count", def.CountOnClick, "particles per click / tick")
		speed    = flag.Float64("speed", def.MoveSpeed, "particle move speed")
		size     = flag.Float64("size", def.Size, "max particle size")
		distance = flag.Float64("distance", def.MaxDistance, "line break distance")
		decrease = flag.Float64("decrease", def.DecreaseSize, "per-frame shrink")
		auto     = flag.Bool("auto", def.GenerateAutomatically, "generate particles automatically")
		sound    = flag.Bool("sound", false, "play a blip on every spawn")
		hide     = flag.Bool("hide-settings", false, "start with the settings panel hidden")
		width    = flag.Int("width", config.WindowWidth, "window width")
		height   = flag.Int("height", config.WindowHeight, "window height")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	// Flags go through the store so they get the panel's clamping and steps
	store := config.NewStore(def)
	for name, v := range map[string]float64{
		"countOnClick": float64(*count),
		"moveSpeed":    *speed,
		"size":         *size,
		"maxDistance":  *distance,
		"decreaseSize": *decrease,
	} {
		if err := store.SetNumber(name, v); err != nil {
			log.Fatal(err)
		}
	}
	if *auto != def.GenerateAutomatically {
		if err := store.Toggle("generateAutomatically"); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particles - move the mouse or click, H: settings, O: soundtrack, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(game.Options{
		Store:        store,
		Seed:         *seed,
		Sound:        *sound,
		ShowSettings: !*hide,
		Width:        *width,
		Height:       *height,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
