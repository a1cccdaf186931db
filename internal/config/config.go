package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Particle lifecycle
	ShrinkFloor    = 0.2 // size only shrinks while above this
	DeathThreshold = 0.3 // particle is removed at or below this size

	// Frame loop
	HueStep   = 0.5
	LineWidth = 0.1

	AutoSpawnInterval = 100 * time.Millisecond
	DoubleClickWindow = 300 * time.Millisecond

	// Spawn blip
	BlipDuration = 60 * time.Millisecond
	BlipCooldown = 50 * time.Millisecond
	BlipVolume   = 0.15

	// Soundtrack tap
	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Settings panel
	PanelX       = 12
	PanelY       = 40
	PanelWidth   = 260
	PanelPadding = 10
	RowHeight    = 34
	SliderHeight = 6
	KnobRadius   = 6
	CheckboxSize = 12
)
