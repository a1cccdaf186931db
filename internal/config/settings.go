package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownField is returned when a field name is not in the field table.
var ErrUnknownField = errors.New("unknown settings field")

// Settings are the live-tunable simulation parameters.
type Settings struct {
	CountOnClick          int
	MoveSpeed             float64
	Size                  float64 // max initial radius
	MaxDistance           float64 // proximity line threshold
	GenerateAutomatically bool
	DecreaseSize          float64 // per-frame shrink
}

// Default returns the settings the program starts with.
func Default() Settings {
	return Settings{
		CountOnClick:          2,
		MoveSpeed:             1,
		Size:                  10,
		MaxDistance:           100,
		GenerateAutomatically: true,
		DecreaseSize:          0.01,
	}
}

type Kind int

const (
	KindRange Kind = iota
	KindCheckbox
)

// Field describes one panel binding.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	Min   float64
	Max   float64
	Step  float64
}

// Fields is the panel layout, in display order.
var Fields = []Field{
	{Name: "countOnClick", Label: "Particles per click / tick", Kind: KindRange, Min: 1, Max: 10, Step: 1},
	{Name: "moveSpeed", Label: "Move speed", Kind: KindRange, Min: 1, Max: 10, Step: 1},
	{Name: "size", Label: "Max particle size", Kind: KindRange, Min: 1, Max: 20, Step: 1},
	{Name: "maxDistance", Label: "Line break distance", Kind: KindRange, Min: 1, Max: 200, Step: 1},
	{Name: "decreaseSize", Label: "Shrink speed", Kind: KindRange, Min: 0.01, Max: 0.1, Step: 0.01},
	{Name: "generateAutomatically", Label: "Generate automatically", Kind: KindCheckbox},
}

// Lookup finds a field by name.
func Lookup(name string) (Field, error) {
	for _, f := range Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Snap rounds v to the field's step and clamps it to [Min, Max].
func (f Field) Snap(v float64) float64 {
	if f.Step > 0 {
		v = f.Min + math.Round((v-f.Min)/f.Step)*f.Step
		// keep 0.01 steps from drifting to 0.030000000000000002
		v = math.Round(v*1e6) / 1e6
	}
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// Fraction maps v onto [0, 1] across the field's range.
func (f Field) Fraction(v float64) float64 {
	if f.Max <= f.Min {
		return 0
	}
	return (v - f.Min) / (f.Max - f.Min)
}

// Number reads a numeric field. Checkbox fields read as 0 or 1.
func (s Settings) Number(name string) (float64, error) {
	switch name {
	case "countOnClick":
		return float64(s.CountOnClick), nil
	case "moveSpeed":
		return s.MoveSpeed, nil
	case "size":
		return s.Size, nil
	case "maxDistance":
		return s.MaxDistance, nil
	case "decreaseSize":
		return s.DecreaseSize, nil
	case "generateAutomatically":
		if s.GenerateAutomatically {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (s *Settings) setNumber(name string, v float64) error {
	switch name {
	case "countOnClick":
		s.CountOnClick = int(math.Round(v))
	case "moveSpeed":
		s.MoveSpeed = v
	case "size":
		s.Size = v
	case "maxDistance":
		s.MaxDistance = v
	case "decreaseSize":
		s.DecreaseSize = v
	case "generateAutomatically":
		s.GenerateAutomatically = v != 0
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}
