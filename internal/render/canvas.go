package render

import "image/color"

// Canvas is the 2D drawing surface the simulation renders onto.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA)
}

type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// Op is one recorded drawing call.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	R, Width       float64
	Color          color.RGBA
}

// DisplayList records drawing calls so a frame computed in Update can be
// replayed in Draw.
type DisplayList struct {
	ops []Op
}

func (d *DisplayList) Clear() {
	d.ops = d.ops[:0]
	d.ops = append(d.ops, Op{Kind: OpClear})
}

func (d *DisplayList) FillCircle(x, y, r float64, c color.RGBA) {
	d.ops = append(d.ops, Op{Kind: OpCircle, X1: x, Y1: y, R: r, Color: c})
}

func (d *DisplayList) StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	d.ops = append(d.ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Ops returns the recorded calls. The slice is reused by the next Clear.
func (d *DisplayList) Ops() []Op { return d.ops }

// Count returns how many ops of kind k are recorded.
func (d *DisplayList) Count(k OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Replay issues the recorded calls onto dst in order.
func (d *DisplayList) Replay(dst Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpCircle:
			dst.FillCircle(op.X1, op.Y1, op.R, op.Color)
		case OpLine:
			dst.StrokeLine(op.X1, op.Y1, op.X2, op.Y2, op.Width, op.Color)
		}
	}
}
