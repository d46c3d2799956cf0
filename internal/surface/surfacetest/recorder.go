// Package surfacetest provides a Surface that records draw calls.
package surfacetest

import (
	"image/color"

	"neural-bg/internal/core"
	"neural-bg/internal/surface"
)

// Op names a recorded call.
type Op string

const (
	OpClear        Op = "clear"
	OpFillRadial   Op = "radial"
	OpFillCircle   Op = "circle"
	OpStrokeCircle Op = "ring"
	OpStrokeLine   Op = "line"
	OpDrawGlyph    Op = "glyph"
)

// Call is one recorded draw call.
type Call struct {
	Op     Op
	X, Y   float64
	X1, Y1 float64
	R      float64
	Width  float64
	Color  color.NRGBA
	Stops  []surface.Stop
	Glyph  string
	Angle  float64
}

// Recorder implements surface.Surface. Clear does not drop the log; use Reset.
type Recorder struct {
	W, H  int
	Calls []Call
}

var _ surface.Surface = (*Recorder)(nil)

func New(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() core.Size { return core.Size{W: r.W, H: r.H} }

func (r *Recorder) SetSize(w, h int) { r.W, r.H = max(w, 0), max(h, 0) }

func (r *Recorder) Clear() { r.Calls = append(r.Calls, Call{Op: OpClear}) }

func (r *Recorder) FillRadial(cx, cy, radius float64, stops []surface.Stop) {
	r.Calls = append(r.Calls, Call{Op: OpFillRadial, X: cx, Y: cy, R: radius, Stops: append([]surface.Stop(nil), stops...)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeCircle, X: cx, Y: cy, R: radius, Width: width, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) DrawGlyph(glyph string, x, y, size, angle float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpDrawGlyph, Glyph: glyph, X: x, Y: y, R: size, Angle: angle, Color: c})
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded operation sequence.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}
