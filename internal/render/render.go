// Package render draws one frame of the background onto a surface.
package render

import (
	"math"
	"time"

	"neural-bg/internal/core"
	"neural-bg/internal/field"
	"neural-bg/internal/surface"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade levels are quantized so gradient caches stay small; an engaged
// pointer never drops below the first step
const (
	fadeSteps = 32
	fadeFloor = 1.0 / fadeSteps
)

// Scene is the read-only state a frame is drawn from.
type Scene struct {
	Size     core.Size
	Pointer  *field.Pointer
	Glow     []field.Glow
	Symbols  []field.Symbol
	Graph    *field.Graph
	Follower *field.Follower // nil disables the cursor layer
}

// Renderer draws scenes in a fixed layer order. It keeps only the pointer
// glow fade between frames.
type Renderer struct {
	fade    *gween.Tween
	level   float64
	engaged bool
	last    time.Time

	stops []surface.Stop
	halo  [2]surface.Stop
}

// New returns a renderer with the pointer glow faded out.
func New() *Renderer {
	return &Renderer{}
}

// FadeLevel reports the current pointer glow strength in [0,1].
func (r *Renderer) FadeLevel() float64 { return r.level }

// Draw clears s and paints sc. now drives the orb motion and the fade.
func (r *Renderer) Draw(s surface.Surface, sc *Scene, now time.Time) {
	s.Clear()
	if sc.Size.Empty() {
		return
	}
	r.advanceFade(sc.Pointer.Engaged(), now)

	r.drawOrbs(s, sc.Size, core.Millis(now))
	if r.engaged {
		r.drawPointerGlow(s, sc.Pointer.Smoothed)
	}
	for i := range sc.Glow {
		r.drawGlow(s, &sc.Glow[i])
	}
	if sc.Graph != nil {
		for _, l := range sc.Graph.Links {
			s.StrokeLine(l.A.X, l.A.Y, l.B.X, l.B.Y, LinkWidth, surface.RGBA(Blue.R, Blue.G, Blue.B, l.Opacity))
		}
		for _, sp := range sc.Graph.Sparks {
			s.StrokeLine(sp.From.X, sp.From.Y, sp.To.X, sp.To.Y, SparkWidth, surface.RGBA(Cyan.R, Cyan.G, Cyan.B, sp.Opacity))
		}
	}
	for i := range sc.Symbols {
		sym := &sc.Symbols[i]
		pos := sym.Pos()
		s.DrawGlyph(sym.Glyph, pos.X, pos.Y, sym.FontSize, sym.Angle, surface.RGBA(Cyan.R, Cyan.G, Cyan.B, sym.Opacity))
	}
	if f := sc.Follower; f != nil && f.Visible {
		s.StrokeCircle(f.Outer.X, f.Outer.Y, FollowerRingRadius, FollowerRingWidth, surface.RGBA(Cyan.R, Cyan.G, Cyan.B, FollowerRingAlpha))
		s.FillCircle(f.Inner.X, f.Inner.Y, FollowerDotRadius, surface.RGBA(White.R, White.G, White.B, FollowerDotAlpha))
	}
}

// advanceFade restarts the tween each time the pointer becomes engaged.
func (r *Renderer) advanceFade(engaged bool, now time.Time) {
	var dt float32
	if !r.last.IsZero() && now.After(r.last) {
		dt = float32(now.Sub(r.last).Seconds())
	}
	r.last = now

	switch {
	case !engaged:
		r.fade = nil
		r.level = 0
	case !r.engaged:
		r.fade = gween.New(0, 1, PointerFadeIn, ease.OutQuad)
		r.level = fadeFloor
	default:
		if r.fade != nil {
			v, done := r.fade.Update(dt)
			r.level = math.Max(fadeFloor, math.Round(float64(v)*fadeSteps)/fadeSteps)
			if done {
				r.fade = nil
				r.level = 1
			}
		}
	}
	r.engaged = engaged
}

func (r *Renderer) drawOrbs(s surface.Surface, size core.Size, ms float64) {
	t := ms * OrbTimeScale
	w, h := float64(size.W), float64(size.H)
	for _, o := range Orbs {
		x, y := o.Center(w, h, t)
		s.FillRadial(x, y, o.Radius, o.Stops)
	}
}

// Center returns the orb center on a w×h surface at time t.
func (o Orb) Center(w, h, t float64) (float64, float64) {
	if o.Swap {
		return o.FX*w + math.Cos(o.SX*t)*o.AX, o.FY*h + math.Sin(o.SY*t)*o.AY
	}
	return o.FX*w + math.Sin(o.SX*t)*o.AX, o.FY*h + math.Cos(o.SY*t)*o.AY
}

func (r *Renderer) drawPointerGlow(s surface.Surface, at core.Vec2) {
	if r.level <= 0 {
		return
	}
	s.FillRadial(at.X, at.Y, PointerGlowRadius, r.scaled(pointerGlowStops))
	s.FillRadial(at.X, at.Y, PointerCoreRadius, r.scaled(pointerCoreStops))
}

// scaled returns stops with alpha multiplied by the fade level. The result
// aliases an internal buffer valid until the next call.
func (r *Renderer) scaled(stops []surface.Stop) []surface.Stop {
	r.stops = append(r.stops[:0], stops...)
	for i := range r.stops {
		r.stops[i].Color.A = uint8(float64(r.stops[i].Color.A)*r.level + 0.5)
	}
	return r.stops
}

func (r *Renderer) drawGlow(s surface.Surface, g *field.Glow) {
	pos := g.Pos()
	s.FillCircle(pos.X, pos.Y, g.Radius, surface.RGBA(Blue.R, Blue.G, Blue.B, g.Current))
	r.halo[0] = surface.Stop{Offset: 0, Color: surface.RGBA(Blue.R, Blue.G, Blue.B, g.Current*HaloOpacity)}
	r.halo[1] = surface.Stop{Offset: 1, Color: surface.Transparent(Blue)}
	s.FillRadial(pos.X, pos.Y, g.Radius*HaloRadiusMul, r.halo[:])
}
