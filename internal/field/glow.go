package field

import (
	"math"

	"neural-bg/internal/core"
)

// Glow is one node of the neural field.
type Glow struct {
	BaseX, BaseY float64
	VX, VY       float64
	Depth        float64

	Radius, BaseRadius   float64
	Opacity, BaseOpacity float64
	Current              float64 // pulsed opacity used for drawing

	PulseSpeed float64 // radians per millisecond
	PulsePhase float64

	Offset   core.Vec2
	Velocity core.Vec2
}

// Pos returns the rendered position.
func (g *Glow) Pos() core.Vec2 {
	return core.Vec2{X: g.BaseX + g.Offset.X, Y: g.BaseY + g.Offset.Y}
}

// ResetGlow randomizes every field of g for a surface of the given size.
func ResetGlow(g *Glow, size core.Size, rng *core.RNG) {
	depth := rng.Range(MinDepth, 1)
	*g = Glow{
		BaseX:      rng.Float64() * float64(size.W),
		BaseY:      rng.Float64() * float64(size.H),
		VX:         rng.Centered(GlowDrift),
		VY:         rng.Centered(GlowDrift),
		Depth:      depth,
		BaseRadius: rng.Range(GlowRadiusMin, GlowRadiusMax) * (0.5 + 0.5*depth),
		// far layers are dimmer
		BaseOpacity: rng.Range(GlowOpacityMin, GlowOpacityMax) * (0.4 + 0.6*depth),
		PulseSpeed:  rng.Range(GlowPulseMin, GlowPulseMax),
		PulsePhase:  rng.Float64() * 2 * math.Pi,
	}
	g.Radius = g.BaseRadius
	g.Opacity = g.BaseOpacity
	g.Current = g.Opacity
}

// UpdateGlow advances g by one frame. ms is the wall clock in milliseconds.
func UpdateGlow(g *Glow, p *Pointer, size core.Size, ms float64) {
	r := Apply(g.Pos(), g.Offset, g.Velocity, g.Depth, p, size, GlowLayer)
	g.Offset = r.Offset
	g.Velocity = r.Velocity
	if r.Force > 0 {
		g.Radius = g.BaseRadius * (1 + r.Force*GlowRadiusBoost)
		g.Opacity = math.Min(1, g.BaseOpacity*(1+r.Force*GlowOpacityBoost))
	} else {
		g.Radius = g.BaseRadius
		g.Opacity = g.BaseOpacity
	}

	g.BaseX = core.Wrap(g.BaseX+g.VX, float64(size.W))
	g.BaseY = core.Wrap(g.BaseY+g.VY, float64(size.H))

	g.Current = g.Opacity * (0.5 + 0.5*math.Sin(ms*g.PulseSpeed+g.PulsePhase))
}
