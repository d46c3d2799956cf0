package field

import (
	"math"

	"neural-bg/internal/core"
)

// Layer describes how one particle species responds to the pointer.
type Layer struct {
	Radius   float64 // proximity influence radius
	Strength float64 // velocity impulse at full force
	Angle    float64 // push direction off radial; 0 repels straight out
	Damping  float64
}

var (
	// GlowLayer pushes glow particles radially away from the pointer.
	GlowLayer = Layer{Radius: MouseRadius, Strength: RepelStrength, Damping: GlowDamping}
	// SymbolLayer swirls symbols around the pointer over a wider radius.
	SymbolLayer = Layer{Radius: MouseRadius * SymbolRadiusMul, Strength: SwirlStrength, Angle: SwirlAngle, Damping: SymbolDamping}
)

// Response is the force field result for one particle in one frame.
type Response struct {
	Offset   core.Vec2
	Velocity core.Vec2
	Force    float64 // proximity force in [0,1]; 0 when out of range
}

// ParallaxTarget returns the offset a particle at the given depth settles at
// for the current pointer position. The pointer displacement from the surface
// center is normalized by the half extent, so near layers swing furthest.
func ParallaxTarget(p *Pointer, size core.Size, depth float64) core.Vec2 {
	if !p.Engaged() || size.Empty() {
		return core.Vec2{}
	}
	c := size.Center()
	n := core.Vec2{
		X: core.Clamp((p.Smoothed.X-c.X)/c.X, -1, 1),
		Y: core.Clamp((p.Smoothed.Y-c.Y)/c.Y, -1, 1),
	}
	return n.Scale(ParallaxStrength * depth)
}

// Proximity returns the unit push direction and force for a particle at pos.
// The force is zero outside the layer radius or when the pointer is not engaged.
func Proximity(pos core.Vec2, p *Pointer, l Layer) (core.Vec2, float64) {
	if !p.Engaged() || l.Radius <= 0 {
		return core.Vec2{}, 0
	}
	d := pos.Sub(p.Smoothed)
	dist := d.Len()
	if dist >= l.Radius {
		return core.Vec2{}, 0
	}
	force := (l.Radius - dist) / l.Radius
	angle := math.Atan2(d.Y, d.X) + l.Angle
	return core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}, force
}

// Apply advances one particle's spring-damped pointer offset.
func Apply(pos, offset, vel core.Vec2, depth float64, p *Pointer, size core.Size, l Layer) Response {
	target := ParallaxTarget(p, size, depth)
	vel = vel.Add(target.Sub(offset).Scale(SpringRate))
	if p.Engaged() {
		vel = vel.Add(p.Velocity.Scale(depth * MomentumFactor))
	}
	dir, force := Proximity(pos, p, l)
	if force > 0 {
		vel = vel.Add(dir.Scale(force * l.Strength * depth))
	}
	vel = vel.Scale(l.Damping)
	return Response{Offset: offset.Add(vel), Velocity: vel, Force: force}
}
