package field

import "neural-bg/internal/core"

// Pointer is the tracked pointer state. Input callbacks write Target and
// Active; Step derives Smoothed and Velocity once per frame. The force field
// only reads it.
type Pointer struct {
	Target    core.Vec2
	HasTarget bool

	Smoothed    core.Vec2
	HasSmoothed bool

	Velocity core.Vec2
	Active   bool
}

// OnMove records a pointer or single-touch position.
func (p *Pointer) OnMove(x, y float64) {
	p.Target = core.Vec2{X: x, Y: y}
	p.HasTarget = true
	p.Active = true
}

// OnLeave marks the pointer inactive. The target is kept so motion decays
// instead of snapping.
func (p *Pointer) OnLeave() {
	p.Active = false
}

// Step advances the smoothed position toward the target.
func (p *Pointer) Step() {
	if !p.HasTarget {
		return
	}
	if !p.HasSmoothed {
		p.Smoothed = p.Target
		p.HasSmoothed = true
		p.Velocity = core.Vec2{}
		return
	}
	prev := p.Smoothed
	p.Smoothed = p.Smoothed.Add(p.Target.Sub(p.Smoothed).Scale(SmoothingFactor))
	p.Velocity = p.Smoothed.Sub(prev)
}

// Engaged reports whether the pointer should influence particles this frame.
func (p *Pointer) Engaged() bool {
	return p.Active && p.HasSmoothed
}
