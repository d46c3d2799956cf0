package field

import "neural-bg/internal/core"

// Follower trails the raw pointer target with two lagging points: a fast
// inner dot and a slower outer ring.
type Follower struct {
	Inner   core.Vec2
	Outer   core.Vec2
	Visible bool

	placed bool
}

// Step moves both points toward the pointer target.
func (f *Follower) Step(p *Pointer) {
	f.Visible = p.Active && p.HasTarget
	if !p.HasTarget {
		return
	}
	if !f.placed {
		f.Inner, f.Outer = p.Target, p.Target
		f.placed = true
		return
	}
	f.Inner = f.Inner.Add(p.Target.Sub(f.Inner).Scale(FollowerInnerRate))
	f.Outer = f.Outer.Add(p.Target.Sub(f.Outer).Scale(FollowerOuterRate))
}
