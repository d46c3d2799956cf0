// Package backdrop mounts the animated background on a host: it owns the
// viewport, the particle state, the listener handles and the frame loop.
package backdrop

import (
	"neural-bg/internal/core"
	"neural-bg/internal/input"
	"neural-bg/internal/surface"
)

// Host is the environment the background is embedded in.
type Host interface {
	// Viewport reports the current display size in pixels.
	Viewport() core.Size
	// Surface returns the drawing target. An error means no rendering is
	// possible and the background stays dormant.
	Surface() (surface.Surface, error)
	// Listen registers fn for host events of the given kind.
	Listen(kind input.Kind, fn func(input.Event)) input.Listener
}

// Viewport keeps the surface sized to the host.
type Viewport struct {
	host Host
	surf surface.Surface
}

// NewViewport binds a host to its surface.
func NewViewport(host Host, surf surface.Surface) *Viewport {
	return &Viewport{host: host, surf: surf}
}

// Resize matches the surface pixel size to the host viewport. Negative
// sizes clamp to zero.
func (v *Viewport) Resize() core.Size {
	vp := v.host.Viewport()
	v.surf.SetSize(max(vp.W, 0), max(vp.H, 0))
	return v.surf.Size()
}
