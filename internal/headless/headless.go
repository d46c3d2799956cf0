// Package headless runs the background off-screen on a raster surface with
// a scripted pointer and a manual clock.
package headless

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"neural-bg/internal/backdrop"
	"neural-bg/internal/core"
	"neural-bg/internal/frame"
	"neural-bg/internal/input"
	"neural-bg/internal/surface"
)

var (
	// ErrNoSurface is returned when the background could not be mounted.
	ErrNoSurface = errors.New("headless: surface unavailable")
	// ErrEmptyViewport is returned for a host with zero width or height.
	ErrEmptyViewport = errors.New("headless: empty viewport")
)

// Host is an in-memory backdrop.Host.
type Host struct {
	size   core.Size
	raster *surface.Raster
	d      input.Dispatcher
}

// NewHost returns a host with a fixed viewport.
func NewHost(w, h int) *Host {
	return &Host{size: core.Size{W: w, H: h}}
}

func (h *Host) Viewport() core.Size { return h.size }

func (h *Host) Surface() (surface.Surface, error) {
	if h.raster == nil {
		r, err := surface.NewRaster(h.size.W, h.size.H)
		if err != nil {
			return nil, err
		}
		h.raster = r
	}
	return h.raster, nil
}

func (h *Host) Listen(kind input.Kind, fn func(input.Event)) input.Listener {
	return h.d.Listen(kind, fn)
}

// Dispatch delivers ev to the mounted background.
func (h *Host) Dispatch(ev input.Event) { h.d.Dispatch(ev) }

// Path scripts the pointer: for each frame it returns a position, or ok=false
// while the pointer is outside the surface.
type Path func(frame int) (x, y float64, ok bool)

// Orbit circles the surface center once over frames, leaving the surface for
// the final fifth of the run.
func Orbit(size core.Size, frames int) Path {
	c := size.Center()
	r := float64(min(size.W, size.H)) / 4
	active := frames - frames/5
	return func(i int) (float64, float64, bool) {
		if i >= active || active <= 0 {
			return 0, 0, false
		}
		a := 2 * math.Pi * float64(i) / float64(active)
		return c.X + r*math.Cos(a), c.Y + r*math.Sin(a), true
	}
}

// Run describes one off-screen rendering session.
type Run struct {
	Frames int
	// Every emits one image each Every frames. Zero emits only the last.
	Every int
	// Interval is the simulated time between frames.
	Interval time.Duration
	Start    time.Time
	Path     Path
}

// Render mounts the background on host, plays run through a frame queue
// and passes the selected frames to emit. The image is reused between
// calls.
func Render(host *Host, cfg backdrop.Config, run Run, emit func(frame int, img *image.RGBA) error) error {
	if host.Viewport().Empty() {
		return ErrEmptyViewport
	}
	if run.Interval <= 0 {
		run.Interval = time.Second / 60
	}
	if run.Start.IsZero() {
		run.Start = time.Unix(0, 0)
	}
	clock := core.NewManualClock(run.Start)
	var q frame.Queue
	bg := backdrop.Mount(host, &q, cfg, backdrop.WithClock(clock))
	defer bg.Unmount()
	if bg.State() != backdrop.Running {
		return ErrNoSurface
	}

	inside := false
	for i := 0; i < run.Frames; i++ {
		if run.Path != nil {
			if x, y, ok := run.Path(i); ok {
				host.Dispatch(input.Event{Kind: input.PointerMove, X: x, Y: y})
				inside = true
			} else if inside {
				host.Dispatch(input.Event{Kind: input.PointerLeave})
				inside = false
			}
		}
		clock.Advance(run.Interval)
		q.Flush()

		last := i == run.Frames-1
		if (run.Every > 0 && (i+1)%run.Every == 0) || (run.Every <= 0 && last) {
			if err := emit(i, host.raster.Image()); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
	}
	return nil
}
