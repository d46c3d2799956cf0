//go:build ebiten

package app

import (
	"neural-bg/internal/core"
	"neural-bg/internal/input"
	"neural-bg/internal/surface"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host adapts the ebiten window to backdrop.Host. Cursor and touch state is
// polled once per update and turned into events.
type Host struct {
	screen *surface.Screen
	d      input.Dispatcher
	size   core.Size

	inside      bool
	lastX       int
	lastY       int
	touchActive bool
	touchIDs    []ebiten.TouchID
	touches     []input.Point
}

// NewHost returns a host for a window of the given size.
func NewHost(w, h int) *Host {
	return &Host{size: core.Size{W: w, H: h}}
}

func (h *Host) Viewport() core.Size { return h.size }

// Surface allocates the offscreen target on first use.
func (h *Host) Surface() (surface.Surface, error) {
	if h.screen == nil {
		s, err := surface.NewScreen(h.size.W, h.size.H)
		if err != nil {
			return nil, err
		}
		h.screen = s
	}
	return h.screen, nil
}

func (h *Host) Listen(kind input.Kind, fn func(input.Event)) input.Listener {
	return h.d.Listen(kind, fn)
}

// Image returns the offscreen target, or nil before Surface succeeded.
func (h *Host) Image() *ebiten.Image {
	if h.screen == nil {
		return nil
	}
	return h.screen.Image()
}

// SetViewport records the window size and raises a resize when it changed.
func (h *Host) SetViewport(w, ht int) {
	if h.size.W == w && h.size.H == ht {
		return
	}
	h.size = core.Size{W: w, H: ht}
	h.d.Dispatch(input.Event{Kind: input.Resize})
}

// Poll converts the current touch and cursor state into events.
func (h *Host) Poll() {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	if len(h.touchIDs) > 0 {
		h.touches = h.touches[:0]
		for _, id := range h.touchIDs {
			x, y := ebiten.TouchPosition(id)
			h.touches = append(h.touches, input.Point{X: float64(x), Y: float64(y)})
		}
		h.touchActive = true
		h.d.Dispatch(input.Event{Kind: input.TouchMove, Touches: h.touches})
		return
	}
	if h.touchActive {
		h.touchActive = false
		h.d.Dispatch(input.Event{Kind: input.TouchEnd})
	}

	x, y := ebiten.CursorPosition()
	in := ebiten.IsFocused() && x >= 0 && y >= 0 && x < h.size.W && y < h.size.H
	switch {
	case in && (!h.inside || x != h.lastX || y != h.lastY):
		h.d.Dispatch(input.Event{Kind: input.PointerMove, X: float64(x), Y: float64(y)})
	case !in && h.inside:
		h.d.Dispatch(input.Event{Kind: input.PointerLeave})
	}
	h.inside = in
	h.lastX, h.lastY = x, y
}
