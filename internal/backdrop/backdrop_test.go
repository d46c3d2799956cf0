package backdrop

import (
	"errors"
	"flag"
	"math"
	"testing"
	"time"

	"neural-bg/internal/core"
	"neural-bg/internal/field"
	"neural-bg/internal/frame"
	"neural-bg/internal/input"
	"neural-bg/internal/surface"
	"neural-bg/internal/surface/surfacetest"
)

var epoch = time.Unix(1_700_000_000, 0)

type fakeHost struct {
	size core.Size
	surf surface.Surface
	err  error

	d        input.Dispatcher
	attached int
	removed  int
}

func newHost(w, h int) *fakeHost {
	return &fakeHost{size: core.Size{W: w, H: h}, surf: surfacetest.New(0, 0)}
}

func (h *fakeHost) Viewport() core.Size { return h.size }

func (h *fakeHost) Surface() (surface.Surface, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.surf, nil
}

func (h *fakeHost) Listen(kind input.Kind, fn func(input.Event)) input.Listener {
	h.attached++
	return &countingListener{inner: h.d.Listen(kind, fn), removed: &h.removed}
}

type countingListener struct {
	inner   input.Listener
	removed *int
}

func (l *countingListener) Remove() {
	*l.removed++
	l.inner.Remove()
}

type countingFrames struct {
	frame.Queue
	requests int
	cancels  int
}

func (f *countingFrames) Request(fn func()) frame.ID {
	f.requests++
	return f.Queue.Request(fn)
}

func (f *countingFrames) Cancel(id frame.ID) {
	f.cancels++
	f.Queue.Cancel(id)
}

func mount(t *testing.T, h *fakeHost, cfg Config) (*Scheduler, *countingFrames, *core.ManualClock) {
	t.Helper()
	frames := &countingFrames{}
	clock := core.NewManualClock(epoch)
	return Mount(h, frames, cfg, WithClock(clock)), frames, clock
}

func TestMountStartsRunning(t *testing.T) {
	h := newHost(600, 400)
	s, frames, _ := mount(t, h, Config{Seed: 7})
	if s.State() != Running {
		t.Fatalf("state = %v, want running", s.State())
	}
	if h.attached != 5 {
		t.Fatalf("attached listeners = %d, want 5", h.attached)
	}
	if frames.requests != 1 || frames.Len() != 1 {
		t.Fatalf("requests = %d pending = %d, want 1 and 1", frames.requests, frames.Len())
	}
	if sz := h.surf.Size(); sz.W != 600 || sz.H != 400 {
		t.Fatalf("surface size = %+v", sz)
	}
	if n := len(s.Pool().Glow); n != field.GlowCount(600*400) {
		t.Fatalf("glow = %d, want %d", n, field.GlowCount(600*400))
	}
}

func TestMountWithoutSurfaceIsDormant(t *testing.T) {
	h := newHost(600, 400)
	h.err = errors.New("no context")
	s, frames, _ := mount(t, h, DefaultConfig())
	if s.State() != Stopped {
		t.Fatalf("state = %v, want stopped", s.State())
	}
	if h.attached != 0 || frames.requests != 0 || s.Pool() != nil {
		t.Fatalf("attached=%d requests=%d pool=%v, want nothing", h.attached, frames.requests, s.Pool())
	}
	s.Step(epoch)
	s.Unmount()
	if frames.cancels != 0 || s.Ticks() != 0 {
		t.Fatalf("cancels=%d ticks=%d", frames.cancels, s.Ticks())
	}
}

func TestFramesDriveTicks(t *testing.T) {
	h := newHost(600, 400)
	s, frames, clock := mount(t, h, Config{Seed: 3})
	for i := 0; i < 5; i++ {
		clock.Advance(16 * time.Millisecond)
		if n := frames.Flush(); n != 1 {
			t.Fatalf("flush %d ran %d callbacks, want 1", i, n)
		}
	}
	if s.Ticks() != 5 {
		t.Fatalf("ticks = %d, want 5", s.Ticks())
	}
	if frames.Len() != 1 {
		t.Fatalf("pending = %d, want the next frame queued", frames.Len())
	}
}

func TestUnmountStopsTicksAndRemovesListeners(t *testing.T) {
	h := newHost(600, 400)
	s, frames, _ := mount(t, h, Config{Seed: 3})
	frames.Flush()
	frames.Flush()
	before := s.Ticks()

	s.Unmount()
	for i := 0; i < 10; i++ {
		frames.Flush()
	}
	if s.Ticks() != before {
		t.Fatalf("ticks after unmount = %d, want %d", s.Ticks(), before)
	}
	if frames.Len() != 0 {
		t.Fatalf("pending after unmount = %d", frames.Len())
	}
	if frames.cancels != 1 {
		t.Fatalf("cancels = %d, want 1", frames.cancels)
	}
	if h.removed != h.attached {
		t.Fatalf("removed %d of %d listeners", h.removed, h.attached)
	}
	for k := input.PointerMove; k <= input.Resize; k++ {
		if n := h.d.Count(k); n != 0 {
			t.Fatalf("%v still has %d callbacks", k, n)
		}
	}

	s.Unmount()
	if h.removed != h.attached || frames.cancels != 1 {
		t.Fatalf("second unmount changed counts: removed=%d cancels=%d", h.removed, frames.cancels)
	}

	h.d.Dispatch(input.Event{Kind: input.PointerMove, X: 10, Y: 10})
	if s.Pointer().HasTarget {
		t.Fatal("pointer updated after unmount")
	}
}

func TestUnmountDuringFlush(t *testing.T) {
	h := newHost(600, 400)
	frames := &countingFrames{}
	var s *Scheduler
	// queued ahead of the scheduler's own request
	frames.Request(func() { s.Unmount() })
	s = Mount(h, frames, Config{Seed: 1}, WithClock(core.NewManualClock(epoch)))
	frames.Flush()
	if s.Ticks() != 0 {
		t.Fatalf("ticks = %d, want the canceled frame skipped", s.Ticks())
	}
	if frames.Len() != 0 {
		t.Fatalf("pending = %d", frames.Len())
	}
}

func TestUnmountFromEarlierListener(t *testing.T) {
	h := newHost(600, 400)
	var s *Scheduler
	h.d.Listen(input.Resize, func(input.Event) { s.Unmount() })
	s, frames, _ := mount(t, h, Config{Seed: 1})

	h.size = core.Size{W: 800, H: 500}
	h.d.Dispatch(input.Event{Kind: input.Resize})

	if s.State() != Stopped {
		t.Fatalf("state = %v, want stopped", s.State())
	}
	if h.removed != h.attached {
		t.Fatalf("removed %d of %d listeners", h.removed, h.attached)
	}
	if sz := h.surf.Size(); sz.W != 600 || sz.H != 400 {
		t.Fatalf("surface resized after unmount: %+v", sz)
	}
	if n := frames.Flush(); n != 0 {
		t.Fatalf("flush ran %d callbacks after unmount", n)
	}
}

func TestPointerAndTouchEvents(t *testing.T) {
	h := newHost(600, 400)
	s, _, _ := mount(t, h, Config{Seed: 1})
	p := s.Pointer()

	h.d.Dispatch(input.Event{Kind: input.TouchMove})
	if p.HasTarget || p.Active {
		t.Fatal("touch move without touches changed the pointer")
	}

	h.d.Dispatch(input.Event{Kind: input.TouchMove, Touches: []input.Point{{X: 30, Y: 40}, {X: 1, Y: 1}}})
	if !p.Active || p.Target != (core.Vec2{X: 30, Y: 40}) {
		t.Fatalf("pointer after touch = %+v", p)
	}
	h.d.Dispatch(input.Event{Kind: input.TouchEnd})
	if p.Active {
		t.Fatal("touch end left pointer active")
	}

	h.d.Dispatch(input.Event{Kind: input.PointerMove, X: 5, Y: 6})
	if !p.Active || p.Target != (core.Vec2{X: 5, Y: 6}) {
		t.Fatalf("pointer after move = %+v", p)
	}
	h.d.Dispatch(input.Event{Kind: input.PointerLeave})
	if p.Active || p.Target != (core.Vec2{X: 5, Y: 6}) {
		t.Fatalf("pointer after leave = %+v, want inactive with target kept", p)
	}
}

func TestResizeKeepsPopulation(t *testing.T) {
	h := newHost(600, 400)
	s, _, _ := mount(t, h, Config{Seed: 1})
	glow := len(s.Pool().Glow)

	h.size = core.Size{W: 1200, H: 900}
	h.d.Dispatch(input.Event{Kind: input.Resize})
	if sz := h.surf.Size(); sz.W != 1200 || sz.H != 900 {
		t.Fatalf("surface size = %+v", sz)
	}
	if len(s.Pool().Glow) != glow {
		t.Fatalf("glow = %d after resize, want %d", len(s.Pool().Glow), glow)
	}

	s.Reset(9)
	if n := len(s.Pool().Glow); n != field.GlowCount(1200*900) {
		t.Fatalf("glow after reset = %d, want %d", n, field.GlowCount(1200*900))
	}
	if s.Seed() != 9 {
		t.Fatalf("seed = %d", s.Seed())
	}
}

func TestEmptyViewportSkipsFrames(t *testing.T) {
	h := newHost(-10, 300)
	s, frames, _ := mount(t, h, Config{Seed: 1})
	if sz := h.surf.Size(); sz.W != 0 || sz.H != 300 {
		t.Fatalf("surface size = %+v, want clamped width", sz)
	}
	if len(s.Pool().Glow) != 0 || len(s.Pool().Symbols) != 0 {
		t.Fatal("empty viewport produced particles")
	}
	frames.Flush()
	frames.Flush()
	if s.Ticks() != 0 {
		t.Fatalf("ticks = %d, want skipped frames", s.Ticks())
	}
	if frames.Len() != 1 {
		t.Fatalf("pending = %d, want the loop kept alive", frames.Len())
	}
}

func TestSameSeedSamePool(t *testing.T) {
	a, _, _ := mount(t, newHost(800, 600), Config{Seed: 11})
	b, _, _ := mount(t, newHost(800, 600), Config{Seed: 11})
	ga, gb := a.Pool().Glow, b.Pool().Glow
	if len(ga) != len(gb) || len(ga) == 0 {
		t.Fatalf("glow counts %d vs %d", len(ga), len(gb))
	}
	for i := range ga {
		if ga[i] != gb[i] {
			t.Fatalf("glow %d differs: %+v vs %+v", i, ga[i], gb[i])
		}
	}
}

func TestPointerPushesNearLayerHarder(t *testing.T) {
	h := newHost(1000, 1000)
	s, _, clock := mount(t, h, Config{Seed: 5})
	h.d.Dispatch(input.Event{Kind: input.PointerMove, X: 500, Y: 500})

	for i := 0; i < 60; i++ {
		clock.Advance(16 * time.Millisecond)
		s.Step(clock.Now())
	}
	p := s.Pointer()
	if d := p.Smoothed.Sub(core.Vec2{X: 500, Y: 500}).Len(); d > 1e-6 {
		t.Fatalf("smoothed = %+v, %.9f from target", p.Smoothed, d)
	}

	s.Pool().Glow = []field.Glow{
		{BaseX: 520, BaseY: 500, Depth: 1.0, Radius: 1, BaseRadius: 1, Opacity: 0.1, BaseOpacity: 0.1},
		{BaseX: 520, BaseY: 500, Depth: 0.1, Radius: 1, BaseRadius: 1, Opacity: 0.1, BaseOpacity: 0.1},
	}
	clock.Advance(16 * time.Millisecond)
	s.Step(clock.Now())

	near := s.Pool().Glow[0].Offset.Len()
	far := s.Pool().Glow[1].Offset.Len()
	if near <= 0 {
		t.Fatalf("near offset = %v, want > 0", near)
	}
	if far >= near {
		t.Fatalf("far offset %v not smaller than near %v", far, near)
	}
	if math.Abs(s.Pool().Glow[0].Offset.Y) > 1e-9 {
		t.Fatalf("push off axis: %+v", s.Pool().Glow[0].Offset)
	}
}

func TestStepDraws(t *testing.T) {
	h := newHost(600, 400)
	rec := h.surf.(*surfacetest.Recorder)
	s, _, _ := mount(t, h, Config{Seed: 2, Cursor: true})
	h.d.Dispatch(input.Event{Kind: input.PointerMove, X: 300, Y: 200})
	s.Step(epoch)
	if rec.Count(surfacetest.OpClear) != 1 {
		t.Fatalf("clears = %d", rec.Count(surfacetest.OpClear))
	}
	if n := rec.Count(surfacetest.OpDrawGlyph); n != len(s.Pool().Symbols) {
		t.Fatalf("glyphs = %d, want %d", n, len(s.Pool().Symbols))
	}
	if rec.Count(surfacetest.OpStrokeCircle) != 1 {
		t.Fatal("cursor layer not drawn")
	}
}

func TestParameters(t *testing.T) {
	h := newHost(600, 400)
	s, _, _ := mount(t, h, Config{Seed: 4})
	snap := s.Parameters()
	p, ok := snap.Lookup("glow")
	if !ok || p.Value != "16" {
		t.Fatalf("glow param = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("seed"); p.Value != "4" {
		t.Fatalf("seed param = %+v", p)
	}
	if p, _ := snap.Lookup("running"); p.Value != "true" {
		t.Fatalf("running param = %+v", p)
	}
}

func TestConfigFromMapAndFlags(t *testing.T) {
	c := FromMap(map[string]string{"seed": "99", "cursor": "true"})
	if c.Seed != 99 || !c.Cursor {
		t.Fatalf("FromMap = %+v", c)
	}
	c = FromMap(map[string]string{"seed": "x", "cursor": "maybe"})
	if c != DefaultConfig() {
		t.Fatalf("bad values should keep defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}

	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "5", "-cursor"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 5 || !cfg.Cursor {
		t.Fatalf("bound config = %+v", cfg)
	}
}
