package backdrop

import (
	"time"

	"neural-bg/internal/core"
	"neural-bg/internal/field"
	"neural-bg/internal/frame"
	"neural-bg/internal/input"
	"neural-bg/internal/render"
	"neural-bg/internal/surface"
)

// State is the scheduler lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Option customizes Mount.
type Option func(*Scheduler)

// WithClock replaces the wall clock used for pulses and orb motion.
func WithClock(c core.Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// Scheduler drives one simulation and render step per display frame.
type Scheduler struct {
	host   Host
	frames frame.Requester
	clock  core.Clock
	cfg    Config

	state    State
	surf     surface.Surface
	viewport *Viewport
	rng      *core.RNG
	pointer  field.Pointer
	follower *field.Follower
	pool     *field.Pool
	graph    field.Graph
	renderer *render.Renderer
	scene    render.Scene

	listeners []input.Listener
	pending   frame.ID
	ticks     uint64
}

// Mount attaches the background to host and requests the first frame. When
// the host has no usable surface the returned scheduler is Stopped and
// nothing is allocated, attached or scheduled.
func Mount(host Host, frames frame.Requester, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{host: host, frames: frames, clock: core.SystemClock{}, cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	surf, err := host.Surface()
	if err != nil || surf == nil {
		return s
	}
	s.surf = surf
	s.viewport = NewViewport(host, surf)
	s.renderer = render.New()
	if cfg.Cursor {
		s.follower = &field.Follower{}
	}

	s.listen(input.PointerMove, func(ev input.Event) { s.pointer.OnMove(ev.X, ev.Y) })
	s.listen(input.PointerLeave, func(input.Event) { s.pointer.OnLeave() })
	s.listen(input.TouchMove, func(ev input.Event) {
		if len(ev.Touches) == 0 {
			return
		}
		s.pointer.OnMove(ev.Touches[0].X, ev.Touches[0].Y)
	})
	s.listen(input.TouchEnd, func(input.Event) { s.pointer.OnLeave() })
	s.listen(input.Resize, func(input.Event) { s.viewport.Resize() })

	size := s.viewport.Resize()
	s.rng = core.NewRNG(cfg.Seed)
	s.pool = field.NewPool(size, s.rng)
	s.state = Running
	s.pending = s.frames.Request(s.tick)
	return s
}

func (s *Scheduler) listen(kind input.Kind, fn func(input.Event)) {
	s.listeners = append(s.listeners, s.host.Listen(kind, fn))
}

func (s *Scheduler) tick() {
	s.pending = 0
	if s.state != Running {
		return
	}
	s.Step(s.clock.Now())
	if s.state == Running {
		s.pending = s.frames.Request(s.tick)
	}
}

// Step runs one frame: pointer smoothing, particle updates, the connection
// graph and the draw. It is skipped while stopped or while the surface is
// empty.
func (s *Scheduler) Step(now time.Time) {
	if s.state != Running {
		return
	}
	size := s.surf.Size()
	if size.Empty() {
		return
	}
	s.pointer.Step()
	if s.follower != nil {
		s.follower.Step(&s.pointer)
	}
	s.pool.Update(&s.pointer, size, now)
	s.graph.Build(s.pool.Glow, &s.pointer)

	s.scene = render.Scene{
		Size:     size,
		Pointer:  &s.pointer,
		Glow:     s.pool.Glow,
		Symbols:  s.pool.Symbols,
		Graph:    &s.graph,
		Follower: s.follower,
	}
	s.renderer.Draw(s.surf, &s.scene, now)
	s.ticks++
}

// Unmount cancels the pending frame, removes every listener attached at
// mount and drops the particle state. Calling it again is a no-op.
func (s *Scheduler) Unmount() {
	if s.pending != 0 {
		s.frames.Cancel(s.pending)
		s.pending = 0
	}
	for _, l := range s.listeners {
		l.Remove()
	}
	s.listeners = nil
	s.state = Stopped
	s.pool = nil
	s.scene = render.Scene{}
	s.graph = field.Graph{}
}

// Reset reallocates the particle pool for the current viewport using seed.
// Population counts are recomputed here.
func (s *Scheduler) Reset(seed int64) {
	if s.state != Running {
		return
	}
	s.cfg.Seed = seed
	s.rng = core.NewRNG(seed)
	s.pool = field.NewPool(s.surf.Size(), s.rng)
}

// State reports the lifecycle state.
func (s *Scheduler) State() State { return s.state }

// Seed reports the seed the current pool was built from.
func (s *Scheduler) Seed() int64 {
	if s.rng == nil {
		return s.cfg.Seed
	}
	return s.rng.Seed()
}

// Ticks reports how many frames have been stepped.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Pointer exposes the tracker state.
func (s *Scheduler) Pointer() *field.Pointer { return &s.pointer }

// Pool exposes the particles, or nil while stopped.
func (s *Scheduler) Pool() *field.Pool { return s.pool }

// Graph exposes the lines built by the last step.
func (s *Scheduler) Graph() *field.Graph { return &s.graph }
