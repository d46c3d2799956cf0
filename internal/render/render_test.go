package render

import (
	"math"
	"testing"
	"time"

	"neural-bg/internal/core"
	"neural-bg/internal/field"
	"neural-bg/internal/surface/surfacetest"
)

var epoch = time.Unix(1_700_000_000, 0)

func testScene(p *field.Pointer) *Scene {
	glow := []field.Glow{
		{BaseX: 100, BaseY: 100, Radius: 1, Current: 0.2},
		{BaseX: 150, BaseY: 100, Radius: 1, Current: 0.2},
	}
	syms := []field.Symbol{{BaseX: 300, BaseY: 300, Glyph: "fn", FontSize: 10, Opacity: 0.05}}
	g := &field.Graph{}
	g.Build(glow, p)
	return &Scene{
		Size:    core.Size{W: 800, H: 600},
		Pointer: p,
		Glow:    glow,
		Symbols: syms,
		Graph:   g,
	}
}

func TestDrawLayerOrder(t *testing.T) {
	rec := surfacetest.New(800, 600)
	r := New()
	r.Draw(rec, testScene(&field.Pointer{}), epoch)

	want := []surfacetest.Op{
		surfacetest.OpClear,
		surfacetest.OpFillRadial, surfacetest.OpFillRadial, surfacetest.OpFillRadial,
		surfacetest.OpFillCircle, surfacetest.OpFillRadial,
		surfacetest.OpFillCircle, surfacetest.OpFillRadial,
		surfacetest.OpStrokeLine,
		surfacetest.OpDrawGlyph,
	}
	got := rec.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("op %d = %s, want %s (all %v)", i, got[i], want[i], got)
		}
	}
	if w := rec.Calls[8].Width; w != LinkWidth {
		t.Fatalf("link width = %v", w)
	}
	if halo := rec.Calls[5]; halo.R != 2 {
		t.Fatalf("halo radius = %v, want 2", halo.R)
	}
}

func TestEmptySizeOnlyClears(t *testing.T) {
	rec := surfacetest.New(0, 0)
	sc := testScene(&field.Pointer{})
	sc.Size = core.Size{}
	New().Draw(rec, sc, epoch)
	if len(rec.Calls) != 1 || rec.Calls[0].Op != surfacetest.OpClear {
		t.Fatalf("calls = %v", rec.Ops())
	}
}

func TestPointerGlowFadesIn(t *testing.T) {
	p := &field.Pointer{}
	p.OnMove(400, 300)
	p.Step()
	sc := testScene(p)
	rec := surfacetest.New(800, 600)
	r := New()

	now := epoch
	r.Draw(rec, sc, now)
	first := r.FadeLevel()
	if first <= 0 || first >= 0.5 {
		t.Fatalf("fade level on first engaged frame = %v, want small and non-zero", first)
	}
	if n := rec.Count(surfacetest.OpFillRadial); n != 3+2+2 {
		t.Fatalf("radial fills on first engaged frame = %d, want pointer glow drawn", n)
	}

	prev := first
	for i := 0; i < 40; i++ {
		now = now.Add(16 * time.Millisecond)
		rec.Reset()
		r.Draw(rec, sc, now)
		if r.FadeLevel() < prev {
			t.Fatalf("fade level decreased at frame %d: %v < %v", i, r.FadeLevel(), prev)
		}
		prev = r.FadeLevel()
	}
	if prev != 1 {
		t.Fatalf("fade level after 0.64s = %v, want 1", prev)
	}
	// orbs + two pointer gradients + two halos
	if n := rec.Count(surfacetest.OpFillRadial); n != 3+2+2 {
		t.Fatalf("radial fills = %d", n)
	}
	glowCall := rec.Calls[4]
	if glowCall.R != PointerGlowRadius || glowCall.X != p.Smoothed.X {
		t.Fatalf("pointer glow call = %+v", glowCall)
	}

	p.OnLeave()
	rec.Reset()
	r.Draw(rec, sc, now.Add(16*time.Millisecond))
	if r.FadeLevel() != 0 {
		t.Fatalf("fade level after leave = %v", r.FadeLevel())
	}
	if n := rec.Count(surfacetest.OpFillRadial); n != 3+2 {
		t.Fatalf("radial fills after leave = %d", n)
	}
}

func TestSparksDrawnWhileEngaged(t *testing.T) {
	p := &field.Pointer{}
	p.OnMove(120, 100)
	p.Step()
	rec := surfacetest.New(800, 600)
	New().Draw(rec, testScene(p), epoch)
	var sparks int
	for _, c := range rec.Calls {
		if c.Op == surfacetest.OpStrokeLine && c.Width == SparkWidth {
			sparks++
		}
	}
	if sparks != 2 {
		t.Fatalf("sparks = %d, want 2", sparks)
	}
}

func TestFollowerLayer(t *testing.T) {
	p := &field.Pointer{}
	p.OnMove(50, 60)
	f := &field.Follower{}
	f.Step(p)
	sc := testScene(p)
	sc.Follower = f

	rec := surfacetest.New(800, 600)
	New().Draw(rec, sc, epoch)
	if rec.Count(surfacetest.OpStrokeCircle) != 1 {
		t.Fatalf("follower ring not drawn: %v", rec.Ops())
	}
	last := rec.Calls[len(rec.Calls)-1]
	if last.Op != surfacetest.OpFillCircle || last.X != 50 || last.Y != 60 {
		t.Fatalf("last call = %+v, want follower dot at (50,60)", last)
	}

	p.OnLeave()
	f.Step(p)
	rec.Reset()
	New().Draw(rec, sc, epoch)
	if rec.Count(surfacetest.OpStrokeCircle) != 0 {
		t.Fatal("follower drawn while pointer inactive")
	}
}

func TestOrbCenters(t *testing.T) {
	x, y := Orbs[0].Center(1000, 800, 0)
	if math.Abs(x-300) > 1e-9 || math.Abs(y-(240+80)) > 1e-9 {
		t.Fatalf("orb 0 at t=0 = (%v,%v)", x, y)
	}
	x, y = Orbs[1].Center(1000, 800, 0)
	if math.Abs(x-(700+120)) > 1e-9 || math.Abs(y-480) > 1e-9 {
		t.Fatalf("orb 1 at t=0 = (%v,%v)", x, y)
	}
}
